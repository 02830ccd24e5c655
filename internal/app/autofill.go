package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen/copy-census/internal/catalog"
)

// CollectionOption is one entry of the collection autofill list.
type CollectionOption struct {
	Label string
	Value string
}

// AutofillLocations returns location names containing the query.
func (s *CensusService) AutofillLocations(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	names, err := s.repo.LocationNames(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "location autofill failed", slog.Any("error", err))
		return nil, err
	}

	return nonNil(names), nil
}

// AutofillGeography returns the distinct trimmed city, state, country and
// continent values containing the query, sorted.
func (s *CensusService) AutofillGeography(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	values, err := s.repo.GeographyValues(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "geography autofill failed", slog.Any("error", err))
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	slices.Sort(out)

	return slices.Compact(out), nil
}

// AutofillProvenance returns owner names containing the query.
func (s *CensusService) AutofillProvenance(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	names, err := s.repo.ProvenanceNames(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "provenance autofill failed", slog.Any("error", err))
		return nil, err
	}

	return nonNil(names), nil
}

// CollectionOptions lists every feature collection. The query is ignored.
func (s *CensusService) CollectionOptions() []CollectionOption {
	features := catalog.Features()

	out := make([]CollectionOption, 0, len(features))
	for _, f := range features {
		out = append(out, CollectionOption{Label: f.Option, Value: f.Key})
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
