package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// SearchRequest carries the wire parameters of a search.
type SearchRequest struct {
	Field        string
	Value        string
	Order        string
	InitialField string
	InitialValue string
	InitialIDs   []int64
}

// SearchResponse is an ordered search result with presentation fields.
type SearchResponse struct {
	Field               string
	Value               string
	DisplayField        string
	DisplayValue        string
	InitialField        string
	InitialValue        string
	InitialDisplayField string
	Order               string
	Copies              []*domain.Copy
	// CurrentIDs are the result ids, for searching within this result.
	CurrentIDs []int64
	Ghost      bool
}

// Count is the number of copies found.
func (r *SearchResponse) Count() int { return len(r.Copies) }

// Search runs a search over the whole census. Bad input never fails: it
// yields an empty result.
func (s *CensusService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	all, err := s.repo.Copies(ctx, ports.CopyFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load copies for search", slog.Any("error", err))
		return nil, err
	}

	res := catalog.Run(s.labels, req.Field, req.Value, req.Order, all, req.InitialIDs)

	resp := &SearchResponse{
		Field:               string(res.Field),
		Value:               req.Value,
		DisplayField:        res.DisplayField,
		DisplayValue:        res.DisplayValue,
		InitialField:        req.InitialField,
		InitialValue:        req.InitialValue,
		InitialDisplayField: s.labels.DisplayField(req.InitialField),
		Order:               string(res.Order),
		Copies:              res.Copies,
		CurrentIDs:          make([]int64, 0, len(res.Copies)),
		Ghost:               res.Field == catalog.FieldCollection && req.Value == "ghost",
	}

	for _, c := range res.Copies {
		resp.CurrentIDs = append(resp.CurrentIDs, c.ID)
	}

	s.logger.InfoContext(ctx, "search completed",
		slog.String("field", resp.Field),
		slog.String("order", resp.Order),
		slog.Int("initial_ids", len(req.InitialIDs)),
		slog.Int("results", resp.Count()),
	)

	if s.observer != nil {
		s.observer.ObserveSearch(resp.Field, resp.Order, resp.Count())
	}

	return resp, nil
}
