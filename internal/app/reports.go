package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// Report is a copy-count table for one dimension.
type Report struct {
	Dimension catalog.Dimension
	Rows      []catalog.Row
}

// Report counts canonical copies grouped by the dimension.
func (s *CensusService) Report(ctx context.Context, dim catalog.Dimension) (*Report, error) {
	all, err := s.repo.Copies(ctx, ports.CopyFilter{CanonicalOnly: true})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load copies for report",
			slog.String("dimension", string(dim)),
			slog.Any("error", err),
		)

		return nil, err
	}

	rows := catalog.Aggregate(dim, all)

	s.logger.InfoContext(ctx, "report built",
		slog.String("dimension", string(dim)),
		slog.Int("rows", len(rows)),
	)

	return &Report{Dimension: dim, Rows: rows}, nil
}

// reportWorkers bounds the concurrent aggregations in Reports.
const reportWorkers = 3

// Reports builds every report from a single read of the store. Dimensions are
// aggregated concurrently over the shared, read-only copy list.
func (s *CensusService) Reports(ctx context.Context) ([]*Report, error) {
	all, err := s.repo.Copies(ctx, ports.CopyFilter{CanonicalOnly: true})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load copies for reports", slog.Any("error", err))

		return nil, err
	}

	dims := catalog.Dimensions()
	builds := make([]func(context.Context) (*Report, error), 0, len(dims))

	for _, dim := range dims {
		builds = append(builds, func(ctx context.Context) (*Report, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return &Report{Dimension: dim, Rows: catalog.Aggregate(dim, all)}, nil
		})
	}

	reports, err := ParallelLimit(ctx, reportWorkers, builds...)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "reports built", slog.Int("reports", len(reports)))

	return reports, nil
}
