package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// InfoPage is a rendered informational page.
type InfoPage struct {
	ViewName string
	PageName string
	Content  string
	Values   map[string]string
	Stats    catalog.Stats
}

// InfoPage renders the static page stored under viewname with the current
// census statistics. A template that cannot be filled is returned raw.
func (s *CensusService) InfoPage(ctx context.Context, viewname string) (*InfoPage, error) {
	page, copies, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.StaticPage, error) { return s.repo.StaticPage(ctx, viewname) },
		func(ctx context.Context) ([]*domain.Copy, error) {
			return s.repo.Copies(ctx, ports.CopyFilter{CanonicalOnly: true})
		},
	)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("static page", viewname)
		}

		s.logger.ErrorContext(ctx, "failed to load info page",
			slog.String("viewname", viewname),
			slog.Any("error", err),
		)

		return nil, err
	}

	stats := catalog.ComputeStats(copies)
	name := catalog.PageName(viewname)
	values := stats.Values(name, s.now())

	content, ok := catalog.RenderPage(page.Content, values)
	if !ok {
		s.logger.WarnContext(ctx, "page template left unrendered", slog.String("viewname", viewname))
	}

	return &InfoPage{
		ViewName: viewname,
		PageName: name,
		Content:  content,
		Values:   values,
		Stats:    stats,
	}, nil
}
