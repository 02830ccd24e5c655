// Package app contains application services that orchestrate use cases.
package app

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// SearchObserver receives one notification per executed search.
type SearchObserver interface {
	ObserveSearch(field, order string, results int)
}

// Site identifies the census on every page.
type Site struct {
	Name  string
	Email string
}

// CensusService serves the public census: browsing, search, autofill,
// reports and informational pages.
type CensusService struct {
	repo     ports.CatalogRepository
	labels   catalog.Labels
	site     Site
	observer SearchObserver
	now      func() time.Time
	logger   *slog.Logger
}

// CensusServiceConfig contains the dependencies of the census service.
type CensusServiceConfig struct {
	Repository ports.CatalogRepository
	Labels     catalog.Labels
	Site       Site
	Observer   SearchObserver
	Clock      func() time.Time
	Logger     *slog.Logger
}

// NewCensusService creates a census service. It panics without a repository.
func NewCensusService(cfg CensusServiceConfig) *CensusService {
	if cfg.Repository == nil {
		panic("app: census service requires a repository")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	if cfg.Labels.CopyIDPrefix == "" {
		cfg.Labels = catalog.NewLabels("")
	}

	return &CensusService{
		repo:     cfg.Repository,
		labels:   cfg.Labels,
		site:     cfg.Site,
		observer: cfg.Observer,
		now:      cfg.Clock,
		logger:   cfg.Logger,
	}
}

// Labels returns the display labels the service was configured with.
func (s *CensusService) Labels() catalog.Labels {
	return s.labels
}

// Site returns the census name and contact address.
func (s *CensusService) Site() Site {
	return s.site
}

// Titles returns every title in title sort order.
func (s *CensusService) Titles(ctx context.Context) ([]*domain.Title, error) {
	titles, err := s.repo.Titles(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list titles", slog.Any("error", err))
		return nil, err
	}

	return catalog.SortTitles(titles), nil
}

// IssueListing is one issue row of a title page.
type IssueListing struct {
	Issue *domain.Issue
	Label string
}

// TitleDetail is a title with its editions and labelled issues.
type TitleDetail struct {
	Title     *domain.Title
	Editions  []*domain.Edition
	Issues    []IssueListing
	CopyCount int
}

// TitleDetail returns a title, its editions by number, its issues in issue
// order with labels, and the number of canonical copies across them.
func (s *CensusService) TitleDetail(ctx context.Context, id int64) (*TitleDetail, error) {
	s.logger.DebugContext(ctx, "loading title", slog.Int64("title_id", id))

	title, copies, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Title, error) { return s.repo.Title(ctx, id) },
		func(ctx context.Context) ([]*domain.Copy, error) {
			return s.repo.Copies(ctx, ports.CopyFilter{TitleID: id, CanonicalOnly: true})
		},
	)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("title", formatID(id))
		}

		s.logger.ErrorContext(ctx, "failed to load title", slog.Int64("title_id", id), slog.Any("error", err))

		return nil, err
	}

	editions := sortEditions(title.Editions)

	var issues []*domain.Issue
	for _, e := range editions {
		issues = append(issues, e.Issues...)
	}

	issues = catalog.SortIssues(issues)
	counts := catalog.IssueCounts(issues)

	detail := &TitleDetail{
		Title:     title,
		Editions:  editions,
		Issues:    make([]IssueListing, 0, len(issues)),
		CopyCount: len(catalog.Canonical(copies)),
	}

	for _, i := range issues {
		detail.Issues = append(detail.Issues, IssueListing{Issue: i, Label: catalog.IssueLabel(i, counts)})
	}

	return detail, nil
}

// CopyListing is a set of copies shown under one issue.
type CopyListing struct {
	Issue  *domain.Issue
	Label  string
	Copies []*domain.Copy
}

// IssueCopies returns the canonical copies of an issue in listing order.
func (s *CensusService) IssueCopies(ctx context.Context, issueID int64) (*CopyListing, error) {
	issue, err := s.repo.Issue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	copies, err := s.repo.Copies(ctx, ports.CopyFilter{IssueID: issueID, CanonicalOnly: true})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list issue copies", slog.Int64("issue_id", issueID), slog.Any("error", err))
		return nil, err
	}

	return &CopyListing{
		Issue:  issue,
		Label:  catalog.IssueLabel(issue, nil),
		Copies: catalog.SortIssueListing(catalog.Canonical(copies)),
	}, nil
}

// CopyByCensusID returns a single copy by its census id.
func (s *CensusService) CopyByCensusID(ctx context.Context, censusID string) (*domain.Copy, error) {
	return s.repo.CopyByCensusID(ctx, censusID)
}

// Copy returns a single copy by primary key.
func (s *CensusService) Copy(ctx context.Context, id int64) (*domain.Copy, error) {
	return s.repo.Copy(ctx, id)
}

func sortEditions(editions []*domain.Edition) []*domain.Edition {
	out := slices.Clone(editions)
	slices.SortStableFunc(out, func(a, b *domain.Edition) int {
		return cmp.Or(cmp.Compare(a.Number, b.Number), cmp.Compare(a.ID, b.ID))
	})

	return out
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
