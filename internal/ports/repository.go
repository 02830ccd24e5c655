// Package ports defines the contracts the application layer depends on.
// Adapters implement them; the app layer never sees gorm, gin or sqlite.
//
// Conventions:
//   - Context is always the first parameter
//   - Methods return hydrated domain types, never storage rows
//   - Missing entities are reported as domain.NotFoundError
package ports

import (
	"context"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// CopyFilter narrows a Copies read. Zero values mean "any".
type CopyFilter struct {
	// IssueID restricts to copies of one issue.
	IssueID int64

	// TitleID restricts to copies of any issue of one title.
	TitleID int64

	// CanonicalOnly drops ghost copies at the store.
	CanonicalOnly bool
}

// CatalogRepository is the read side of the census store.
//
// Every Copy returned carries its Issue, the Issue's Edition and Title, its
// Location and its Owners, so catalog rules can be applied in memory.
type CatalogRepository interface {
	// Copies returns copies matching the filter ordered by primary key.
	Copies(ctx context.Context, filter CopyFilter) ([]*domain.Copy, error)

	// Copy returns one copy by primary key.
	Copy(ctx context.Context, id int64) (*domain.Copy, error)

	// CopyByCensusID returns the lowest-keyed copy with the census id.
	CopyByCensusID(ctx context.Context, censusID string) (*domain.Copy, error)

	// Titles returns every title without editions.
	Titles(ctx context.Context) ([]*domain.Title, error)

	// Title returns one title with its editions and their issues.
	Title(ctx context.Context, id int64) (*domain.Title, error)

	// Issue returns one issue with its edition and title.
	Issue(ctx context.Context, id int64) (*domain.Issue, error)

	// LocationNames returns location names containing the text,
	// case-insensitively.
	LocationNames(ctx context.Context, contains string) ([]string, error)

	// GeographyValues returns city, state, country and continent values
	// containing the text, case-insensitively. Duplicates are allowed.
	GeographyValues(ctx context.Context, contains string) ([]string, error)

	// ProvenanceNames returns owner names containing the text,
	// case-insensitively.
	ProvenanceNames(ctx context.Context, contains string) ([]string, error)

	// StaticPage returns the page text stored under the view name.
	StaticPage(ctx context.Context, viewname string) (*domain.StaticPage, error)
}
