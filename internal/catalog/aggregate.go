package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// Dimension is a grouping used by copy-count reports.
type Dimension string

const (
	DimensionLocation       Dimension = "location"
	DimensionTitle          Dimension = "title"
	DimensionEdition        Dimension = "edition"
	DimensionIssue          Dimension = "issue"
	DimensionProvenanceName Dimension = "provenance_name"
)

// Dimensions lists every supported grouping in report order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionLocation,
		DimensionTitle,
		DimensionEdition,
		DimensionIssue,
		DimensionProvenanceName,
	}
}

// ParseDimension validates a dimension name.
func ParseDimension(s string) (Dimension, bool) {
	d := Dimension(s)
	if slices.Contains(Dimensions(), d) {
		return d, true
	}

	return "", false
}

// Row is one group of a report. Exactly one entity pointer is set, matching
// the dimension the row was produced for.
type Row struct {
	Location *domain.Location
	Title    *domain.Title
	Edition  *domain.Edition
	Issue    *domain.Issue
	Owner    *domain.ProvenanceName
	Copies   int
}

// Aggregate counts canonical copies grouped by dim. Copies lacking the
// grouping entity are skipped. Rows come back in the report order of the
// dimension with entity ID as the final tie-break.
func Aggregate(dim Dimension, all []*domain.Copy) []Row {
	g := newGrouper()

	for _, c := range Canonical(all) {
		switch dim {
		case DimensionLocation:
			if c.Location != nil {
				g.add(c.Location.ID, Row{Location: c.Location})
			}
		case DimensionTitle:
			if t := copyTitle(c); t != nil {
				g.add(t.ID, Row{Title: t})
			}
		case DimensionEdition:
			if c.Issue != nil && c.Issue.Edition != nil {
				g.add(c.Issue.Edition.ID, Row{Edition: c.Issue.Edition})
			}
		case DimensionIssue:
			if c.Issue != nil {
				g.add(c.Issue.ID, Row{Issue: c.Issue})
			}
		case DimensionProvenanceName:
			for _, o := range c.Owners {
				if o != nil {
					g.add(o.ID, Row{Owner: o})
				}
			}
		}
	}

	rows := g.rows()

	var compare func(a, b Row) int

	switch dim {
	case DimensionLocation:
		compare = func(a, b Row) int {
			return cmp.Or(
				cmp.Compare(StripArticle(a.Location.Name), StripArticle(b.Location.Name)),
				cmp.Compare(a.Location.ID, b.Location.ID),
			)
		}
	case DimensionTitle:
		compare = func(a, b Row) int {
			return cmp.Or(cmp.Compare(TitleSortKey(a.Title), TitleSortKey(b.Title)), cmp.Compare(a.Title.ID, b.Title.ID))
		}
	case DimensionEdition:
		compare = func(a, b Row) int {
			return cmp.Or(
				cmp.Compare(editionTitleKey(a.Edition), editionTitleKey(b.Edition)),
				cmp.Compare(editionNumber(a.Edition), editionNumber(b.Edition)),
				cmp.Compare(a.Edition.ID, b.Edition.ID),
			)
		}
	case DimensionIssue:
		compare = func(a, b Row) int {
			return cmp.Or(
				cmp.Compare(issueTitleName(a.Issue), issueTitleName(b.Issue)),
				cmp.Compare(a.Issue.ESTC, b.Issue.ESTC),
				cmp.Compare(a.Issue.ID, b.Issue.ID),
			)
		}
	case DimensionProvenanceName:
		compare = func(a, b Row) int {
			return cmp.Or(cmp.Compare(a.Owner.Name, b.Owner.Name), cmp.Compare(a.Owner.ID, b.Owner.ID))
		}
	default:
		return nil
	}

	slices.SortStableFunc(rows, compare)

	return rows
}

// Label is the first report cell of a row.
func (r Row) Label() string {
	switch {
	case r.Location != nil:
		return r.Location.Name
	case r.Title != nil:
		return r.Title.Name
	case r.Edition != nil:
		return fmt.Sprintf("%s Edition %d", titleName(r.Edition.Title), r.Edition.Number)
	case r.Issue != nil:
		return fmt.Sprintf("%s (ESTC %s)", issueTitleName(r.Issue), r.Issue.ESTC)
	case r.Owner != nil:
		return r.Owner.Name
	default:
		return ""
	}
}

type grouper struct {
	index map[int64]int
	out   []Row
}

func newGrouper() *grouper {
	return &grouper{index: make(map[int64]int)}
}

func (g *grouper) add(id int64, row Row) {
	if i, ok := g.index[id]; ok {
		g.out[i].Copies++

		return
	}

	row.Copies = 1
	g.index[id] = len(g.out)
	g.out = append(g.out, row)
}

func (g *grouper) rows() []Row {
	return g.out
}

func copyTitle(c *domain.Copy) *domain.Title {
	if c.Issue == nil || c.Issue.Edition == nil {
		return nil
	}

	return c.Issue.Edition.Title
}

func titleName(t *domain.Title) string {
	if t == nil {
		return ""
	}

	return t.Name
}

func issueTitleName(i *domain.Issue) string {
	if i == nil || i.Edition == nil {
		return ""
	}

	return titleName(i.Edition.Title)
}

func editionTitleKey(e *domain.Edition) string {
	return strings.ToLower(StripArticle(titleName(e.Title)))
}
