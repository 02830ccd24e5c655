package catalog

import (
	"github.com/jsamuelsen/copy-census/internal/domain"
)

// Search filters all copies by q. The universe is the canonical copies of
// all, narrowed to initialIDs when any are given. A collection query over a
// feature that searches outside the canonical universe uses every copy and
// ignores initialIDs. The result keeps the order of all, with each copy ID
// present once.
func Search(q Query, all []*domain.Copy, initialIDs []int64) []*domain.Copy {
	if q == nil {
		return nil
	}

	if cq, ok := q.(CollectionQuery); ok && cq.Feature != nil && cq.Feature.OutsideCanonical {
		return filter(all, cq.Match)
	}

	if _, ok := q.(NoMatchQuery); ok {
		return nil
	}

	return filter(Universe(all, initialIDs), q.Match)
}

// Universe returns the canonical copies of all, narrowed to ids when ids is
// non-empty.
func Universe(all []*domain.Copy, ids []int64) []*domain.Copy {
	var allowed map[int64]struct{}
	if len(ids) > 0 {
		allowed = make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			allowed[id] = struct{}{}
		}
	}

	return filter(all, func(c *domain.Copy) bool {
		if !domain.IsCanonical(c) {
			return false
		}

		if allowed == nil {
			return true
		}

		_, ok := allowed[c.ID]

		return ok
	})
}

// Canonical returns the canonical copies of all.
func Canonical(all []*domain.Copy) []*domain.Copy {
	return Universe(all, nil)
}

func filter(copies []*domain.Copy, pred func(*domain.Copy) bool) []*domain.Copy {
	var out []*domain.Copy

	for _, c := range copies {
		if c != nil && pred(c) {
			out = append(out, c)
		}
	}

	return dedupe(out)
}

func dedupe(copies []*domain.Copy) []*domain.Copy {
	if len(copies) < 2 {
		return copies
	}

	seen := make(map[int64]struct{}, len(copies))
	out := copies[:0:0]

	for _, c := range copies {
		if _, dup := seen[c.ID]; dup {
			continue
		}

		seen[c.ID] = struct{}{}
		out = append(out, c)
	}

	return out
}

// Result is an ordered search result with its presentation fields.
type Result struct {
	Copies       []*domain.Copy
	Field        Field
	DisplayField string
	DisplayValue string
	Order        Order
}

// Count is the number of copies in the result.
func (r Result) Count() int { return len(r.Copies) }

// Run parses, filters and orders in one step. Collection queries display the
// feature label as the field and "All" as the value.
func Run(labels Labels, field, value, order string, all []*domain.Copy, initialIDs []int64) Result {
	q := ParseQuery(field, value)
	o := ParseOrder(order)

	res := Result{
		Copies:       SortCopies(Search(q, all, initialIDs), o),
		Field:        q.Field(),
		DisplayField: labels.DisplayField(string(q.Field())),
		DisplayValue: value,
		Order:        o,
	}

	if q.Field() == FieldCollection {
		res.DisplayValue = "All"
		if cq, ok := q.(CollectionQuery); ok {
			res.DisplayField = cq.Label()
		}
	}

	return res
}
