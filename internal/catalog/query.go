// Package catalog holds the search, ordering, aggregation and labelling rules
// of the copy census. Everything here is a pure function over hydrated
// domain entities; storage is somebody else's concern.
package catalog

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// Field is a search field name as it appears on the wire.
type Field string

const (
	FieldKeyword        Field = "keyword"
	FieldLocation       Field = "location"
	FieldGeography      Field = "geography"
	FieldProvenanceName Field = "provenance_name"
	FieldCollection     Field = "collection"
	FieldYear           Field = "year"
	FieldSTC            Field = "stc"
	FieldCensusID       Field = "census_id"
)

// Query is a parsed search request. The set of implementations is closed.
type Query interface {
	// Field reports the search field the query was parsed from.
	Field() Field
	// Match reports whether a copy satisfies the query.
	Match(c *domain.Copy) bool

	sealed()
}

// ParseQuery resolves a field/value pair into a Query. An absent field with a
// value means keyword. Empty values and unknown fields yield a NoMatchQuery.
// Any other value, whitespace included, is matched literally.
func ParseQuery(field, value string) Query {
	f := Field(field)
	if f == "" && value != "" {
		f = FieldKeyword
	}

	if value == "" {
		return NoMatchQuery{Requested: f}
	}

	switch f {
	case FieldKeyword:
		return KeywordQuery{needle: newNeedle(value)}
	case FieldLocation:
		return LocationQuery{needle: newNeedle(value)}
	case FieldGeography:
		return GeographyQuery{needle: newNeedle(value)}
	case FieldProvenanceName:
		return ProvenanceNameQuery{needle: newNeedle(value)}
	case FieldCollection:
		return CollectionQuery{Key: value, Feature: LookupFeature(value)}
	case FieldYear:
		return parseYearQuery(value)
	case FieldSTC:
		return STCQuery{needle: newNeedle(value)}
	case FieldCensusID:
		return CensusIDQuery{Value: value}
	default:
		return NoMatchQuery{Requested: f}
	}
}

// needle is a case-insensitive substring pattern.
type needle struct {
	Value string
	lower string
}

func newNeedle(value string) needle {
	return needle{Value: value, lower: strings.ToLower(value)}
}

func (n needle) in(haystack string) bool {
	if haystack == "" {
		return false
	}

	return strings.Contains(strings.ToLower(haystack), n.lower)
}

// KeywordQuery matches free-text notes and owner names.
type KeywordQuery struct{ needle }

func (KeywordQuery) Field() Field { return FieldKeyword }
func (KeywordQuery) sealed()      {}

func (q KeywordQuery) Match(c *domain.Copy) bool {
	if c == nil {
		return false
	}

	for _, text := range []string{
		c.Binding,
		c.SammelbandNotes,
		c.Marginalia,
		c.LocalNotes,
		c.ProvenanceNotes,
		c.Bibliography,
	} {
		if q.in(text) {
			return true
		}
	}

	return anyOwner(c, func(o *domain.ProvenanceName) bool { return q.in(o.Name) })
}

// LocationQuery matches the holding institution's name.
type LocationQuery struct{ needle }

func (LocationQuery) Field() Field { return FieldLocation }
func (LocationQuery) sealed()      {}

func (q LocationQuery) Match(c *domain.Copy) bool {
	return c != nil && c.Location != nil && q.in(c.Location.Name)
}

// GeographyQuery matches city, state, country or continent.
type GeographyQuery struct{ needle }

func (GeographyQuery) Field() Field { return FieldGeography }
func (GeographyQuery) sealed()      {}

func (q GeographyQuery) Match(c *domain.Copy) bool {
	if c == nil || c.Location == nil {
		return false
	}

	l := c.Location

	return q.in(l.City) || q.in(l.State) || q.in(l.Country) || q.in(l.Continent)
}

// ProvenanceNameQuery matches any linked owner's name.
type ProvenanceNameQuery struct{ needle }

func (ProvenanceNameQuery) Field() Field { return FieldProvenanceName }
func (ProvenanceNameQuery) sealed()      {}

func (q ProvenanceNameQuery) Match(c *domain.Copy) bool {
	return anyOwner(c, func(o *domain.ProvenanceName) bool { return q.in(o.Name) })
}

// CollectionQuery selects a named feature. Feature is nil for unknown keys.
type CollectionQuery struct {
	Key     string
	Feature *Feature
}

func (CollectionQuery) Field() Field { return FieldCollection }
func (CollectionQuery) sealed()      {}

func (q CollectionQuery) Match(c *domain.Copy) bool {
	return q.Feature != nil && q.Feature.Match(c)
}

// Label is the display label of the selected feature.
func (q CollectionQuery) Label() string {
	if q.Feature == nil {
		return UnknownFeatureLabel
	}

	return q.Feature.Label
}

// YearQuery matches an issue date interval, or the free-text year when the
// value is not a year or year range.
type YearQuery struct {
	Start  int
	End    int
	Ranged bool
	Text   needle
}

func (YearQuery) Field() Field { return FieldYear }
func (YearQuery) sealed()      {}

func (q YearQuery) Match(c *domain.Copy) bool {
	if c == nil || c.Issue == nil {
		return false
	}

	if q.Ranged {
		return c.Issue.StartDate <= q.End && c.Issue.EndDate >= q.Start
	}

	return q.Text.in(c.Issue.Year)
}

func parseYearQuery(value string) YearQuery {
	if start, end, ok := ParseYearRange(value); ok {
		return YearQuery{Start: start, End: end, Ranged: true}
	}

	return YearQuery{Text: newNeedle(value)}
}

// ParseYearRange reads "YYYY" or "YYYY-YYYY". Each side of a range is
// trimmed and must be exactly four digits.
func ParseYearRange(value string) (start, end int, ok bool) {
	if before, after, found := strings.Cut(value, "-"); found {
		before, after = strings.TrimSpace(before), strings.TrimSpace(after)
		if !isYear(before) || !isYear(after) {
			return 0, 0, false
		}

		start, _ = strconv.Atoi(before)
		end, _ = strconv.Atoi(after)

		return start, end, true
	}

	if !isYear(value) {
		return 0, 0, false
	}

	start, _ = strconv.Atoi(value)

	return start, start, true
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// STCQuery matches the issue's STC/Wing reference.
type STCQuery struct{ needle }

func (STCQuery) Field() Field { return FieldSTC }
func (STCQuery) sealed()      {}

func (q STCQuery) Match(c *domain.Copy) bool {
	return c != nil && c.Issue != nil && q.in(c.Issue.STCWing)
}

// CensusIDQuery matches the census id exactly.
type CensusIDQuery struct {
	Value string
}

func (CensusIDQuery) Field() Field { return FieldCensusID }
func (CensusIDQuery) sealed()      {}

func (q CensusIDQuery) Match(c *domain.Copy) bool {
	return c != nil && c.CensusID == q.Value
}

// NoMatchQuery never matches. Requested keeps the field that was asked for.
type NoMatchQuery struct {
	Requested Field
}

func (q NoMatchQuery) Field() Field          { return q.Requested }
func (NoMatchQuery) Match(*domain.Copy) bool { return false }
func (NoMatchQuery) sealed()                 {}

func anyOwner(c *domain.Copy, pred func(*domain.ProvenanceName) bool) bool {
	if c == nil {
		return false
	}

	for _, o := range c.Owners {
		if o != nil && pred(o) {
			return true
		}
	}

	return false
}
