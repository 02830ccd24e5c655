package catalog

import "github.com/jsamuelsen/copy-census/internal/domain"

// UnknownFeatureLabel is shown for a collection key that names no feature.
const UnknownFeatureLabel = "Specific Features"

// Feature is a named "specific feature" collection.
type Feature struct {
	Key    string
	Label  string
	Option string
	// OutsideCanonical features search every copy, ghosts included, and
	// ignore any initial id restriction.
	OutsideCanonical bool
	Match            func(c *domain.Copy) bool
}

var features = []Feature{
	{
		Key:    "earlyprovenance",
		Label:  "Copies with known early provenance (before 1700)",
		Option: "With known early provenance (before 1700)",
		Match: func(c *domain.Copy) bool {
			return anyOwner(c, func(o *domain.ProvenanceName) bool {
				return o.StartCentury == domain.CenturyPre1700
			})
		},
	},
	{
		Key:    "womanowner",
		Label:  "Copies with a known woman owner",
		Option: "With a known woman owner",
		Match: func(c *domain.Copy) bool {
			return anyOwner(c, func(o *domain.ProvenanceName) bool {
				return o.Gender == domain.GenderFemale
			})
		},
	},
	{
		Key:    "earlywomanowner",
		Label:  "Copies with a known woman owner before 1800",
		Option: "With a known woman owner before 1800",
		Match: func(c *domain.Copy) bool {
			return anyOwner(c, func(o *domain.ProvenanceName) bool {
				return o.Gender == domain.GenderFemale &&
					(o.StartCentury == domain.CenturyPre1700 || o.StartCentury == domain.CenturyEighteen)
			})
		},
	},
	{
		Key:    "marginalia",
		Label:  "Copies that include marginalia",
		Option: "Includes marginalia",
		Match: func(c *domain.Copy) bool {
			return c != nil && c.Marginalia != ""
		},
	},
	{
		Key:    "earlysammelband",
		Label:  "Copies in an early sammelband",
		Option: "In an early sammelband",
		Match: func(c *domain.Copy) bool {
			return c != nil && c.InEarlySammelband
		},
	},
	{
		Key:    "unverified",
		Label:  "Unverified copies",
		Option: "Unverified copies",
		Match: func(c *domain.Copy) bool {
			return c != nil && c.Verification == domain.VerificationUnverified
		},
	},
	{
		Key:              "ghost",
		Label:            "Ghost copies",
		Option:           "Ghost copies",
		OutsideCanonical: true,
		Match:            domain.IsGhost,
	},
}

// Features returns the feature catalog in display order.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)

	return out
}

// LookupFeature returns the feature with the given key, or nil.
func LookupFeature(key string) *Feature {
	for i := range features {
		if features[i].Key == key {
			f := features[i]

			return &f
		}
	}

	return nil
}

// Collection applies a feature to a universe of copies. Canonical features
// only consider canonical copies of the universe; the ghost feature considers
// all of them. An unknown key yields no copies and the generic label.
func Collection(universe []*domain.Copy, key string) ([]*domain.Copy, string) {
	f := LookupFeature(key)
	if f == nil {
		return nil, UnknownFeatureLabel
	}

	var out []*domain.Copy

	for _, c := range universe {
		if c == nil {
			continue
		}

		if !f.OutsideCanonical && !domain.IsCanonical(c) {
			continue
		}

		if f.Match(c) {
			out = append(out, c)
		}
	}

	return dedupe(out), f.Label
}
