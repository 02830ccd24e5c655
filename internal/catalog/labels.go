package catalog

import (
	"strconv"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// DefaultCopyIDPrefix is used when no census id prefix is configured.
const DefaultCopyIDPrefix = "ID"

var displayNames = map[Field]string{
	FieldKeyword:        "Keyword Search",
	FieldLocation:       "Location",
	FieldGeography:      "Geography",
	FieldProvenanceName: "Provenance Name",
	FieldCollection:     UnknownFeatureLabel,
	FieldYear:           "Year",
	FieldSTC:            "STC / Wing",
}

// Labels renders display strings that depend on census configuration.
type Labels struct {
	CopyIDPrefix string
}

// NewLabels returns Labels for the given prefix, falling back to
// DefaultCopyIDPrefix.
func NewLabels(prefix string) Labels {
	if prefix == "" {
		prefix = DefaultCopyIDPrefix
	}

	return Labels{CopyIDPrefix: prefix}
}

// DisplayField maps a search field key to its display name. Unknown keys are
// returned unchanged.
func (l Labels) DisplayField(key string) string {
	if Field(key) == FieldCensusID {
		prefix := l.CopyIDPrefix
		if prefix == "" {
			prefix = DefaultCopyIDPrefix
		}

		return prefix + "\u202f#"
	}

	if name, ok := displayNames[Field(key)]; ok {
		return name
	}

	return key
}

// IssueCounts counts issues per edition ID over one listing.
func IssueCounts(issues []*domain.Issue) map[int64]int {
	counts := make(map[int64]int)

	for _, i := range issues {
		if i != nil && i.Edition != nil {
			counts[i.Edition.ID]++
		}
	}

	return counts
}

// IssueLabel renders "N" for the only issue of edition N, "N.M" for issue M,
// and "N.x" when the issue number is unknown. The sibling count comes from
// counts when present, otherwise from the edition's own issue list. An
// edition without a number is labelled by its ID.
func IssueLabel(issue *domain.Issue, counts map[int64]int) string {
	if issue == nil {
		return ""
	}

	edition := "x"
	total := 0

	if e := issue.Edition; e != nil {
		if e.Number != 0 {
			edition = strconv.Itoa(e.Number)
		} else {
			edition = strconv.FormatInt(e.ID, 10)
		}

		var ok bool
		if total, ok = counts[e.ID]; !ok {
			total = len(e.Issues)
		}
	}

	if total <= 1 {
		return edition
	}

	if issue.Number != nil {
		return edition + "." + strconv.Itoa(*issue.Number)
	}

	return edition + ".x"
}
