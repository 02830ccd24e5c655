package domain

import "strings"

// Verification is the stored verification code of a copy.
type Verification string

const (
	VerificationVerified   Verification = "V"
	VerificationUnverified Verification = "U"
	VerificationFalse      Verification = "F"
)

// Label returns the human-readable verification status.
func (v Verification) Label() string {
	switch v {
	case VerificationVerified:
		return "Verified"
	case VerificationUnverified:
		return "Unverified"
	case VerificationFalse:
		return "False"
	default:
		return string(v)
	}
}

// Century is the stored century bucket of a provenance owner.
type Century string

const (
	CenturyPre1700   Century = "17"
	CenturyEighteen  Century = "18"
	CenturyNineteen  Century = "19"
	CenturyPost1900  Century = "20"
	CenturyUndefined Century = ""
)

// Label returns the human-readable century bucket.
func (c Century) Label() string {
	switch c {
	case CenturyPre1700:
		return "Pre-1700"
	case CenturyEighteen:
		return "18th-Century"
	case CenturyNineteen:
		return "19th-Century"
	case CenturyPost1900:
		return "Post-1900"
	default:
		return string(c)
	}
}

// Gender is the stored gender code of a provenance owner.
type Gender string

const (
	GenderMale          Gender = "M"
	GenderFemale        Gender = "F"
	GenderUnknown       Gender = "U"
	GenderNotApplicable Gender = "X"
)

// Label returns the human-readable gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderUnknown:
		return "Unknown"
	case GenderNotApplicable:
		return "N/A"
	default:
		return string(g)
	}
}

// Title is a work, e.g. "The Tempest".
type Title struct {
	ID         int64
	Name       string
	Apocryphal bool
	Notes      string
	Editions   []*Edition
}

// Edition is a numbered edition of a title.
// A Number of zero or less is treated as unknown when ordering.
type Edition struct {
	ID     int64
	Title  *Title
	Number int
	Format string
	Notes  string
	Issues []*Issue
}

// Issue is a printing variant of an edition.
type Issue struct {
	ID           int64
	Edition      *Edition
	Number       *int
	UnknownIssue bool
	STCWing      string
	ESTC         string
	DEEP         string
	Year         string
	StartDate    int
	EndDate      int
	Notes        string
}

// ESTCList returns the semicolon-delimited ESTC identifiers.
func (i *Issue) ESTCList() []string {
	return SplitRecord(i.ESTC)
}

// DEEPList returns the semicolon-delimited DEEP identifiers.
func (i *Issue) DEEPList() []string {
	return SplitRecord(i.DEEP)
}

// Location is a holding institution.
type Location struct {
	ID        int64
	Name      string
	City      string
	State     string
	Country   string
	Continent string
}

// ProvenanceName is a historical owner of one or more copies.
type ProvenanceName struct {
	ID           int64
	Name         string
	Bio          string
	VIAF         string
	StartCentury Century
	EndCentury   Century
	Gender       Gender
}

// Copy is a physical exemplar of an issue held at a location.
type Copy struct {
	ID                int64
	Issue             *Issue
	Location          *Location
	Shelfmark         string
	CensusID          string
	Verification      Verification
	Fragment          bool
	FromESTC          bool
	FacsimileURL      string
	Binding           string
	InEarlySammelband bool
	SammelbandNotes   string
	Marginalia        string
	LocalNotes        string
	ProvenanceNotes   string
	Bibliography      string
	NonpublicNotes    string
	Height            *float64
	Width             *float64
	CreatedBy         string
	VerifiedBy        string
	ExaminedBy        string
	Owners            []*ProvenanceName
}

// StaticPage is editable informational page text keyed by view name.
type StaticPage struct {
	ID       int64
	ViewName string
	Content  string
}

// IsCanonical reports whether a copy belongs to the public universe:
// verified or unverified, never a ghost.
func IsCanonical(c *Copy) bool {
	if c == nil {
		return false
	}

	return c.Verification == VerificationVerified || c.Verification == VerificationUnverified
}

// IsGhost reports whether a copy has been marked false.
func IsGhost(c *Copy) bool {
	return c != nil && c.Verification == VerificationFalse
}

// SplitRecord splits a semicolon-delimited identifier list, trimming parts
// and dropping empty ones.
func SplitRecord(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ";")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
