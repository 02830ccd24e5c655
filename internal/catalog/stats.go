package catalog

import (
	"math"
	"strconv"
	"time"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// Stats are the census-wide counts shown on informational pages.
type Stats struct {
	Canonical    int
	Copies       int
	Fragments    int
	Verified     int
	Unverified   int
	FromESTC     int
	NotFromESTC  int
	Facsimiles   int
	FacsimilePct int
}

// ComputeStats counts over every copy. Only canonical copies contribute.
func ComputeStats(all []*domain.Copy) Stats {
	var s Stats

	for _, c := range Canonical(all) {
		s.Canonical++

		if c.Fragment {
			s.Fragments++
		} else {
			s.Copies++
		}

		switch c.Verification {
		case domain.VerificationVerified:
			s.Verified++
		case domain.VerificationUnverified:
			s.Unverified++
		}

		if c.FromESTC {
			s.FromESTC++
		} else {
			s.NotFromESTC++
		}

		if c.FacsimileURL != "" {
			s.Facsimiles++
		}
	}

	if s.Canonical > 0 {
		s.FacsimilePct = int(math.RoundToEven(100 * float64(s.Facsimiles) / float64(s.Canonical)))
	}

	return s
}

// DateLayout formats the current date on informational pages.
const DateLayout = "02 January 2006"

// Values returns the placeholder values available to page templates.
func (s Stats) Values(pageName string, now time.Time) map[string]string {
	return map[string]string{
		"page_name":              pageName,
		"current_date":           now.Format(DateLayout),
		"canonical_count":        strconv.Itoa(s.Canonical),
		"copy_count":             strconv.Itoa(s.Copies),
		"verified_copy_count":    strconv.Itoa(s.Verified),
		"unverified_copy_count":  strconv.Itoa(s.Unverified),
		"fragment_copy_count":    strconv.Itoa(s.Fragments),
		"estc_copy_count":        strconv.Itoa(s.FromESTC),
		"non_estc_copy_count":    strconv.Itoa(s.NotFromESTC),
		"facsimile_copy_count":   strconv.Itoa(s.Facsimiles),
		"facsimile_copy_percent": strconv.Itoa(s.FacsimilePct) + "%",
	}
}
