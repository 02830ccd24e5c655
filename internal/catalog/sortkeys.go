package catalog

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// MissingIssueNumber sorts issues without a number after every numbered one.
const MissingIssueNumber = 1_000_000_000

// UnknownEditionNumber sorts editions without a usable number last.
const UnknownEditionNumber = math.MaxInt

var articles = []string{"a ", "an ", "the "}

var numericCensusID = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)

// StripArticle removes a single leading "a ", "an " or "the ",
// matched case-insensitively.
func StripArticle(s string) string {
	for _, article := range articles {
		if len(s) >= len(article) && strings.EqualFold(s[:len(article)], article) {
			return s[len(article):]
		}
	}

	return s
}

// TitleSortKey returns the alphabetization key of a title. Titles that begin
// with a digit ("1 Henry IV") move the leading word to the end
// ("Henry IV 1") before the article is stripped.
func TitleSortKey(t *domain.Title) string {
	if t == nil {
		return ""
	}

	return titleNameKey(t.Name)
}

func titleNameKey(name string) string {
	first, _ := utf8.DecodeRuneInString(name)
	if name != "" && unicode.IsDigit(first) {
		words := strings.Fields(name)
		if len(words) > 0 {
			words = append(words[1:], words[0])
		}

		return StripArticle(strings.Join(words, " "))
	}

	return StripArticle(name)
}

// IssueKey orders issues by edition number, known before unknown, then
// issue number.
type IssueKey struct {
	Edition int
	Unknown int
	Number  int
}

// Compare returns -1, 0 or +1.
func (k IssueKey) Compare(o IssueKey) int {
	return cmp.Or(
		cmp.Compare(k.Edition, o.Edition),
		cmp.Compare(k.Unknown, o.Unknown),
		cmp.Compare(k.Number, o.Number),
	)
}

// IssueSortKey returns the ordering key of an issue.
func IssueSortKey(i *domain.Issue) IssueKey {
	if i == nil {
		return IssueKey{Edition: UnknownEditionNumber, Unknown: 1, Number: MissingIssueNumber}
	}

	key := IssueKey{Edition: editionNumber(i.Edition), Number: MissingIssueNumber}
	if i.UnknownIssue {
		key.Unknown = 1
	}

	if i.Number != nil {
		key.Number = *i.Number
	}

	return key
}

func editionNumber(e *domain.Edition) int {
	if e == nil || e.Number <= 0 {
		return UnknownEditionNumber
	}

	return e.Number
}

// CensusIDKey is the numeric (major, minor) reading of a census id.
type CensusIDKey struct {
	Major int
	Minor int
}

// Compare returns -1, 0 or +1.
func (k CensusIDKey) Compare(o CensusIDKey) int {
	return cmp.Or(cmp.Compare(k.Major, o.Major), cmp.Compare(k.Minor, o.Minor))
}

// CensusIDSortKey parses "A.B" as (A, B) and "A" as (A, 0). Anything else
// yields (0, 0).
func CensusIDSortKey(censusID string) CensusIDKey {
	if censusID == "" {
		return CensusIDKey{}
	}

	if strings.Contains(censusID, ".") {
		parts := strings.Split(censusID, ".")
		if len(parts) != 2 {
			return CensusIDKey{}
		}

		major, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
		minor, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errA != nil || errB != nil {
			return CensusIDKey{}
		}

		return CensusIDKey{Major: major, Minor: minor}
	}

	major, err := strconv.Atoi(strings.TrimSpace(censusID))
	if err != nil {
		return CensusIDKey{}
	}

	return CensusIDKey{Major: major}
}

// CopyKey orders copies inside an issue listing.
type CopyKey struct {
	Location  string
	Shelfmark string
	CensusID  CensusIDKey
}

// Compare returns -1, 0 or +1.
func (k CopyKey) Compare(o CopyKey) int {
	return cmp.Or(
		cmp.Compare(k.Location, o.Location),
		cmp.Compare(k.Shelfmark, o.Shelfmark),
		k.CensusID.Compare(o.CensusID),
	)
}

// CopySortKey returns (article-stripped location, shelfmark, census id).
func CopySortKey(c *domain.Copy) CopyKey {
	if c == nil {
		return CopyKey{}
	}

	return CopyKey{
		Location:  locationKey(c),
		Shelfmark: c.Shelfmark,
		CensusID:  CensusIDSortKey(c.CensusID),
	}
}

func locationKey(c *domain.Copy) string {
	if c == nil || c.Location == nil {
		return ""
	}

	return StripArticle(c.Location.Name)
}

func copyTitleKey(c *domain.Copy) string {
	if c == nil || c.Issue == nil || c.Issue.Edition == nil {
		return ""
	}

	return TitleSortKey(c.Issue.Edition.Title)
}

func copyID(c *domain.Copy) int64 {
	if c == nil {
		return 0
	}

	return c.ID
}

func copyDate(c *domain.Copy) int {
	if c == nil || c.Issue == nil {
		return 0
	}

	return c.Issue.StartDate
}

// Census id buckets used by SearchCensusIDKey.
const (
	BucketNumeric = 0
	BucketText    = 1
	BucketEmpty   = 2
)

// SearchCensusIDKey orders numeric ids by value, then other ids
// case-insensitively, then empty ids.
type SearchCensusIDKey struct {
	Bucket int
	Number float64
	Text   string
	Raw    string
}

// Compare returns -1, 0 or +1.
func (k SearchCensusIDKey) Compare(o SearchCensusIDKey) int {
	return cmp.Or(
		cmp.Compare(k.Bucket, o.Bucket),
		cmp.Compare(k.Number, o.Number),
		cmp.Compare(k.Text, o.Text),
		cmp.Compare(k.Raw, o.Raw),
	)
}

// SearchCensusIDSortKey buckets a copy by the shape of its census id.
func SearchCensusIDSortKey(c *domain.Copy) SearchCensusIDKey {
	if c == nil {
		return SearchCensusIDKey{Bucket: BucketEmpty}
	}

	s := strings.TrimSpace(c.CensusID)
	if s == "" {
		return SearchCensusIDKey{Bucket: BucketEmpty}
	}

	if numericCensusID.MatchString(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return SearchCensusIDKey{Bucket: BucketNumeric, Number: n, Raw: s}
		}
	}

	return SearchCensusIDKey{Bucket: BucketText, Text: strings.ToLower(s), Raw: s}
}

// SearchDateKey orders by issue start date, then title, then location.
type SearchDateKey struct {
	Date     int
	Title    string
	Location string
}

// Compare returns -1, 0 or +1.
func (k SearchDateKey) Compare(o SearchDateKey) int {
	return cmp.Or(
		cmp.Compare(k.Date, o.Date),
		cmp.Compare(k.Title, o.Title),
		cmp.Compare(k.Location, o.Location),
	)
}

// SearchDateSortKey returns the date-first ordering key of a copy.
func SearchDateSortKey(c *domain.Copy) SearchDateKey {
	return SearchDateKey{Date: copyDate(c), Title: copyTitleKey(c), Location: locationKey(c)}
}

// SearchTitleKey orders by title, then date, then location.
type SearchTitleKey struct {
	Title    string
	Date     int
	Location string
}

// Compare returns -1, 0 or +1.
func (k SearchTitleKey) Compare(o SearchTitleKey) int {
	return cmp.Or(
		cmp.Compare(k.Title, o.Title),
		cmp.Compare(k.Date, o.Date),
		cmp.Compare(k.Location, o.Location),
	)
}

// SearchTitleSortKey returns the title-first ordering key of a copy.
func SearchTitleSortKey(c *domain.Copy) SearchTitleKey {
	return SearchTitleKey{Title: copyTitleKey(c), Date: copyDate(c), Location: locationKey(c)}
}

// SearchLocationKey orders by location, then date, then title.
type SearchLocationKey struct {
	Location string
	Date     int
	Title    string
}

// Compare returns -1, 0 or +1.
func (k SearchLocationKey) Compare(o SearchLocationKey) int {
	return cmp.Or(
		cmp.Compare(k.Location, o.Location),
		cmp.Compare(k.Date, o.Date),
		cmp.Compare(k.Title, o.Title),
	)
}

// SearchLocationSortKey returns the location-first ordering key of a copy.
func SearchLocationSortKey(c *domain.Copy) SearchLocationKey {
	return SearchLocationKey{Location: locationKey(c), Date: copyDate(c), Title: copyTitleKey(c)}
}

// SearchSTCKey orders by STC/Wing reference, then location.
type SearchSTCKey struct {
	STC      string
	Location string
}

// Compare returns -1, 0 or +1.
func (k SearchSTCKey) Compare(o SearchSTCKey) int {
	return cmp.Or(cmp.Compare(k.STC, o.STC), cmp.Compare(k.Location, o.Location))
}

// SearchSTCSortKey returns the STC-first ordering key of a copy.
func SearchSTCSortKey(c *domain.Copy) SearchSTCKey {
	key := SearchSTCKey{Location: locationKey(c)}
	if c != nil && c.Issue != nil {
		key.STC = c.Issue.STCWing
	}

	return key
}

// Order selects a search result ordering.
type Order string

const (
	OrderDate     Order = "date"
	OrderTitle    Order = "title"
	OrderLocation Order = "location"
	OrderSTC      Order = "stc"
	OrderCensusID Order = "census_id"
)

// ParseOrder maps the wire value to an Order. An empty value means date.
func ParseOrder(s string) Order {
	if s == "" {
		return OrderDate
	}

	return Order(s)
}

// SortCopies returns a new slice ordered by the requested key. Remaining
// ties are broken by copy ID. Unrecognized orders keep the input order.
func SortCopies(copies []*domain.Copy, order Order) []*domain.Copy {
	out := slices.Clone(copies)

	var compare func(a, b *domain.Copy) int

	switch order {
	case OrderDate:
		compare = func(a, b *domain.Copy) int { return SearchDateSortKey(a).Compare(SearchDateSortKey(b)) }
	case OrderTitle:
		compare = func(a, b *domain.Copy) int { return SearchTitleSortKey(a).Compare(SearchTitleSortKey(b)) }
	case OrderLocation:
		compare = func(a, b *domain.Copy) int { return SearchLocationSortKey(a).Compare(SearchLocationSortKey(b)) }
	case OrderSTC:
		compare = func(a, b *domain.Copy) int { return SearchSTCSortKey(a).Compare(SearchSTCSortKey(b)) }
	case OrderCensusID:
		compare = func(a, b *domain.Copy) int { return SearchCensusIDSortKey(a).Compare(SearchCensusIDSortKey(b)) }
	default:
		return out
	}

	slices.SortStableFunc(out, func(a, b *domain.Copy) int {
		return cmp.Or(compare(a, b), cmp.Compare(copyID(a), copyID(b)))
	})

	return out
}

// SortIssueListing orders copies of one issue by CopySortKey, ID last.
func SortIssueListing(copies []*domain.Copy) []*domain.Copy {
	out := slices.Clone(copies)
	slices.SortStableFunc(out, func(a, b *domain.Copy) int {
		return cmp.Or(CopySortKey(a).Compare(CopySortKey(b)), cmp.Compare(copyID(a), copyID(b)))
	})

	return out
}

// SortTitles orders titles by TitleSortKey, ID last.
func SortTitles(titles []*domain.Title) []*domain.Title {
	out := slices.Clone(titles)
	slices.SortStableFunc(out, func(a, b *domain.Title) int {
		return cmp.Or(cmp.Compare(TitleSortKey(a), TitleSortKey(b)), cmp.Compare(a.ID, b.ID))
	})

	return out
}

// SortIssues orders issues by IssueSortKey, ID last.
func SortIssues(issues []*domain.Issue) []*domain.Issue {
	out := slices.Clone(issues)
	slices.SortStableFunc(out, func(a, b *domain.Issue) int {
		return cmp.Or(IssueSortKey(a).Compare(IssueSortKey(b)), cmp.Compare(a.ID, b.ID))
	})

	return out
}
