package handlers

import (
	"github.com/jsamuelsen/copy-census/internal/app"
	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
)

// TitleResponse is a title without its editions.
type TitleResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Apocryphal bool   `json:"apocryphal"`
	Notes      string `json:"notes,omitempty"`
}

// EditionResponse is one edition of a title.
type EditionResponse struct {
	ID     int64  `json:"id"`
	Number int    `json:"editionNumber"`
	Format string `json:"format,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// IssueResponse is one issue with its display label.
type IssueResponse struct {
	ID            int64    `json:"id"`
	Label         string   `json:"label"`
	Title         string   `json:"title"`
	EditionID     int64    `json:"editionId"`
	EditionNumber int      `json:"editionNumber"`
	IssueNumber   *int     `json:"issueNumber"`
	UnknownIssue  bool     `json:"unknownIssue"`
	STCWing       string   `json:"stcWing,omitempty"`
	ESTC          []string `json:"estc"`
	DEEP          []string `json:"deep"`
	Year          string   `json:"year,omitempty"`
	StartDate     int      `json:"startDate"`
	EndDate       int      `json:"endDate"`
	Notes         string   `json:"notes,omitempty"`
}

// TitleDetailResponse is a title page.
type TitleDetailResponse struct {
	Title     TitleResponse     `json:"title"`
	Editions  []EditionResponse `json:"editions"`
	Issues    []IssueResponse   `json:"issues"`
	CopyCount int               `json:"copyCount"`
}

// LocationResponse is a holding institution.
type LocationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	Continent string `json:"continent,omitempty"`
}

// CodeLabel is a stored code with its human-readable label.
type CodeLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// OwnerResponse is a provenance owner.
type OwnerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio,omitempty"`
	VIAF         string    `json:"viaf,omitempty"`
	StartCentury CodeLabel `json:"startCentury"`
	EndCentury   CodeLabel `json:"endCentury"`
	Gender       CodeLabel `json:"gender"`
}

// CopyResponse is the public view of a copy.
type CopyResponse struct {
	ID                int64             `json:"id"`
	CensusID          string            `json:"censusId"`
	Title             string            `json:"title"`
	IssueID           int64             `json:"issueId,omitempty"`
	IssueLabel        string            `json:"issueLabel,omitempty"`
	Year              string            `json:"year,omitempty"`
	STCWing           string            `json:"stcWing,omitempty"`
	Location          *LocationResponse `json:"location,omitempty"`
	Shelfmark         string            `json:"shelfmark,omitempty"`
	Verification      CodeLabel         `json:"verification"`
	Fragment          bool              `json:"fragment"`
	FromESTC          bool              `json:"fromEstc"`
	FacsimileURL      string            `json:"digitalFacsimileUrl,omitempty"`
	Binding           string            `json:"binding,omitempty"`
	InEarlySammelband bool              `json:"inEarlySammelband"`
	SammelbandNotes   string            `json:"sammelbandNotes,omitempty"`
	Marginalia        string            `json:"marginalia,omitempty"`
	LocalNotes        string            `json:"localNotes,omitempty"`
	ProvenanceNotes   string            `json:"provenanceNotes,omitempty"`
	Bibliography      string            `json:"bibliography,omitempty"`
	Height            *float64          `json:"height,omitempty"`
	Width             *float64          `json:"width,omitempty"`
	Owners            []OwnerResponse   `json:"provenanceNames"`
}

// AdminCopyResponse adds the editorial fields hidden from the public view.
type AdminCopyResponse struct {
	CopyResponse

	NonpublicNotes string `json:"nonpublicNotes"`
	CreatedBy      string `json:"createdBy"`
	VerifiedBy     string `json:"verifiedBy"`
	ExaminedBy     string `json:"examinedBy"`
}

func toTitleResponse(t *domain.Title) TitleResponse {
	return TitleResponse{ID: t.ID, Title: t.Name, Apocryphal: t.Apocryphal, Notes: t.Notes}
}

func toEditionResponse(e *domain.Edition) EditionResponse {
	return EditionResponse{ID: e.ID, Number: e.Number, Format: e.Format, Notes: e.Notes}
}

func toIssueResponse(i *domain.Issue, label string) IssueResponse {
	resp := IssueResponse{
		ID:           i.ID,
		Label:        label,
		IssueNumber:  i.Number,
		UnknownIssue: i.UnknownIssue,
		STCWing:      i.STCWing,
		ESTC:         nonNil(i.ESTCList()),
		DEEP:         nonNil(i.DEEPList()),
		Year:         i.Year,
		StartDate:    i.StartDate,
		EndDate:      i.EndDate,
		Notes:        i.Notes,
	}

	if e := i.Edition; e != nil {
		resp.EditionID = e.ID
		resp.EditionNumber = e.Number

		if e.Title != nil {
			resp.Title = e.Title.Name
		}
	}

	return resp
}

func toLocationResponse(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}

	return &LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		City:      l.City,
		State:     l.State,
		Country:   l.Country,
		Continent: l.Continent,
	}
}

func toOwnerResponse(o *domain.ProvenanceName) OwnerResponse {
	return OwnerResponse{
		ID:           o.ID,
		Name:         o.Name,
		Bio:          o.Bio,
		VIAF:         o.VIAF,
		StartCentury: CodeLabel{Code: string(o.StartCentury), Label: o.StartCentury.Label()},
		EndCentury:   CodeLabel{Code: string(o.EndCentury), Label: o.EndCentury.Label()},
		Gender:       CodeLabel{Code: string(o.Gender), Label: o.Gender.Label()},
	}
}

func toCopyResponse(c *domain.Copy) CopyResponse {
	resp := CopyResponse{
		ID:                c.ID,
		CensusID:          c.CensusID,
		Location:          toLocationResponse(c.Location),
		Shelfmark:         c.Shelfmark,
		Verification:      CodeLabel{Code: string(c.Verification), Label: c.Verification.Label()},
		Fragment:          c.Fragment,
		FromESTC:          c.FromESTC,
		FacsimileURL:      c.FacsimileURL,
		Binding:           c.Binding,
		InEarlySammelband: c.InEarlySammelband,
		SammelbandNotes:   c.SammelbandNotes,
		Marginalia:        c.Marginalia,
		LocalNotes:        c.LocalNotes,
		ProvenanceNotes:   c.ProvenanceNotes,
		Bibliography:      c.Bibliography,
		Height:            c.Height,
		Width:             c.Width,
		Owners:            make([]OwnerResponse, 0, len(c.Owners)),
	}

	if i := c.Issue; i != nil {
		resp.IssueID = i.ID
		resp.IssueLabel = catalog.IssueLabel(i, nil)
		resp.Year = i.Year
		resp.STCWing = i.STCWing

		if i.Edition != nil && i.Edition.Title != nil {
			resp.Title = i.Edition.Title.Name
		}
	}

	for _, o := range c.Owners {
		if o != nil {
			resp.Owners = append(resp.Owners, toOwnerResponse(o))
		}
	}

	return resp
}

func toCopyResponses(copies []*domain.Copy) []CopyResponse {
	out := make([]CopyResponse, 0, len(copies))
	for _, c := range copies {
		out = append(out, toCopyResponse(c))
	}

	return out
}

func toAdminCopyResponse(c *domain.Copy) AdminCopyResponse {
	return AdminCopyResponse{
		CopyResponse:   toCopyResponse(c),
		NonpublicNotes: c.NonpublicNotes,
		CreatedBy:      c.CreatedBy,
		VerifiedBy:     c.VerifiedBy,
		ExaminedBy:     c.ExaminedBy,
	}
}

func toTitleDetailResponse(d *app.TitleDetail) TitleDetailResponse {
	resp := TitleDetailResponse{
		Title:     toTitleResponse(d.Title),
		Editions:  make([]EditionResponse, 0, len(d.Editions)),
		Issues:    make([]IssueResponse, 0, len(d.Issues)),
		CopyCount: d.CopyCount,
	}

	for _, e := range d.Editions {
		resp.Editions = append(resp.Editions, toEditionResponse(e))
	}

	for _, i := range d.Issues {
		resp.Issues = append(resp.Issues, toIssueResponse(i.Issue, i.Label))
	}

	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
