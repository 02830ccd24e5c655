package catalog

import (
	"github.com/jsamuelsen/copy-census/internal/domain"
)

// censusFixture is a small hydrated graph shared by the catalog tests.
type censusFixture struct {
	tempest, henry          *domain.Title
	tempestEd1, henryEd1    *domain.Edition
	tempestIss, henryIss    *domain.Issue
	folger, bodleian, huntn *domain.Location
	mary1, mary2, anne      *domain.ProvenanceName
	copies                  []*domain.Copy
}

func intPtr(n int) *int { return &n }

func newCensusFixture() *censusFixture {
	f := &censusFixture{}

	f.tempest = &domain.Title{ID: 1, Name: "The Tempest"}
	f.henry = &domain.Title{ID: 2, Name: "1 Henry IV"}

	f.tempestEd1 = &domain.Edition{ID: 10, Title: f.tempest, Number: 1}
	f.henryEd1 = &domain.Edition{ID: 20, Title: f.henry, Number: 1}
	f.tempest.Editions = []*domain.Edition{f.tempestEd1}
	f.henry.Editions = []*domain.Edition{f.henryEd1}

	f.tempestIss = &domain.Issue{
		ID: 100, Edition: f.tempestEd1, STCWing: "STC 22273", ESTC: "S111",
		Year: "1623", StartDate: 1623, EndDate: 1623,
	}
	f.henryIss = &domain.Issue{
		ID: 200, Edition: f.henryEd1, STCWing: "STC 22280", ESTC: "S222",
		Year: "c. 1598", StartDate: 1598, EndDate: 1599,
	}
	f.tempestEd1.Issues = []*domain.Issue{f.tempestIss}
	f.henryEd1.Issues = []*domain.Issue{f.henryIss}

	f.folger = &domain.Location{ID: 1, Name: "The Folger Shakespeare Library", City: "Washington", State: "DC", Country: "USA", Continent: "North America"}
	f.bodleian = &domain.Location{ID: 2, Name: "Bodleian Library", City: "Oxford", Country: "United Kingdom", Continent: "Europe"}
	f.huntn = &domain.Location{ID: 3, Name: "Huntington Library", City: "San Marino", State: "California", Country: "USA", Continent: "North America"}

	f.mary1 = &domain.ProvenanceName{ID: 1, Name: "Mary Smith", Gender: domain.GenderFemale, StartCentury: domain.CenturyPre1700}
	f.mary2 = &domain.ProvenanceName{ID: 2, Name: "Mary Jones", Gender: domain.GenderFemale, StartCentury: domain.CenturyNineteen}
	f.anne = &domain.ProvenanceName{ID: 3, Name: "Anne Clifford", Gender: domain.GenderFemale, StartCentury: domain.CenturyEighteen}

	f.copies = []*domain.Copy{
		{
			ID: 1, Issue: f.tempestIss, Location: f.folger, CensusID: "10", Shelfmark: "STC 22273 Fo.1 no.1",
			Verification: domain.VerificationVerified, Owners: []*domain.ProvenanceName{f.mary1, f.mary2},
			Marginalia: "annotated throughout", FacsimileURL: "https://example.org/f1",
		},
		{
			ID: 2, Issue: f.henryIss, Location: f.bodleian, CensusID: "9", Shelfmark: "Arch. G d.41",
			Verification: domain.VerificationUnverified, Binding: "Calf, gilt", FromESTC: true,
		},
		{
			ID: 3, Issue: f.tempestIss, Location: f.huntn, CensusID: "abc", Shelfmark: "69304",
			Verification: domain.VerificationVerified, InEarlySammelband: true, Fragment: true,
			Owners: []*domain.ProvenanceName{f.anne},
		},
		{
			ID: 4, Issue: f.henryIss, Location: f.folger, CensusID: "", Shelfmark: "STC 22280",
			Verification: domain.VerificationFalse, Owners: []*domain.ProvenanceName{f.mary1},
		},
	}

	return f
}

func (f *censusFixture) copy(id int64) *domain.Copy {
	for _, c := range f.copies {
		if c.ID == id {
			return c
		}
	}

	return nil
}

func ids(copies []*domain.Copy) []int64 {
	out := make([]int64, 0, len(copies))
	for _, c := range copies {
		out = append(out, c.ID)
	}

	return out
}
