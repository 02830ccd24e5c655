package sqlstore

import (
	"github.com/jsamuelsen/copy-census/internal/domain"
)

type titleRecord struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:255;not null;uniqueIndex"`
	Apocryphal bool   `gorm:"not null;default:false"`
	Notes      string

	Editions []editionRecord `gorm:"foreignKey:TitleID;references:ID"`
}

func (titleRecord) TableName() string { return "titles" }

type editionRecord struct {
	ID      int64        `gorm:"primaryKey;autoIncrement"`
	TitleID int64        `gorm:"not null;index"`
	Title   *titleRecord `gorm:"foreignKey:TitleID;references:ID"`
	Number  int          `gorm:"column:edition_number;not null"`
	Format  string       `gorm:"size:10"`
	Notes   string

	Issues []issueRecord `gorm:"foreignKey:EditionID;references:ID"`
}

func (editionRecord) TableName() string { return "editions" }

type issueRecord struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	EditionID    int64          `gorm:"not null;index"`
	Edition      *editionRecord `gorm:"foreignKey:EditionID;references:ID"`
	Number       *int           `gorm:"column:issue_number"`
	UnknownIssue bool           `gorm:"not null;default:false"`
	STCWing      string         `gorm:"column:stc_wing;size:20"`
	ESTC         string         `gorm:"column:estc"`
	DEEP         string         `gorm:"column:deep"`
	Year         string         `gorm:"size:20"`
	StartDate    int            `gorm:"not null;default:0"`
	EndDate      int            `gorm:"not null;default:0"`
	Notes        string
}

func (issueRecord) TableName() string { return "issues" }

type locationRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:500;not null;index"`
	City      string `gorm:"size:255"`
	State     string `gorm:"size:255"`
	Country   string `gorm:"size:255"`
	Continent string `gorm:"size:255"`
}

func (locationRecord) TableName() string { return "locations" }

type ownerRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:256;not null;index"`
	Bio          string
	VIAF         string `gorm:"column:viaf;size:256"`
	StartCentury string `gorm:"size:2"`
	EndCentury   string `gorm:"size:2"`
	Gender       string `gorm:"size:1"`
}

func (ownerRecord) TableName() string { return "provenance_names" }

type copyRecord struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	IssueID           int64           `gorm:"not null;index"`
	Issue             *issueRecord    `gorm:"foreignKey:IssueID;references:ID"`
	LocationID        *int64          `gorm:"index"`
	Location          *locationRecord `gorm:"foreignKey:LocationID;references:ID"`
	Shelfmark         string          `gorm:"size:500"`
	CensusID          string          `gorm:"column:census_id;size:40;index"`
	Verification      string          `gorm:"size:1;not null;index"`
	Fragment          bool            `gorm:"column:is_fragment;not null;default:false"`
	FromESTC          bool            `gorm:"column:from_estc;not null;default:false"`
	FacsimileURL      string          `gorm:"column:digital_facsimile_url;size:500"`
	Binding           string
	InEarlySammelband bool `gorm:"not null;default:false"`
	SammelbandNotes   string
	Marginalia        string
	LocalNotes        string
	ProvenanceNotes   string
	Bibliography      string
	NonpublicNotes    string
	Height            *float64
	Width             *float64
	CreatedBy         string `gorm:"size:255"`
	VerifiedBy        string `gorm:"size:255"`
	ExaminedBy        string `gorm:"size:255"`

	Owners []ownerRecord `gorm:"many2many:provenance_ownerships;joinForeignKey:CopyID;joinReferences:OwnerID"`
}

func (copyRecord) TableName() string { return "copies" }

type staticPageRecord struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	ViewName string `gorm:"size:255;not null;uniqueIndex"`
	Content  string
}

func (staticPageRecord) TableName() string { return "static_pages" }

// models lists every table in migration order.
func models() []any {
	return []any{
		&titleRecord{},
		&editionRecord{},
		&issueRecord{},
		&locationRecord{},
		&ownerRecord{},
		&copyRecord{},
		&staticPageRecord{},
	}
}

// graph converts records into domain entities, sharing one pointer per
// stored row so that relations read back as a connected graph.
type graph struct {
	titles    map[int64]*domain.Title
	editions  map[int64]*domain.Edition
	issues    map[int64]*domain.Issue
	locations map[int64]*domain.Location
	owners    map[int64]*domain.ProvenanceName
}

func newGraph() *graph {
	return &graph{
		titles:    make(map[int64]*domain.Title),
		editions:  make(map[int64]*domain.Edition),
		issues:    make(map[int64]*domain.Issue),
		locations: make(map[int64]*domain.Location),
		owners:    make(map[int64]*domain.ProvenanceName),
	}
}

func (g *graph) title(r *titleRecord) *domain.Title {
	if r == nil {
		return nil
	}

	if t, ok := g.titles[r.ID]; ok {
		return t
	}

	t := &domain.Title{ID: r.ID, Name: r.Name, Apocryphal: r.Apocryphal, Notes: r.Notes}
	g.titles[r.ID] = t

	for i := range r.Editions {
		e := g.edition(&r.Editions[i])
		e.Title = t
		t.Editions = append(t.Editions, e)
	}

	return t
}

func (g *graph) edition(r *editionRecord) *domain.Edition {
	if r == nil {
		return nil
	}

	if e, ok := g.editions[r.ID]; ok {
		return e
	}

	e := &domain.Edition{ID: r.ID, Number: r.Number, Format: r.Format, Notes: r.Notes}
	g.editions[r.ID] = e
	e.Title = g.title(r.Title)

	for i := range r.Issues {
		is := g.issue(&r.Issues[i])
		is.Edition = e
		e.Issues = append(e.Issues, is)
	}

	return e
}

func (g *graph) issue(r *issueRecord) *domain.Issue {
	if r == nil {
		return nil
	}

	if i, ok := g.issues[r.ID]; ok {
		return i
	}

	i := &domain.Issue{
		ID:           r.ID,
		Number:       r.Number,
		UnknownIssue: r.UnknownIssue,
		STCWing:      r.STCWing,
		ESTC:         r.ESTC,
		DEEP:         r.DEEP,
		Year:         r.Year,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Notes:        r.Notes,
	}
	g.issues[r.ID] = i
	i.Edition = g.edition(r.Edition)

	return i
}

func (g *graph) location(r *locationRecord) *domain.Location {
	if r == nil {
		return nil
	}

	if l, ok := g.locations[r.ID]; ok {
		return l
	}

	l := &domain.Location{
		ID:        r.ID,
		Name:      r.Name,
		City:      r.City,
		State:     r.State,
		Country:   r.Country,
		Continent: r.Continent,
	}
	g.locations[r.ID] = l

	return l
}

func (g *graph) owner(r *ownerRecord) *domain.ProvenanceName {
	if o, ok := g.owners[r.ID]; ok {
		return o
	}

	o := &domain.ProvenanceName{
		ID:           r.ID,
		Name:         r.Name,
		Bio:          r.Bio,
		VIAF:         r.VIAF,
		StartCentury: domain.Century(r.StartCentury),
		EndCentury:   domain.Century(r.EndCentury),
		Gender:       domain.Gender(r.Gender),
	}
	g.owners[r.ID] = o

	return o
}

func (g *graph) copy(r *copyRecord) *domain.Copy {
	c := &domain.Copy{
		ID:                r.ID,
		Issue:             g.issue(r.Issue),
		Location:          g.location(r.Location),
		Shelfmark:         r.Shelfmark,
		CensusID:          r.CensusID,
		Verification:      domain.Verification(r.Verification),
		Fragment:          r.Fragment,
		FromESTC:          r.FromESTC,
		FacsimileURL:      r.FacsimileURL,
		Binding:           r.Binding,
		InEarlySammelband: r.InEarlySammelband,
		SammelbandNotes:   r.SammelbandNotes,
		Marginalia:        r.Marginalia,
		LocalNotes:        r.LocalNotes,
		ProvenanceNotes:   r.ProvenanceNotes,
		Bibliography:      r.Bibliography,
		NonpublicNotes:    r.NonpublicNotes,
		Height:            r.Height,
		Width:             r.Width,
		CreatedBy:         r.CreatedBy,
		VerifiedBy:        r.VerifiedBy,
		ExaminedBy:        r.ExaminedBy,
	}

	for i := range r.Owners {
		c.Owners = append(c.Owners, g.owner(&r.Owners[i]))
	}

	return c
}

func toTitleRecord(t *domain.Title) titleRecord {
	return titleRecord{ID: t.ID, Name: t.Name, Apocryphal: t.Apocryphal, Notes: t.Notes}
}

func toEditionRecord(e *domain.Edition, titleID int64) editionRecord {
	return editionRecord{ID: e.ID, TitleID: titleID, Number: e.Number, Format: e.Format, Notes: e.Notes}
}

func toIssueRecord(i *domain.Issue, editionID int64) issueRecord {
	return issueRecord{
		ID:           i.ID,
		EditionID:    editionID,
		Number:       i.Number,
		UnknownIssue: i.UnknownIssue,
		STCWing:      i.STCWing,
		ESTC:         i.ESTC,
		DEEP:         i.DEEP,
		Year:         i.Year,
		StartDate:    i.StartDate,
		EndDate:      i.EndDate,
		Notes:        i.Notes,
	}
}

func toLocationRecord(l *domain.Location) locationRecord {
	return locationRecord{
		ID:        l.ID,
		Name:      l.Name,
		City:      l.City,
		State:     l.State,
		Country:   l.Country,
		Continent: l.Continent,
	}
}

func toOwnerRecord(o *domain.ProvenanceName) ownerRecord {
	return ownerRecord{
		ID:           o.ID,
		Name:         o.Name,
		Bio:          o.Bio,
		VIAF:         o.VIAF,
		StartCentury: string(o.StartCentury),
		EndCentury:   string(o.EndCentury),
		Gender:       string(o.Gender),
	}
}

func toCopyRecord(c *domain.Copy) copyRecord {
	r := copyRecord{
		ID:                c.ID,
		Shelfmark:         c.Shelfmark,
		CensusID:          c.CensusID,
		Verification:      string(c.Verification),
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
		NonpublicNotes:    c.NonpublicNotes,
		Height:            c.Height,
		Width:             c.Width,
		CreatedBy:         c.CreatedBy,
		VerifiedBy:        c.VerifiedBy,
		ExaminedBy:        c.ExaminedBy,
	}

	if c.Issue != nil {
		r.IssueID = c.Issue.ID
	}

	if c.Location != nil {
		id := c.Location.ID
		r.LocationID = &id
	}

	return r
}
