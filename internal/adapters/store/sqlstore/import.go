package sqlstore

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/jsamuelsen/copy-census/internal/domain"
)

// Snapshot is a self-contained set of census entities to load into the store.
// Titles carry their editions and issues. Copies reference issues, locations
// and owners that are either part of the snapshot or already stored.
type Snapshot struct {
	Titles    []*domain.Title
	Locations []*domain.Location
	Owners    []*domain.ProvenanceName
	Copies    []*domain.Copy
	Pages     []*domain.StaticPage
}

type ownershipRecord struct {
	CopyID  int64 `gorm:"primaryKey"`
	OwnerID int64 `gorm:"primaryKey"`
}

func (ownershipRecord) TableName() string { return "provenance_ownerships" }

// Import writes the snapshot in one transaction. Entities with a zero ID are
// assigned one, and the assigned ID is written back to the domain value so
// later references in the same snapshot resolve.
func (s *Store) Import(ctx context.Context, snap *Snapshot) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := importTitles(tx, snap.Titles); err != nil {
			return err
		}

		for _, l := range snap.Locations {
			row := toLocationRecord(l)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("location %q: %w", l.Name, err)
			}

			l.ID = row.ID
		}

		for _, o := range snap.Owners {
			row := toOwnerRecord(o)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("provenance name %q: %w", o.Name, err)
			}

			o.ID = row.ID
		}

		if err := importCopies(tx, snap.Copies); err != nil {
			return err
		}

		for _, p := range snap.Pages {
			row := staticPageRecord{ID: p.ID, ViewName: p.ViewName, Content: p.Content}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("static page %q: %w", p.ViewName, err)
			}

			p.ID = row.ID
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "snapshot imported",
		slog.Int("titles", len(snap.Titles)),
		slog.Int("locations", len(snap.Locations)),
		slog.Int("owners", len(snap.Owners)),
		slog.Int("copies", len(snap.Copies)),
		slog.Int("pages", len(snap.Pages)),
	)

	return nil
}

func importTitles(tx *gorm.DB, titles []*domain.Title) error {
	for _, t := range titles {
		row := toTitleRecord(t)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("title %q: %w", t.Name, err)
		}

		t.ID = row.ID

		for _, e := range t.Editions {
			erow := toEditionRecord(e, t.ID)
			if err := tx.Create(&erow).Error; err != nil {
				return fmt.Errorf("edition %d of %q: %w", e.Number, t.Name, err)
			}

			e.ID = erow.ID

			for _, i := range e.Issues {
				irow := toIssueRecord(i, e.ID)
				if err := tx.Create(&irow).Error; err != nil {
					return fmt.Errorf("issue of %q edition %d: %w", t.Name, e.Number, err)
				}

				i.ID = irow.ID
			}
		}
	}

	return nil
}

func importCopies(tx *gorm.DB, copies []*domain.Copy) error {
	for _, c := range copies {
		if c.Issue == nil {
			return fmt.Errorf("copy %q has no issue", c.CensusID)
		}

		row := toCopyRecord(c)
		if err := tx.Omit("Owners").Create(&row).Error; err != nil {
			return fmt.Errorf("copy %q: %w", c.CensusID, err)
		}

		c.ID = row.ID

		if len(c.Owners) == 0 {
			continue
		}

		links := make([]ownershipRecord, 0, len(c.Owners))
		for _, o := range c.Owners {
			links = append(links, ownershipRecord{CopyID: c.ID, OwnerID: o.ID})
		}

		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("owners of copy %q: %w", c.CensusID, err)
		}
	}

	return nil
}
