// Package sqlstore implements the census repository on gorm with an
// embedded sqlite database.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen/copy-census/internal/domain"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Config configures the store.
type Config struct {
	// Path is the sqlite database file. Parent directories are created.
	Path string

	// AutoMigrate creates or updates the schema on open.
	AutoMigrate bool

	// MaxOpenConns bounds the connection pool. Zero leaves the driver default.
	MaxOpenConns int

	// LogQueries logs every statement at trace level.
	LogQueries bool
}

// Store is the gorm-backed census repository.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ ports.CatalogRepository = (*Store)(nil)

// Open connects to the sqlite database at cfg.Path, verifies the connection
// and optionally migrates the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn, err := dataSource(cfg.Path)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newQueryLogger(logger, cfg.LogQueries),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	switch {
	case cfg.Path == MemoryPath:
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db, logger: logger}

	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.InfoContext(ctx, "census store opened",
		slog.String("path", cfg.Path),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return s, nil
}

func dataSource(path string) (string, error) {
	if path == "" {
		return "", errors.New("database path is required")
	}

	if path == MemoryPath {
		return "file::memory:?_foreign_keys=on", nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create database directory: %w", err)
	}

	return "file:" + path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", nil
}

// Migrate creates or updates every census table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "census-store"
}

// Check implements ports.HealthChecker by pinging the database.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	return nil
}

var canonicalCodes = []string{
	string(domain.VerificationVerified),
	string(domain.VerificationUnverified),
}

// issuesByID orders preloaded sibling issues.
func issuesByID(db *gorm.DB) *gorm.DB { return db.Order("issues.id") }

// copies starts a copy query with every relation the catalog rules read.
// Sibling issues are loaded so issue labels can tell single-issue editions
// apart.
func (s *Store) copies(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&copyRecord{}).
		Preload("Issue.Edition.Title").
		Preload("Issue.Edition.Issues", issuesByID).
		Preload("Location").
		Preload("Owners", func(db *gorm.DB) *gorm.DB {
			return db.Order("provenance_names.id")
		})
}

// Copies implements ports.CatalogRepository.
func (s *Store) Copies(ctx context.Context, filter ports.CopyFilter) ([]*domain.Copy, error) {
	q := s.copies(ctx)

	if filter.CanonicalOnly {
		q = q.Where("copies.verification IN ?", canonicalCodes)
	}

	if filter.IssueID != 0 {
		q = q.Where("copies.issue_id = ?", filter.IssueID)
	}

	if filter.TitleID != 0 {
		issues := s.db.Model(&issueRecord{}).
			Select("issues.id").
			Joins("JOIN editions ON editions.id = issues.edition_id").
			Where("editions.title_id = ?", filter.TitleID)
		q = q.Where("copies.issue_id IN (?)", issues)
	}

	var rows []copyRecord
	if err := q.Order("copies.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}

	g := newGraph()

	out := make([]*domain.Copy, 0, len(rows))
	for i := range rows {
		out = append(out, g.copy(&rows[i]))
	}

	return out, nil
}

// Copy implements ports.CatalogRepository.
func (s *Store) Copy(ctx context.Context, id int64) (*domain.Copy, error) {
	var row copyRecord
	if err := s.copies(ctx).Where("copies.id = ?", id).First(&row).Error; err != nil {
		return nil, lookupError(err, "copy", strconv.FormatInt(id, 10))
	}

	return newGraph().copy(&row), nil
}

// CopyByCensusID implements ports.CatalogRepository.
func (s *Store) CopyByCensusID(ctx context.Context, censusID string) (*domain.Copy, error) {
	var row copyRecord
	if err := s.copies(ctx).Where("copies.census_id = ?", censusID).First(&row).Error; err != nil {
		return nil, lookupError(err, "copy", censusID)
	}

	return newGraph().copy(&row), nil
}

// Titles implements ports.CatalogRepository.
func (s *Store) Titles(ctx context.Context) ([]*domain.Title, error) {
	var rows []titleRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	g := newGraph()

	out := make([]*domain.Title, 0, len(rows))
	for i := range rows {
		out = append(out, g.title(&rows[i]))
	}

	return out, nil
}

// Title implements ports.CatalogRepository.
func (s *Store) Title(ctx context.Context, id int64) (*domain.Title, error) {
	var row titleRecord

	err := s.db.WithContext(ctx).
		Preload("Editions", func(db *gorm.DB) *gorm.DB { return db.Order("editions.id") }).
		Preload("Editions.Issues", issuesByID).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, lookupError(err, "title", strconv.FormatInt(id, 10))
	}

	return newGraph().title(&row), nil
}

// Issue implements ports.CatalogRepository.
func (s *Store) Issue(ctx context.Context, id int64) (*domain.Issue, error) {
	var row issueRecord

	err := s.db.WithContext(ctx).
		Preload("Edition.Title").
		Preload("Edition.Issues", issuesByID).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, lookupError(err, "issue", strconv.FormatInt(id, 10))
	}

	return newGraph().issue(&row), nil
}

// LocationNames implements ports.CatalogRepository.
func (s *Store) LocationNames(ctx context.Context, contains string) ([]string, error) {
	return s.pluckContaining(ctx, &locationRecord{}, "name", contains)
}

// geographyColumns are the location columns searched by geography autofill.
var geographyColumns = []string{"city", "state", "country", "continent"}

// GeographyValues implements ports.CatalogRepository.
func (s *Store) GeographyValues(ctx context.Context, contains string) ([]string, error) {
	var out []string

	for _, column := range geographyColumns {
		values, err := s.pluckContaining(ctx, &locationRecord{}, column, contains)
		if err != nil {
			return nil, err
		}

		out = append(out, values...)
	}

	return out, nil
}

// ProvenanceNames implements ports.CatalogRepository.
func (s *Store) ProvenanceNames(ctx context.Context, contains string) ([]string, error) {
	return s.pluckContaining(ctx, &ownerRecord{}, "name", contains)
}

// StaticPage implements ports.CatalogRepository.
func (s *Store) StaticPage(ctx context.Context, viewname string) (*domain.StaticPage, error) {
	var row staticPageRecord
	if err := s.db.WithContext(ctx).Where("view_name = ?", viewname).First(&row).Error; err != nil {
		return nil, lookupError(err, "static page", viewname)
	}

	return &domain.StaticPage{ID: row.ID, ViewName: row.ViewName, Content: row.Content}, nil
}

// pluckContaining returns the distinct values of one column that contain the
// text, ignoring case. column must be a trusted identifier.
func (s *Store) pluckContaining(ctx context.Context, model any, column, contains string) ([]string, error) {
	var values []string

	err := s.db.WithContext(ctx).
		Model(model).
		Distinct(column).
		Where("LOWER("+column+") LIKE ? ESCAPE '\\'", likePattern(contains)).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("autofill %s: %w", column, err)
	}

	return values, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a lower-cased substring pattern with LIKE wildcards in
// the text escaped.
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

func lookupError(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity, id)
	}

	return fmt.Errorf("load %s %s: %w", entity, id, err)
}
