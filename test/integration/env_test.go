//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/copy-census/internal/adapters/http"
	"github.com/jsamuelsen/copy-census/internal/adapters/http/handlers"
	"github.com/jsamuelsen/copy-census/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen/copy-census/internal/app"
	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
	"github.com/jsamuelsen/copy-census/internal/platform/config"
	"github.com/jsamuelsen/copy-census/internal/platform/telemetry"
	"github.com/jsamuelsen/copy-census/internal/ports"
)

// censusEnv is a running census over a seeded sqlite store.
type censusEnv struct {
	store    *sqlstore.Store
	service  *app.CensusService
	server   *httptest.Server
	registry *prometheus.Registry
}

func intPtr(n int) *int { return &n }

// seedSnapshot is a small census: two titles, three holding institutions,
// two owners, four canonical copies and one ghost.
func seedSnapshot() *sqlstore.Snapshot {
	f1 := &domain.Issue{Number: intPtr(1), ESTC: "S111", STCWing: "22273", Year: "1623", StartDate: 1623, EndDate: 1623}
	f2 := &domain.Issue{Number: intPtr(1), ESTC: "S222", STCWing: "22274", Year: "1632", StartDate: 1632, EndDate: 1632}
	q1 := &domain.Issue{Number: intPtr(1), STCWing: "22280", Year: "1598", StartDate: 1598, EndDate: 1598}

	tempest := &domain.Title{Name: "The Tempest", Editions: []*domain.Edition{
		{Number: 1, Format: "Folio", Issues: []*domain.Issue{f1}},
		{Number: 2, Format: "Folio", Issues: []*domain.Issue{f2}},
	}}
	henry := &domain.Title{Name: "1 Henry IV", Editions: []*domain.Edition{
		{Number: 1, Format: "Quarto", Issues: []*domain.Issue{q1}},
	}}

	folger := &domain.Location{Name: "The Folger Shakespeare Library", City: "Washington", State: "DC", Country: "USA"}
	bod := &domain.Location{Name: "Bodleian Library", City: "Oxford", Country: "UK"}
	huntington := &domain.Location{Name: "Huntington Library", City: "San Marino", State: "CA", Country: "USA"}

	pepys := &domain.ProvenanceName{
		Name: "Samuel Pepys", Bio: "Diarist", Gender: domain.GenderMale,
		StartCentury: domain.CenturyPre1700, EndCentury: domain.CenturyPre1700,
	}
	howard := &domain.ProvenanceName{
		Name: "Lady Elizabeth Howard", Gender: domain.GenderFemale,
		StartCentury: domain.CenturyPre1700, EndCentury: domain.CenturyEighteen,
	}

	return &sqlstore.Snapshot{
		Titles:    []*domain.Title{tempest, henry},
		Locations: []*domain.Location{folger, bod, huntington},
		Owners:    []*domain.ProvenanceName{pepys, howard},
		Copies: []*domain.Copy{
			{
				Issue: f1, Location: folger, CensusID: "1", Shelfmark: "STC 22273 Fo.1 no.68",
				Verification: domain.VerificationVerified, Owners: []*domain.ProvenanceName{pepys},
				Marginalia: "Annotated throughout", NonpublicNotes: "check binding", CreatedBy: "editor1",
			},
			{
				Issue: f1, Location: bod, CensusID: "2", Verification: domain.VerificationUnverified,
				Fragment: true, Owners: []*domain.ProvenanceName{howard},
			},
			{Issue: f2, Location: huntington, CensusID: "3", Verification: domain.VerificationVerified, FromESTC: true},
			{Issue: q1, Location: folger, CensusID: "4", Verification: domain.VerificationVerified},
			{Issue: q1, Location: bod, CensusID: "5", Verification: domain.VerificationFalse},
		},
		Pages: []*domain.StaticPage{
			{ViewName: "about", Content: "{page_name}: {canonical_count} copies, {fragment_copy_count} fragment"},
		},
	}
}

// newCensusEnv opens a store in a temp dir, imports the seed census and
// serves the full router over it.
func newCensusEnv(tb testing.TB) *censusEnv {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlstore.Open(ctx, sqlstore.Config{
		Path:         filepath.Join(tb.TempDir(), "census.db"),
		AutoMigrate:  true,
		MaxOpenConns: 4,
	}, logger)
	if err != nil {
		tb.Fatalf("opening store: %v", err)
	}
	tb.Cleanup(func() { _ = store.Close() })

	if err := store.Import(ctx, seedSnapshot()); err != nil {
		tb.Fatalf("importing seed census: %v", err)
	}

	registry := prometheus.NewRegistry()

	metrics, err := telemetry.NewSearchMetrics(registry)
	if err != nil {
		tb.Fatalf("registering search metrics: %v", err)
	}

	service := app.NewCensusService(app.CensusServiceConfig{
		Repository: store,
		Labels:     catalog.NewLabels("WSC"),
		Site:       app.Site{Name: "Shakespeare Census", Email: "census@example.org"},
		Observer:   metrics,
		Logger:     logger,
	})

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		tb.Fatalf("registering store check: %v", err)
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "copy-census",
		AuthConfig:    &config.AuthConfig{SubjectHeader: "X-User-ID", RolesHeader: "X-User-Roles"},
		HealthHandler: handlers.NewHealthHandler(health, handlers.BuildInfo{Service: "copy-census"}).WithGatherer(registry),
		CensusHandler: handlers.NewCensusHandler(service),
		Timeout:       httpadapter.DefaultRequestTimeout,
	})

	server := httptest.NewServer(engine)
	tb.Cleanup(server.Close)

	return &censusEnv{store: store, service: service, server: server, registry: registry}
}
