package http

import (
	"cmp"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/handlers"
	"github.com/jsamuelsen/copy-census/internal/adapters/http/middleware"
	"github.com/jsamuelsen/copy-census/internal/platform/config"
	"github.com/jsamuelsen/copy-census/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// DefaultEditorRoles may read the admin copy view when none are configured.
var DefaultEditorRoles = []string{"editor", "admin"}

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the service in traces.
	ServiceName string

	// Tracing enables the otelgin tracing middleware.
	Tracing bool

	// AuthConfig names the identity headers set by the gateway.
	AuthConfig *config.AuthConfig

	// EditorRoles may use the admin routes.
	EditorRoles []string

	HealthHandler *handlers.HealthHandler
	CensusHandler *handlers.CensusHandler

	// Timeout bounds each API request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Tracing, when enabled
//  3. Request and correlation ids, which also seed the context logger
//  4. Request metrics
//  5. Request logging (skips /-/ endpoints)
//
// Route groups:
//   - /-/: health, build and metrics, no auth and no timeout
//   - /api/v1/: the public census
//   - /api/v1/admin/: editor views, behind RequireAuth and an editor role
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery())

	if cfg.Tracing {
		engine.Use(telemetry.TracingMiddleware(cfg.ServiceName))
	}

	engine.Use(
		middleware.RequestIDs(cfg.Logger),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(NoRoute)
	engine.NoMethod(NoMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.CensusHandler == nil {
		return
	}

	cfg.CensusHandler.RegisterCensusRoutes(apiV1)

	roles := cfg.EditorRoles
	if len(roles) == 0 {
		roles = DefaultEditorRoles
	}

	admin := apiV1.Group("/admin")
	admin.Use(
		middleware.RequireAuth(cfg.AuthConfig),
		middleware.RequireAnyRole(cfg.AuthConfig, roles...),
	)
	cfg.CensusHandler.RegisterAdminRoutes(admin)
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded
// configuration.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	censusHandler *handlers.CensusHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		Tracing:       cfg.Telemetry.Enabled,
		AuthConfig:    &cfg.Auth,
		EditorRoles:   cfg.Census.EditorRoles,
		HealthHandler: healthHandler,
		CensusHandler: censusHandler,
		Timeout:       cmp.Or(cfg.Server.RequestTimeout, DefaultRequestTimeout),
	}
}
