package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/parts-inventory/internal/config"
	"github.com/diewo77/parts-inventory/internal/db"
	"github.com/diewo77/parts-inventory/internal/handlers"
	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/middleware"
	"github.com/diewo77/parts-inventory/internal/services"
	"github.com/diewo77/parts-inventory/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	db      *gorm.DB
	handler http.Handler
}

// resources holds one handler per REST resource.
type resources struct {
	categories *handlers.CategoryHandler
	parts      *handlers.PartHandler
	precisions *handlers.PrecisionHandler
	sizes      *handlers.SizeHandler
	units      *handlers.UnitHandler
}

// newResources wires store -> service -> handler for every resource.
func newResources(conn *gorm.DB) resources {
	return resources{
		categories: handlers.NewCategoryHandler(services.NewCategoryService(store.NewCategoryStore(conn))),
		parts:      handlers.NewPartHandler(services.NewPartService(store.NewPartStore(conn))),
		precisions: handlers.NewPrecisionHandler(services.NewPrecisionService(store.NewPrecisionStore(conn))),
		sizes:      handlers.NewSizeHandler(services.NewSizeService(store.NewSizeStore(conn))),
		units:      handlers.NewUnitHandler(services.NewUnitService(store.NewUnitStore(conn))),
	}
}

// NewApp creates a new application with all routes configured.
func NewApp(conn *gorm.DB, cfg *config.Config) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  conn,
	}
	app.setupRoutes()
	app.handler = middleware.Chain(app.mux,
		middleware.Recover,
		middleware.RequestID,
		middleware.Logging,
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /healthz", a.healthz)

	res := newResources(a.db)
	res.categories.Register(a.mux)
	res.parts.Register(a.mux)
	res.precisions.Register(a.mux)
	res.sizes.Register(a.mux)
	res.units.Register(a.mux)
}

func (a *App) health(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// healthz also checks the database with SELECT 1.
func (a *App) healthz(w http.ResponseWriter, _ *http.Request) {
	if err := db.Ping(a.db); err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
