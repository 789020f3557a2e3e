package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"shipment-tracking-service/internal/api/handlers"
	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/platform/metrics"
	"shipment-tracking-service/internal/services"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Catalog  *catalog.Catalog
	Tracking *services.TrackingService
	// Metrics is optional; without it /metrics is not mounted.
	Metrics *metrics.Registry

	// RateLimitRPS <= 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string

	// LookupRefresh mounts POST /status-lookups/refresh.
	LookupRefresh bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(deps.Metrics))
	r.Use(recoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, "X-Route-Status"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	routeHandler := &handlers.RouteHandler{Catalog: deps.Catalog, Tracking: deps.Tracking}
	trackingHandler := &handlers.TrackingHandler{Service: deps.Tracking}

	r.Group(func(r chi.Router) {
		if deps.RateLimitRPS > 0 {
			burst := max(deps.RateLimitBurst, 1)
			r.Use(newRateLimiter(deps.RateLimitRPS, burst, limiterIdleTTL, deps.Metrics).middleware)
		}

		r.Get("/routes", routeHandler.List)
		r.Get("/routes/{serviceType}/{cargoType}", routeHandler.Get)
		r.Get("/routes/{serviceType}/{cargoType}/projection", routeHandler.Projection)

		r.Get("/inspections/{id}/tracking", trackingHandler.Inspection)
		r.Get("/inspections/{id}/tracking.geojson", trackingHandler.InspectionGeoJSON)
		r.Post("/tracking/resolve", trackingHandler.Resolve)

		r.Get("/status-lookups", trackingHandler.StatusLookups)
		if deps.LookupRefresh {
			r.Post("/status-lookups/refresh", trackingHandler.RefreshStatusLookups)
		}
	})

	return r
}
