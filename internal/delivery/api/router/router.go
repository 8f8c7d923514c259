// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rentradar/config"
	"rentradar/internal/delivery/api/router/handler"
	"rentradar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler *handler.ListingHandler
	HealthHandler  *handler.HealthHandler
	SearchMetrics  *metrics.SearchMetrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	healthHandler  *handler.HealthHandler
	searchMetrics  *metrics.SearchMetrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		healthHandler:  params.HealthHandler,
		searchMetrics:  params.SearchMetrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.SearchListings)
		// Registered before /:id so "nearby" is not parsed as an ID
		listingsGroup.GET("/nearby", r.listingHandler.FindNearbyListings)
		listingsGroup.GET("/:id", r.listingHandler.GetListing)
	}
}

// RegisterMetricsRoute exposes the Prometheus endpoint when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.searchMetrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.searchMetrics.Handler()))
}
