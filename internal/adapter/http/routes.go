// Package http provides the HTTP handler layer for the itinerary engine API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all itinerary engine API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	itineraries := api.Group("/itineraries")
	itineraries.POST("/generate", h.GenerateItinerary)
	itineraries.POST("/export", h.ExportItinerary)

	api.POST("/content/match", h.MatchContent)
	api.POST("/pricing/quote", h.QuotePrice)
	api.GET("/cache/stats", h.CacheStats)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ItineraryHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	itineraries := api.Group("/itineraries")
	itineraries.POST("/generate", h.GenerateItinerary)
	itineraries.POST("/export", h.ExportItinerary)

	api.POST("/content/match", h.MatchContent)
	api.POST("/pricing/quote", h.QuotePrice)
	api.GET("/cache/stats", h.CacheStats)
}
