// Package http provides the HTTP handler layer for the itinerary engine API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-platform/itinerary-engine/internal/adapter/export"
	"github.com/travel-platform/itinerary-engine/internal/adapter/http/response"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/cache"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// StatsFunc supplies the current cache statistics.
type StatsFunc func() cache.Stats

// ItineraryHandler handles HTTP requests for itinerary-related endpoints.
type ItineraryHandler struct {
	useCase  usecase.ItineraryUseCase
	matcher  *usecase.Matcher
	pricer   *usecase.PricingEngine
	renderer *export.PDFRenderer
	stats    StatsFunc
}

// NewItineraryHandler creates a new ItineraryHandler.
// stats may be nil when no cache is configured.
func NewItineraryHandler(
	uc usecase.ItineraryUseCase,
	matcher *usecase.Matcher,
	pricer *usecase.PricingEngine,
	renderer *export.PDFRenderer,
	stats StatsFunc,
) *ItineraryHandler {
	return &ItineraryHandler{
		useCase:  uc,
		matcher:  matcher,
		pricer:   pricer,
		renderer: renderer,
		stats:    stats,
	}
}

// GenerateItinerary handles POST /api/v1/itineraries/generate
//
// @Summary Generate an itinerary
// @Description Generate a complete day-by-day itinerary from travel preferences
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body GenerateItineraryRequest true "Travel preferences and options"
// @Success 200 {object} ItineraryDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "No matching content"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/generate [post]
func (h *ItineraryHandler) GenerateItinerary(c echo.Context) error {
	var req GenerateItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs := ToDomainPreferences(&req.Preferences)
	opts := ToGenerateOptions(req.Options)

	itinerary, err := h.useCase.Generate(c.Request().Context(), prefs, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Itinerary(c, ToItineraryDTO(itinerary))
}

// ExportItinerary handles POST /api/v1/itineraries/export
//
// @Summary Export an itinerary as PDF
// @Description Render a previously generated itinerary into a PDF document
// @Tags itineraries
// @Accept json
// @Produce application/pdf
// @Param request body ExportItineraryRequest true "Itinerary to export"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/itineraries/export [post]
func (h *ItineraryHandler) ExportItinerary(c echo.Context) error {
	var req ExportItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	document, err := h.renderer.Render(&req.Itinerary)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PDF(c, document)
}

// MatchContent handles POST /api/v1/content/match
//
// @Summary Score content against preferences
// @Description Score a batch of inline content items against travel preferences
// @Tags content
// @Accept json
// @Produce json
// @Param request body MatchContentRequest true "Preferences and content items"
// @Success 200 {array} MatchScoreDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/content/match [post]
func (h *ItineraryHandler) MatchContent(c echo.Context) error {
	var req MatchContentRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs := ToDomainPreferences(&req.Preferences)
	prefs.SetDefaults()

	scores := h.matcher.ScoreBatch(c.Request().Context(), req.Items, prefs, usecase.DefaultBatchSize)

	return response.OK(c, ToMatchScoreDTOs(scores))
}

// QuotePrice handles POST /api/v1/pricing/quote
//
// @Summary Quote a dynamic price
// @Description Compute the full price breakdown for a base price and travel context
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body QuotePriceRequest true "Quote parameters"
// @Success 200 {object} PriceBreakdownDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/pricing/quote [post]
func (h *ItineraryHandler) QuotePrice(c echo.Context) error {
	var req QuotePriceRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	breakdown, err := h.pricer.Quote(ToQuoteRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toPriceBreakdownDTO(&breakdown))
}

// CacheStats handles GET /api/v1/cache/stats
//
// @Summary Cache statistics
// @Description Report result-cache hit, miss, and eviction counters
// @Tags cache
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /api/v1/cache/stats [get]
func (h *ItineraryHandler) CacheStats(c echo.Context) error {
	if h.stats == nil {
		return response.OK(c, cache.Stats{})
	}
	return response.OK(c, h.stats())
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	// Check for all catalog sources failed
	if errors.Is(err, domain.ErrAllCatalogsFailed) {
		return response.ServiceUnavailable(c)
	}

	// Check for no content surviving the match threshold
	if errors.Is(err, domain.ErrNoCandidates) {
		return response.NoCandidates(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
