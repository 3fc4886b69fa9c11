// Package integration provides helpers and integration tests for the
// itinerary engine. Integration tests verify that components work together
// correctly, including HTTP handlers, the generation use case, catalog
// adapters, and the result cache.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/travel-platform/itinerary-engine/internal/adapter/export"
	httpAdapter "github.com/travel-platform/itinerary-engine/internal/adapter/http"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/cache"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server with the given use case.
// stats may be nil when no cache is wired.
func NewTestServer(uc usecase.ItineraryUseCase, stats httpAdapter.StatsFunc) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(
		uc,
		usecase.NewMatcher(nil),
		usecase.NewPricingEngine(nil),
		export.NewPDFRenderer(),
		stats,
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// GenerateRequest posts a generation request body.
func (ts *TestServer) GenerateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/generate",
		Body:   body,
	})
}

// ExportRequest posts an export request body.
func (ts *TestServer) ExportRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/export",
		Body:   body,
	})
}

// MatchRequest posts a content match request body.
func (ts *TestServer) MatchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/content/match",
		Body:   body,
	})
}

// QuoteRequest posts a pricing quote request body.
func (ts *TestServer) QuoteRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/pricing/quote",
		Body:   body,
	})
}

// StatsRequest fetches the cache statistics.
func (ts *TestServer) StatsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/cache/stats",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseItinerary parses the response body as an ItineraryDTO.
func (r *Response) ParseItinerary() (*httpAdapter.ItineraryDTO, error) {
	var dto httpAdapter.ItineraryDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ParseJSON parses the response body as a generic JSON object.
func (r *Response) ParseJSON() (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DefaultPreferences returns a valid preference block for a three-day Bali trip.
func DefaultPreferences() httpAdapter.PreferencesDTO {
	return httpAdapter.PreferencesDTO{
		Adults:       2,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		BudgetMax:    1200,
		Currency:     "USD",
		Destinations: []string{"Bali"},
		Interests:    []string{"food", "culture"},
		Pace:         "moderate",
	}
}

// DefaultGenerateRequest returns a valid generation request body.
func DefaultGenerateRequest() httpAdapter.GenerateItineraryRequest {
	return httpAdapter.GenerateItineraryRequest{
		Preferences: DefaultPreferences(),
	}
}

// CreateEngine creates a generation use case with real matcher, planner,
// and pricer over the given sources, without caching.
func CreateEngine(sources []domain.CatalogSource) usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(
		sources,
		usecase.NewMatcher(nil),
		usecase.NewPlanner(nil),
		usecase.NewPricingEngine(nil),
		nil,
		nil,
		nil,
	)
}

// CreateEngineWithCache creates a generation use case backed by the given
// result cache, keyed by the preference fingerprint.
func CreateEngineWithCache(sources []domain.CatalogSource, resultCache *cache.Cache[*domain.Itinerary]) usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(
		sources,
		usecase.NewMatcher(nil),
		usecase.NewPlanner(nil),
		usecase.NewPricingEngine(nil),
		resultCache,
		cache.PreferenceKey,
		nil,
	)
}

// CreateEngineWithConfig creates a generation use case with custom configuration.
func CreateEngineWithConfig(sources []domain.CatalogSource, config *usecase.Config) usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(
		sources,
		usecase.NewMatcher(nil),
		usecase.NewPlanner(nil),
		usecase.NewPricingEngine(nil),
		nil,
		nil,
		config,
	)
}
