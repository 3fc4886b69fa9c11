// Package response provides standardized HTTP response builders for the itinerary engine API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Itinerary writes a 200 OK response with a generated itinerary.
func Itinerary(c echo.Context, itinerary interface{}) error {
	return c.JSON(http.StatusOK, itinerary)
}

// PDF writes an application/pdf response with the given document bytes.
func PDF(c echo.Context, document []byte) error {
	return c.Blob(http.StatusOK, "application/pdf", document)
}
