// Package middleware provides the HTTP middleware chain for the
// itinerary engine: request IDs, request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request ID between client and server.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey stores the request ID in the echo context.
	requestIDKey = "request_id"
)

// RequestID returns middleware that tags every request with an ID.
// A client-supplied X-Request-ID is propagated as-is so callers can
// correlate across services; otherwise a fresh UUID is generated. The
// ID is stored in the context and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID set by RequestID, or an empty
// string when the middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
