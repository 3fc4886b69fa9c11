package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the engine's middleware chain on the Echo instance
// with the default recovery behavior. Ordering matters: the request ID
// must exist before the logger runs, and recovery wraps the handlers
// inside both. Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers the middleware chain with custom recovery
// configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	for _, mw := range chain(log, recoveryConfig) {
		e.Use(mw)
	}
}

// Chain returns the middleware stack for use on individual route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return chain(log, DefaultRecoveryConfig())
}

func chain(log zerolog.Logger, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	}
}
