package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/lawfully-illegal/masterhub/internal/logger"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

// LoggerKey is used as the key for storing the request-scoped logger in the
// echo context.
const LoggerKey = "logger"

// loggerCtxKey stores the same logger in the Go request context.
type loggerCtxKey struct{}

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger with useful fields like:
//   - request_id
//   - method, path, ip
//   - trace.id/span.id (if a New Relic transaction exists)
//
// It then stores that logger in both the echo context and the Go request
// context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// RequestID must run before it, and the New Relic middleware too if trace
// fields are wanted.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/api/evidence/:id"), not the raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Code that only sees a context.Context can still find the logger.
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext middleware didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}

	l := zerolog.Nop()
	return &l
}

// LoggerFromContext is GetLogger for code holding only a context.Context.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return l
	}

	l := zerolog.Nop()
	return &l
}
