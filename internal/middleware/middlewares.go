package middleware

import (
	"github.com/lawfully-illegal/masterhub/internal/server"
)

// Middlewares is a lightweight container that groups all middleware components
// used by the HTTP server.
//
// Shared dependencies (the *server.Server and the New Relic application) are
// wired in once here and reused during router setup.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach custom attributes
	// and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client token bucket on /api and records hits.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured the tracing middleware degrades into a
// no-op (no transactions, no attributes, no custom events).
func NewMiddlewares(s *server.Server) *Middlewares {
	nrApp := s.LoggerService.GetApplication()

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
