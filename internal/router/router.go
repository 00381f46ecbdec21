// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/handler"
	"github.com/lawfully-illegal/masterhub/internal/middleware"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

// NewRouter builds the echo instance with the global middleware chain, the
// system routes and the rate limited /api group.
//
// Middleware order matters:
//   - RequestID runs before anything that logs or traces
//   - the New Relic transaction must exist before EnhanceTracing and
//     EnhanceContext read it
//   - RequestLogger sits outside Recover so recovered panics are still logged
//   - BodyLimit runs last so oversized requests are logged and traced
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", middlewares.RateLimit.Limit())
	registerAPIRoutes(api, h)

	return router
}
