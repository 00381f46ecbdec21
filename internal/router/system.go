package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/handler"
)

// markdownContentType is the content type of the generated API reference.
const markdownContentType = "text/markdown; charset=utf-8"

// registerSystemRoutes registers "system" endpoints that are not part of business logic:
//  1. Index document
//  2. Status endpoint (used by uptime monitors and load balancers)
//  3. Docs endpoint (generated Markdown reference)
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.System.Handler, h.System.Index, http.StatusOK))

	r.GET("/status", h.System.CheckStatus)

	r.GET("/docs", handler.HandleBlob(h.System.Handler, h.System.Docs, http.StatusOK, markdownContentType))
}
