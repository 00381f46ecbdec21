package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/handler"
)

// registerAPIRoutes mounts the reference data and submission endpoints on the
// /api group.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	legal := api.Group("/legal")
	legal.GET("/define/:term", handler.Handle(h.Legal.Handler, h.Legal.DefineTerm, http.StatusOK))
	legal.GET("/terms", handler.Handle(h.Legal.Handler, h.Legal.ListTerms, http.StatusOK))

	money := api.Group("/money")
	money.GET("/types", handler.Handle(h.Money.Handler, h.Money.ListTypes, http.StatusOK))
	money.GET("/types/:type", handler.Handle(h.Money.Handler, h.Money.GetType, http.StatusOK))

	statute := api.Group("/statute")
	statute.GET("/search", handler.Handle(h.Statute.Handler, h.Statute.Search, http.StatusOK))

	evidence := api.Group("/evidence")
	evidence.POST("/submit", handler.Handle(h.Evidence.Handler, h.Evidence.Submit, http.StatusCreated))
	evidence.GET("/:id", handler.Handle(h.Evidence.Handler, h.Evidence.Lookup, http.StatusOK))

	trust := api.Group("/trust")
	trust.POST("/verify", handler.Handle(h.Trust.Handler, h.Trust.Verify, http.StatusOK))
	trust.GET("/obligations", handler.Handle(h.Trust.Handler, h.Trust.ListObligations, http.StatusOK))

	tender := api.Group("/tender")
	tender.POST("/generate", handler.Handle(h.Tender.Handler, h.Tender.Generate, http.StatusOK))
}
