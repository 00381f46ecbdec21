package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/docs"
	"github.com/lawfully-illegal/masterhub/internal/middleware"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// SystemHandler serves the endpoints that describe the hub itself: the index
// document, the status check and the API reference.
type SystemHandler struct {
	Handler
	systemService *service.SystemService
	docs          *docs.Generator
}

func NewSystemHandler(s *server.Server, systemService *service.SystemService, generator *docs.Generator) *SystemHandler {
	return &SystemHandler{
		Handler:       NewHandler(s),
		systemService: systemService,
		docs:          generator,
	}
}

func (h *SystemHandler) Index(c echo.Context, _ *model.NoParams) (*model.HubDescriptor, error) {
	return h.systemService.Index(), nil
}

// CheckStatus returns 200 when every reference table is loaded and 503
// otherwise. An unhealthy report is recorded as a New Relic custom event.
func (h *SystemHandler) CheckStatus(c echo.Context) error {
	report := h.systemService.Status()

	if report.Healthy() {
		return c.JSON(http.StatusOK, report)
	}

	middleware.GetLogger(c).Warn().
		Interface("checks", report.Checks).
		Msg("status check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type": "reference_data",
			"operation":  "status_check",
		})
	}

	return c.JSON(http.StatusServiceUnavailable, report)
}

// Docs renders the API reference as Markdown.
func (h *SystemHandler) Docs(c echo.Context, _ *model.NoParams) ([]byte, error) {
	return h.docs.Markdown()
}
