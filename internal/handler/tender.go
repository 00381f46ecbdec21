package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/middleware"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// TenderHandler generates tender letters.
type TenderHandler struct {
	Handler
	tenderService *service.TenderService
}

func NewTenderHandler(s *server.Server, tenderService *service.TenderService) *TenderHandler {
	return &TenderHandler{
		Handler:       NewHandler(s),
		tenderService: tenderService,
	}
}

func (h *TenderHandler) Generate(c echo.Context, req *model.GenerateTenderRequest) (*model.TenderResponse, error) {
	res, err := h.tenderService.Generate(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Info().
		Str("tender_id", res.TenderID).
		Str("tender_type", req.TenderType).
		Msg("tender letter generated")

	return res, nil
}
