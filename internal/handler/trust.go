package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

type TrustHandler struct {
	Handler
	trustService *service.TrustService
}

func NewTrustHandler(s *server.Server, trustService *service.TrustService) *TrustHandler {
	return &TrustHandler{
		Handler:      NewHandler(s),
		trustService: trustService,
	}
}

func (h *TrustHandler) Verify(c echo.Context, req *model.VerifyTrustRequest) (*model.TrustVerificationResponse, error) {
	return h.trustService.Verify(req), nil
}

func (h *TrustHandler) ListObligations(c echo.Context, _ *model.NoParams) (*model.ObligationList, error) {
	return h.trustService.ListObligations(), nil
}
