package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// LegalHandler serves legal term definitions.
type LegalHandler struct {
	Handler
	legalService *service.LegalService
}

func NewLegalHandler(s *server.Server, legalService *service.LegalService) *LegalHandler {
	return &LegalHandler{
		Handler:      NewHandler(s),
		legalService: legalService,
	}
}

func (h *LegalHandler) DefineTerm(c echo.Context, req *model.DefineTermRequest) (*model.TermDefinition, error) {
	return h.legalService.Define(req.Term)
}

func (h *LegalHandler) ListTerms(c echo.Context, _ *model.NoParams) (*model.TermList, error) {
	return h.legalService.ListTerms(), nil
}
