package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/middleware"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// EvidenceHandler accepts evidence submissions and answers lookups.
type EvidenceHandler struct {
	Handler
	evidenceService *service.EvidenceService
}

func NewEvidenceHandler(s *server.Server, evidenceService *service.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{
		Handler:         NewHandler(s),
		evidenceService: evidenceService,
	}
}

func (h *EvidenceHandler) Submit(c echo.Context, req *model.SubmitEvidenceRequest) (*model.EvidenceReceipt, error) {
	receipt := h.evidenceService.Submit(c.Request().Context(), req)

	middleware.GetLogger(c).Info().
		Str("evidence_id", receipt.Submission.ID).
		Str("evidence_type", receipt.Submission.EvidenceType).
		Int("legal_citations", len(receipt.Submission.LegalCitations)).
		Msg("evidence submitted")

	return receipt, nil
}

func (h *EvidenceHandler) Lookup(c echo.Context, req *model.GetEvidenceRequest) (*model.EvidenceLookup, error) {
	return h.evidenceService.Lookup(req.ID), nil
}
