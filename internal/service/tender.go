package service

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/lib/letter"
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

const (
	tenderIDPrefix   = "TENDER"
	tenderSource     = "ni-tender-letter-generator"
	tenderDisclaimer = "This is a legal document. Consult with legal counsel if needed."
)

var tenderLegalBasis = model.TenderLegalBasis{
	UCC:                "UCC § 3-603 (Tender of payment)",
	Discharge:          "UCC § 3-604 (Discharge by cancellation)",
	AccordSatisfaction: "UCC § 3-311 (Accord and satisfaction)",
}

type TenderService struct {
	server   *server.Server
	renderer *letter.Renderer
	stamper  *stamp.Stamper
}

func NewTenderService(s *server.Server, renderer *letter.Renderer, st *stamp.Stamper) *TenderService {
	return &TenderService{server: s, renderer: renderer, stamper: st}
}

// Generate renders a UCC Article 3 tender letter for the request.
//
// The amount is printed exactly as sent. Missing optional fields fall back to
// the template's placeholders.
func (s *TenderService) Generate(ctx context.Context, req *model.GenerateTenderRequest) (*model.TenderResponse, error) {
	now := s.stamper.Now()
	id := s.stamper.ID(tenderIDPrefix, now)
	tenderDate := stamp.Timestamp(now)

	tenderType := req.TenderType
	if tenderType == "" {
		tenderType = model.DefaultTenderType
	}

	data := model.TenderLetter{
		TenderID:        id,
		TenderDate:      tenderDate,
		DebtorName:      req.DebtorName,
		DebtorAddress:   req.DebtorAddress,
		CreditorName:    req.CreditorName,
		CreditorAddress: req.CreditorAddress,
		DebtAmount:      req.DebtAmount.String(),
		AccountNumber:   req.AccountNumber,
		DebtDescription: req.DebtDescription,
		TenderType:      tenderType,
		LedgerHost:      s.server.Config.Hub.PublicHost,
	}

	segment := newrelic.FromContext(ctx).StartSegment("tender.render_letter")
	body, err := s.renderer.Render(letter.TemplateTenderLetter, data)
	segment.End()
	if err != nil {
		return nil, errors.WithMessage(err, "render tender letter")
	}

	return &model.TenderResponse{
		Success:      true,
		TenderID:     id,
		TenderDate:   tenderDate,
		TenderLetter: body,
		Instructions: []string{
			"Review the generated tender letter carefully",
			"Print on official letterhead if available",
			"Send via certified mail with return receipt",
			"Keep copies for your records",
			"Track delivery confirmation",
			"Upload tracking evidence to evidence-ledger",
		},
		LegalBasis: tenderLegalBasis,
		Source:     tenderSource,
		Disclaimer: tenderDisclaimer,
	}, nil
}
