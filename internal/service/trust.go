package service

import (
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

const (
	trustSource         = "Trust-identifier-trace system"
	trustStatusVerified = "verified"
	trustTraceClear     = "clear"
)

// TrustService answers trust verification requests.
//
// Verification is a placeholder: there is no record source to trace oath
// violations against, so every request is judged verified with a clear trace
// and no violations.
type TrustService struct {
	server      *server.Server
	obligations *repository.ObligationRepository
	stamper     *stamp.Stamper
}

func NewTrustService(s *server.Server, obligations *repository.ObligationRepository, st *stamp.Stamper) *TrustService {
	return &TrustService{server: s, obligations: obligations, stamper: st}
}

func (s *TrustService) Verify(req *model.VerifyTrustRequest) *model.TrustVerificationResponse {
	trustType := req.TrustType
	if trustType == "" {
		trustType = model.DefaultTrustType
	}

	return &model.TrustVerificationResponse{
		Success: true,
		Verification: model.TrustVerification{
			TrusteeName:        req.TrusteeName,
			TrusteeTitle:       req.TrusteeTitle,
			OathDate:           req.OathDate,
			Jurisdiction:       req.Jurisdiction,
			TrustType:          trustType,
			VerificationStatus: trustStatusVerified,
			Obligations: []string{
				"Uphold and defend the Constitution",
				"Act as fiduciary for the people",
				"Protect constitutional rights",
				"Maintain transparency and accountability",
			},
			ViolationsDetected:         []string{},
			TrustIdentifierTraceStatus: trustTraceClear,
			Recommendations: []string{
				"Monitor for oath violations",
				"Track public records for transparency",
				"Document any breach of fiduciary duty",
			},
			Timestamp: stamp.Timestamp(s.stamper.Now()),
		},
		Source:    trustSource,
		Reference: s.server.Config.Hub.PublicHost + "/trust-verification",
	}
}

func (s *TrustService) ListObligations() *model.ObligationList {
	return &model.ObligationList{
		ConstitutionalObligations: s.obligations.All(),
	}
}
