package service

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

const (
	evidenceIDPrefix      = "EVID"
	evidenceSubmittedMsg  = "Evidence submitted successfully"
	evidenceRetrievalNote = "Evidence retrieval implementation pending"
)

type EvidenceService struct {
	server  *server.Server
	stamper *stamp.Stamper
}

func NewEvidenceService(s *server.Server, st *stamp.Stamper) *EvidenceService {
	return &EvidenceService{server: s, stamper: st}
}

// Submit stamps a submission with an id, a submission date and a digest of
// the two. Nothing is stored: the receipt is the only record.
func (s *EvidenceService) Submit(ctx context.Context, req *model.SubmitEvidenceRequest) *model.EvidenceReceipt {
	now := s.stamper.Now()
	id := s.stamper.ID(evidenceIDPrefix, now)
	submittedAt := stamp.Timestamp(now)

	citations := req.LegalCitations
	if citations == nil {
		citations = []string{}
	}

	submitter := req.SubmitterInfo
	if submitter == nil {
		submitter = map[string]any{}
	}

	var affidavit *string
	if req.AffidavitURL != "" {
		url := req.AffidavitURL
		affidavit = &url
	}

	submission := model.EvidenceSubmission{
		ID:                 id,
		SubmissionDate:     submittedAt,
		EvidenceType:       req.EvidenceType,
		Description:        req.Description,
		LegalCitations:     citations,
		AffidavitURL:       affidavit,
		BlockchainHash:     stamp.Digest(id, submittedAt),
		Status:             model.EvidenceStatusSubmitted,
		VerificationStatus: model.EvidenceVerificationPending,
		SubmitterInfo:      submitter,
	}

	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute("evidence.id", id)
		txn.AddAttribute("evidence.type", req.EvidenceType)
	}

	return &model.EvidenceReceipt{
		Success:    true,
		Message:    evidenceSubmittedMsg,
		Submission: submission,
		NextSteps: []string{
			"Evidence will be reviewed and verified",
			"Blockchain timestamp will be confirmed",
			"Access evidence record at " + s.host() + "/evidence/" + id,
		},
	}
}

// Lookup acknowledges a retrieval request. There is no ledger behind it, so
// the answer only points at the public site.
func (s *EvidenceService) Lookup(id string) *model.EvidenceLookup {
	return &model.EvidenceLookup{
		ID:     id,
		Note:   evidenceRetrievalNote,
		Access: "Visit " + s.host() + " for public ledger access",
	}
}

func (s *EvidenceService) host() string {
	return s.server.Config.Hub.PublicHost
}
