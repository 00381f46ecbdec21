package model

// Submission states. A fresh submission is always submitted/pending; nothing
// in the hub moves it further.
const (
	EvidenceStatusSubmitted     = "submitted"
	EvidenceVerificationPending = "pending"
)

// SubmitEvidenceRequest is the body of POST /api/evidence/submit, sent as JSON
// or as a form. SubmitterInfo is an object and only arrives with JSON.
type SubmitEvidenceRequest struct {
	EvidenceType   string         `json:"evidence_type" form:"evidence_type" validate:"required"`
	Description    string         `json:"description" form:"description" validate:"required"`
	LegalCitations []string       `json:"legal_citations" form:"legal_citations"`
	AffidavitURL   string         `json:"affidavit_url" form:"affidavit_url"`
	SubmitterInfo  map[string]any `json:"submitter_info"`
}

func (r *SubmitEvidenceRequest) Validate() error {
	return validate(r)
}

// EvidenceSubmission is the record created for an accepted submission.
//
// BlockchainHash is a local SHA-256 stand-in for a timestamping receipt; it
// is not anchored anywhere.
type EvidenceSubmission struct {
	ID                 string         `json:"id"`
	SubmissionDate     string         `json:"submission_date"`
	EvidenceType       string         `json:"evidence_type"`
	Description        string         `json:"description"`
	LegalCitations     []string       `json:"legal_citations"`
	AffidavitURL       *string        `json:"affidavit_url"`
	BlockchainHash     string         `json:"blockchain_hash"`
	Status             string         `json:"status"`
	VerificationStatus string         `json:"verification_status"`
	SubmitterInfo      map[string]any `json:"submitter_info"`
}

// EvidenceReceipt is the 201 response of a submission.
type EvidenceReceipt struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Submission EvidenceSubmission `json:"submission"`
	NextSteps  []string           `json:"next_steps"`
}

// GetEvidenceRequest is bound from GET /api/evidence/:id.
type GetEvidenceRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetEvidenceRequest) Validate() error {
	return validate(r)
}

// EvidenceLookup is the placeholder answer for a retrieval; the ledger it
// would read from does not exist.
type EvidenceLookup struct {
	ID     string `json:"id"`
	Note   string `json:"note"`
	Access string `json:"access"`
}
