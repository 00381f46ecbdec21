package model

// DefaultTrustType applies when a verification request names none.
const DefaultTrustType = "constitutional_oath"

// VerifyTrustRequest is the body of POST /api/trust/verify (JSON or form).
type VerifyTrustRequest struct {
	TrusteeName  string `json:"trustee_name" form:"trustee_name" validate:"required"`
	TrusteeTitle string `json:"trustee_title" form:"trustee_title" validate:"required"`
	OathDate     string `json:"oath_date" form:"oath_date"`
	Jurisdiction string `json:"jurisdiction" form:"jurisdiction"`
	TrustType    string `json:"trust_type" form:"trust_type"`
}

func (r *VerifyTrustRequest) Validate() error {
	return validate(r)
}

// TrustVerification is the computed verification record.
//
// The judgment is fixed: no record source backs it, so ViolationsDetected is
// always empty and the statuses are always verified/clear.
type TrustVerification struct {
	TrusteeName                string   `json:"trustee_name"`
	TrusteeTitle               string   `json:"trustee_title"`
	OathDate                   string   `json:"oath_date,omitempty"`
	Jurisdiction               string   `json:"jurisdiction,omitempty"`
	TrustType                  string   `json:"trust_type"`
	VerificationStatus         string   `json:"verification_status"`
	Obligations                []string `json:"obligations"`
	ViolationsDetected         []string `json:"violations_detected"`
	TrustIdentifierTraceStatus string   `json:"trust_identifier_trace_status"`
	Recommendations            []string `json:"recommendations"`
	Timestamp                  string   `json:"timestamp"`
}

// TrustVerificationResponse is the response of POST /api/trust/verify.
type TrustVerificationResponse struct {
	Success      bool              `json:"success"`
	Verification TrustVerification `json:"verification"`
	Source       string            `json:"source"`
	Reference    string            `json:"reference"`
}

// Obligation is a constitutional obligation of an oath-taking official. Each
// entry carries exactly one of the citation fields.
type Obligation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LegalBasis  string `json:"legal_basis,omitempty"`
	Enforcement string `json:"enforcement,omitempty"`
	Remedies    string `json:"remedies,omitempty"`
	Framework   string `json:"framework,omitempty"`
}

// ObligationList is the response of GET /api/trust/obligations.
type ObligationList struct {
	ConstitutionalObligations []Obligation `json:"constitutional_obligations"`
}
