package model

// LegalTerm is one entry of the legal terms table. Key is always lowercase.
type LegalTerm struct {
	Key             string `json:"key"`
	Definition      string `json:"definition"`
	USCCitation     string `json:"usc_citation"`
	UCCCitation     string `json:"ucc_citation"`
	ConstitutionRef string `json:"constitution_ref"`
	BlacksLawRef    string `json:"blacks_law_ref"`
}

// DefineTermRequest is bound from GET /api/legal/define/:term.
type DefineTermRequest struct {
	Term string `param:"term" validate:"required"`
}

func (r *DefineTermRequest) Validate() error {
	return validate(r)
}

// TermDefinition is the response of a successful term lookup. Term echoes the
// caller's input as given, not the normalized key.
type TermDefinition struct {
	Term            string `json:"term"`
	Definition      string `json:"definition"`
	USCCitation     string `json:"usc_citation"`
	UCCCitation     string `json:"ucc_citation"`
	ConstitutionRef string `json:"constitution_ref"`
	BlacksLawRef    string `json:"blacks_law_ref"`
	Source          string `json:"source"`
}

// TermList is the response of GET /api/legal/terms.
type TermList struct {
	Terms []string `json:"terms"`
	Count int      `json:"count"`
}
