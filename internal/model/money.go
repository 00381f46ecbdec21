package model

// MoneyType is one entry of the medium-of-exchange taxonomy.
type MoneyType struct {
	Type              string               `json:"type"`
	LegalDefinition   string               `json:"legal_definition"`
	StatutoryBasis    string               `json:"statutory_basis"`
	Characteristics   MoneyCharacteristics `json:"characteristics"`
	HistoricalContext string               `json:"historical_context"`
	CurrentStatus     string               `json:"current_status"`
}

// MoneyCharacteristics describes a money type. IntrinsicValue is a bool for
// concrete types and a free-form string ("Varies by type") for the general
// definition, so it is kept untyped.
type MoneyCharacteristics struct {
	IntrinsicValue any      `json:"intrinsic_value"`
	Examples       []string `json:"examples"`
	Advantages     []string `json:"advantages"`
	Disadvantages  []string `json:"disadvantages"`
}

// GetMoneyTypeRequest is bound from GET /api/money/types/:type.
type GetMoneyTypeRequest struct {
	Type string `param:"type" validate:"required"`
}

func (r *GetMoneyTypeRequest) Validate() error {
	return validate(r)
}

// MoneyLegalBasis lists the statutes every money type rests on.
type MoneyLegalBasis struct {
	UCC            string   `json:"ucc"`
	Federal        []string `json:"federal"`
	Constitutional []string `json:"constitutional"`
}

// MoneyTypeCatalog is the response of GET /api/money/types.
type MoneyTypeCatalog struct {
	Definitions []MoneyType     `json:"definitions"`
	Source      string          `json:"source"`
	LegalBasis  MoneyLegalBasis `json:"legal_basis"`
}
