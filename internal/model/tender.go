package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTenderType applies when a generation request names none.
const DefaultTenderType = "full_payment"

// Amount is a decimal amount as it will be printed in a letter.
//
// A JSON string or a form value is kept verbatim, so "5000.00" prints as
// 5000.00. A JSON number is printed in its shortest decimal form (1e3 prints
// as 1000, 1250.50 as 1250.5) and a numeric zero counts as no amount at all.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number")
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("amount must be a decimal number")
	}
	if d.IsZero() {
		*a = ""
		return nil
	}
	*a = Amount(d.String())
	return nil
}

// UnmarshalParam binds a form or query value verbatim.
func (a *Amount) UnmarshalParam(param string) error {
	*a = Amount(param)
	return nil
}

func (a Amount) String() string {
	return string(a)
}

// GenerateTenderRequest is the body of POST /api/tender/generate (JSON or form).
type GenerateTenderRequest struct {
	DebtorName      string `json:"debtor_name" form:"debtor_name" validate:"required"`
	DebtorAddress   string `json:"debtor_address" form:"debtor_address"`
	CreditorName    string `json:"creditor_name" form:"creditor_name" validate:"required"`
	CreditorAddress string `json:"creditor_address" form:"creditor_address"`
	DebtAmount      Amount `json:"debt_amount" form:"debt_amount" validate:"required,decimal"`
	AccountNumber   string `json:"account_number" form:"account_number"`
	DebtDescription string `json:"debt_description" form:"debt_description"`
	TenderType      string `json:"tender_type" form:"tender_type"`
}

func (r *GenerateTenderRequest) Validate() error {
	return validate(r)
}

// TenderLetter is the data rendered into the letter template. Optional fields
// stay empty here; the template substitutes their placeholders.
type TenderLetter struct {
	TenderID        string
	TenderDate      string
	DebtorName      string
	DebtorAddress   string
	CreditorName    string
	CreditorAddress string
	DebtAmount      string
	AccountNumber   string
	DebtDescription string
	TenderType      string
	LedgerHost      string
}

// TenderLegalBasis lists the UCC sections a tender relies on.
type TenderLegalBasis struct {
	UCC                string `json:"ucc"`
	Discharge          string `json:"discharge"`
	AccordSatisfaction string `json:"accord_satisfaction"`
}

// TenderResponse is the response of POST /api/tender/generate.
type TenderResponse struct {
	Success      bool             `json:"success"`
	TenderID     string           `json:"tender_id"`
	TenderDate   string           `json:"tender_date"`
	TenderLetter string           `json:"tender_letter"`
	Instructions []string         `json:"instructions"`
	LegalBasis   TenderLegalBasis `json:"legal_basis"`
	Source       string           `json:"source"`
	Disclaimer   string           `json:"disclaimer"`
}
