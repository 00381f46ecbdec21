package letter

import (
	"strings"
	"testing"

	"github.com/lawfully-illegal/masterhub/internal/model"
)

func TestRenderTenderLetterPlaceholders(t *testing.T) {
	r := MustNewRenderer()

	body, err := r.Render(TemplateTenderLetter, model.TenderLetter{
		TenderID:     "TENDER-1709294400000-ABCDEFGHI",
		TenderDate:   "2024-03-01T12:00:00.000Z",
		DebtorName:   "John Doe",
		CreditorName: "ABC Corp",
		DebtAmount:   "5000.00",
		TenderType:   model.DefaultTenderType,
		LedgerHost:   "lawfully-illegal.com",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.HasPrefix(body, "\nNEGOTIABLE INSTRUMENT - UCC ARTICLE 3 TENDER LETTER\n") {
		t.Fatalf("letter must start with a blank line and the heading:\n%s", body)
	}
	if !strings.HasSuffix(body, "CC: Evidence Ledger - lawfully-illegal.com\n") {
		t.Fatalf("letter must end with the ledger line")
	}

	for _, want := range []string{
		"Tender ID: TENDER-1709294400000-ABCDEFGHI\n",
		"Date: 3/1/2024\n",
		"FROM:\nJohn Doe\n[Your Address]\n",
		"TO:\nABC Corp\n[Creditor Address]\n",
		"RE: Tender of Payment - Account #[Account Number]\n",
		"DEBT DESCRIPTION: Outstanding obligation\n",
		"DEBT AMOUNT: $5000.00\n",
		"ACCOUNT NUMBER: N/A\n",
		"TENDER TYPE: full_payment\n",
		"_________________________\nJohn Doe\n",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("letter is missing %q:\n%s", want, body)
		}
	}
}

func TestRenderTenderLetterProvidedFields(t *testing.T) {
	r := MustNewRenderer()

	body, err := r.Render(TemplateTenderLetter, model.TenderLetter{
		TenderDate:      "2024-12-31T23:59:59.999Z",
		DebtorName:      "John Doe",
		DebtorAddress:   "1 Main St",
		CreditorName:    "ABC Corp",
		CreditorAddress: "2 Bank Ave",
		DebtAmount:      "12.5",
		AccountNumber:   "ACC-42",
		DebtDescription: "Card balance",
		TenderType:      "partial_payment",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Date: 12/31/2024\n",
		"John Doe\n1 Main St\n",
		"ABC Corp\n2 Bank Ave\n",
		"Account #ACC-42\n",
		"DEBT DESCRIPTION: Card balance\n",
		"DEBT AMOUNT: $12.5\n",
		"ACCOUNT NUMBER: ACC-42\n",
		"TENDER TYPE: partial_payment\n",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("letter is missing %q:\n%s", want, body)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := MustNewRenderer().Render(Template("missing"), nil); err == nil {
		t.Fatalf("expected an error for an unknown template")
	}
}

func TestUSDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-01T12:00:00.000Z":  "3/1/2024",
		"2024-11-09T00:00:00Z":      "11/9/2024",
		"2024-03-01T23:30:00-05:00": "3/2/2024",
		"not a date":                "not a date",
	}
	for in, want := range cases {
		if got := USDate(in); got != want {
			t.Fatalf("USDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPreviewDataRenders(t *testing.T) {
	r := MustNewRenderer()
	for name, data := range PreviewData {
		if _, err := r.Render(name, data); err != nil {
			t.Fatalf("preview %s: %v", name, err)
		}
	}
}
