package letter

import "github.com/lawfully-illegal/masterhub/internal/model"

// Template is a string-based enum naming letter templates.
type Template string

const (
	// TemplateTenderLetter corresponds to templates/tender_letter.tmpl
	TemplateTenderLetter Template = "tender_letter"
)

func (t Template) fileName() string {
	return string(t) + ".tmpl"
}

// PreviewData contains sample template data for previews and documentation.
var PreviewData = map[Template]any{
	TemplateTenderLetter: model.TenderLetter{
		TenderID:     "TENDER-1700000000000-PREVIEW00",
		TenderDate:   "2023-11-14T22:13:20.000Z",
		DebtorName:   "John Doe",
		CreditorName: "ABC Corp",
		DebtAmount:   "5000.00",
		TenderType:   model.DefaultTenderType,
		LedgerHost:   "lawfully-illegal.com",
	},
}
