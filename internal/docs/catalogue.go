package docs

import "net/http"

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
	InBody  = "body"
)

// Parameter documents one input of an endpoint.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Description string
}

// Endpoint documents one route of the hub.
type Endpoint struct {
	Method     string
	Path       string
	Group      string
	Summary    string
	Parameters []Parameter
	Example    map[string]any
	Responses  []string
}

// Group is a titled set of endpoints, in catalogue order.
type Group struct {
	Name      string
	Endpoints []Endpoint
}

// Catalogue lists every public route. Paths use echo's route syntax so they
// can be compared with the router's registered routes.
func Catalogue() []Endpoint {
	return []Endpoint{
		{
			Method:    http.MethodGet,
			Path:      "/",
			Group:     "service",
			Summary:   "Hub descriptor: name, version, status and the main endpoints.",
			Responses: []string{"200"},
		},
		{
			Method:    http.MethodGet,
			Path:      "/status",
			Group:     "service",
			Summary:   "Health of the service and the size of each reference table.",
			Responses: []string{"200", "503 when a reference table is empty"},
		},
		{
			Method:    http.MethodGet,
			Path:      "/docs",
			Group:     "service",
			Summary:   "This document, as Markdown.",
			Responses: []string{"200"},
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/legal/define/:term",
			Group:   "legal terms",
			Summary: "Definition of a legal term with its USC, UCC, constitutional and Black's Law references. Lookup ignores case.",
			Parameters: []Parameter{
				{Name: "term", In: InPath, Required: true, Description: "Term to define, e.g. `money` or `legal tender`."},
			},
			Responses: []string{"200", "404 with `term` and up to five `suggestions`"},
		},
		{
			Method:    http.MethodGet,
			Path:      "/api/legal/terms",
			Group:     "legal terms",
			Summary:   "Every term that can be defined, with the count.",
			Responses: []string{"200"},
		},
		{
			Method:    http.MethodGet,
			Path:      "/api/money/types",
			Group:     "money types",
			Summary:   "All money type definitions with their common legal basis.",
			Responses: []string{"200"},
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/money/types/:type",
			Group:   "money types",
			Summary: "One money type, selected by its slug (`fiat-money`, `fiat_money` and `Fiat_Money` are equivalent).",
			Parameters: []Parameter{
				{Name: "type", In: InPath, Required: true, Description: "Money type slug."},
			},
			Responses: []string{"200", "404 with `type` and `available_types`"},
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/statute/search",
			Group:   "statutes",
			Summary: "Case-insensitive keyword search over citations, titles and text of the sample statutes.",
			Parameters: []Parameter{
				{Name: "q", In: InQuery, Required: true, Description: "Keyword."},
				{Name: "type", In: InQuery, Description: "`usc`, `cfr`, `ucc` or `all` (default)."},
			},
			Responses: []string{"200", "400 when `q` is missing"},
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/evidence/submit",
			Group:   "evidence",
			Summary: "Submit evidence. The receipt carries a generated id and a SHA-256 digest of id and submission time.",
			Parameters: []Parameter{
				{Name: "evidence_type", In: InBody, Required: true, Description: "Kind of evidence."},
				{Name: "description", In: InBody, Required: true, Description: "What the evidence shows."},
				{Name: "legal_citations", In: InBody, Description: "List of citations."},
				{Name: "affidavit_url", In: InBody, Description: "Link to a supporting affidavit."},
				{Name: "submitter_info", In: InBody, Description: "Free-form object."},
			},
			Example: map[string]any{
				"evidence_type":   "document",
				"description":     "Certified mail receipt for tender",
				"legal_citations": []string{"UCC § 3-603"},
			},
			Responses: []string{"201", "400 with field `errors`"},
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/evidence/:id",
			Group:   "evidence",
			Summary: "Acknowledges a lookup. Submissions are not stored, so no record is returned.",
			Parameters: []Parameter{
				{Name: "id", In: InPath, Required: true, Description: "Evidence id, e.g. `EVID-1700000000000-ABC123XYZ`."},
			},
			Responses: []string{"200"},
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/trust/verify",
			Group:   "trust",
			Summary: "Trust verification for an oath-taking official. The judgment is a fixed placeholder.",
			Parameters: []Parameter{
				{Name: "trustee_name", In: InBody, Required: true, Description: "Official's name."},
				{Name: "trustee_title", In: InBody, Required: true, Description: "Office held."},
				{Name: "oath_date", In: InBody, Description: "Date the oath was taken."},
				{Name: "jurisdiction", In: InBody, Description: "Jurisdiction of the office."},
				{Name: "trust_type", In: InBody, Description: "Defaults to `constitutional_oath`."},
			},
			Example: map[string]any{
				"trustee_name":  "Jane Roe",
				"trustee_title": "County Clerk",
			},
			Responses: []string{"200", "400 with field `errors`"},
		},
		{
			Method:    http.MethodGet,
			Path:      "/api/trust/obligations",
			Group:     "trust",
			Summary:   "Constitutional obligations of oath-taking officials.",
			Responses: []string{"200"},
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/tender/generate",
			Group:   "tender",
			Summary: "Generate a UCC Article 3 tender letter.",
			Parameters: []Parameter{
				{Name: "debtor_name", In: InBody, Required: true, Description: "Who tenders payment."},
				{Name: "creditor_name", In: InBody, Required: true, Description: "Who receives it."},
				{Name: "debt_amount", In: InBody, Required: true, Description: "Decimal amount, as a string or a number. Printed as sent."},
				{Name: "debtor_address", In: InBody, Description: "Defaults to `[Your Address]`."},
				{Name: "creditor_address", In: InBody, Description: "Defaults to `[Creditor Address]`."},
				{Name: "account_number", In: InBody, Description: "Defaults to `N/A`."},
				{Name: "debt_description", In: InBody, Description: "Defaults to `Outstanding obligation`."},
				{Name: "tender_type", In: InBody, Description: "Defaults to `full_payment`."},
			},
			Example: map[string]any{
				"debtor_name":   "John Doe",
				"creditor_name": "ABC Corp",
				"debt_amount":   "5000.00",
			},
			Responses: []string{"200", "400 with field `errors`"},
		},
	}
}

// Groups arranges endpoints by group, keeping first-seen order for both
// groups and endpoints.
func Groups(endpoints []Endpoint) []Group {
	var groups []Group
	index := map[string]int{}

	for _, ep := range endpoints {
		i, ok := index[ep.Group]
		if !ok {
			i = len(groups)
			index[ep.Group] = i
			groups = append(groups, Group{Name: ep.Group})
		}
		groups[i].Endpoints = append(groups[i].Endpoints, ep)
	}

	return groups
}
