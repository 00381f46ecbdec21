package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawfully-illegal/masterhub/internal/config"
	"github.com/lawfully-illegal/masterhub/internal/errs"
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

const fixedSuffix = "ABCDEFGHI"

func newTestServices(t *testing.T) *Services {
	t.Helper()

	logger := zerolog.Nop()
	srv, err := server.New(config.DefaultConfig(), &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	repos, err := repository.Load()
	if err != nil {
		t.Fatalf("repository.Load: %v", err)
	}

	st := stamp.NewWithSources(
		func() time.Time { return fixedNow },
		func() string { return fixedSuffix },
	)

	services, err := NewServiceWithStamper(srv, repos, st)
	if err != nil {
		t.Fatalf("NewServiceWithStamper: %v", err)
	}
	return services
}

func notFound(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Fatalf("expected a 404 HTTPError, got %v", err)
	}
	return httpErr
}

func TestLegalDefine(t *testing.T) {
	legal := newTestServices(t).Legal

	def, err := legal.Define("LEGAL TENDER")
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if def.Term != "LEGAL TENDER" {
		t.Fatalf("term must echo the input, got %q", def.Term)
	}
	if def.USCCitation != "31 USC § 5103" || def.Source != "legal-decipher-system" {
		t.Fatalf("definition = %+v", def)
	}
}

func TestLegalDefineSuggestions(t *testing.T) {
	legal := newTestServices(t).Legal

	cases := []struct {
		term string
		want []string
	}{
		{"mon", []string{"money"}},
		{"R", []string{"person", "corporation", "legal tender", "trust", "fiduciary"}},
		{"zzz", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			_, err := legal.Define(tc.term)
			httpErr := notFound(t, err)

			if httpErr.Message != "Term not found" {
				t.Fatalf("message = %q", httpErr.Message)
			}
			if httpErr.Details["term"] != tc.term {
				t.Fatalf("term detail = %v", httpErr.Details["term"])
			}
			got, ok := httpErr.Details["suggestions"].([]string)
			if !ok || got == nil {
				t.Fatalf("suggestions must be a non-nil []string, got %#v", httpErr.Details["suggestions"])
			}
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("suggestions = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLegalListTerms(t *testing.T) {
	list := newTestServices(t).Legal.ListTerms()
	if list.Count != 10 || len(list.Terms) != 10 || list.Terms[0] != "money" {
		t.Fatalf("list = %+v", list)
	}
}

func TestMoneyGetTypeNormalization(t *testing.T) {
	money := newTestServices(t).Money

	cases := map[string]string{
		"fiat-money":       "Fiat Money",
		"Fiat_Money":       "Fiat Money",
		"ELECTRONIC-MONEY": "Electronic Money",
		"commodity-money":  "Commodity Money",
		"commodity_money":  "Commodity Money",
		"Commodity Money":  "Commodity Money",
		"credit money":     "Credit Money",

		"medium-of-exchange-(general-definition)": "Medium of Exchange (General Definition)",
	}
	for in, want := range cases {
		got, err := money.GetType(in)
		if err != nil {
			t.Fatalf("GetType(%q): %v", in, err)
		}
		if got.Type != want {
			t.Fatalf("GetType(%q) = %q, want %q", in, got.Type, want)
		}
	}
}

func TestMoneyGetTypeNotFound(t *testing.T) {
	_, err := newTestServices(t).Money.GetType("Gold Standard")
	httpErr := notFound(t, err)

	if httpErr.Message != "Money type not found" || httpErr.Details["type"] != "Gold Standard" {
		t.Fatalf("error = %+v", httpErr)
	}
	available, _ := httpErr.Details["available_types"].([]string)
	if len(available) != 5 || available[0] != "Commodity Money" {
		t.Fatalf("available types = %v", available)
	}
}

func TestMoneyListTypes(t *testing.T) {
	catalog := newTestServices(t).Money.ListTypes()

	if len(catalog.Definitions) != 5 || catalog.Source != "medium-of-exchange repository" {
		t.Fatalf("catalog = %+v", catalog)
	}
	if catalog.LegalBasis.UCC != "UCC § 1-201(24)" || len(catalog.LegalBasis.Federal) != 2 {
		t.Fatalf("legal basis = %+v", catalog.LegalBasis)
	}
}

func TestStatuteSearch(t *testing.T) {
	statute := newTestServices(t).Statute

	cases := []struct {
		name      string
		query     string
		typ       string
		wantType  string
		citations []string
	}{
		{"title match", "legal", "", "all", []string{"31 USC § 5103"}},
		{"case insensitive", "MONEY", "", "all", []string{"UCC § 1-201(24)"}},
		{"citation match keeps order", "§", "", "all", []string{"12 USC § 411", "31 USC § 5103", "UCC § 1-201(24)"}},
		{"type filter", "§", "usc", "usc", []string{"12 USC § 411", "31 USC § 5103"}},
		{"type filter ignores case", "§", "UCC", "UCC", []string{"UCC § 1-201(24)"}},
		{"explicit all", "united states", "ALL", "ALL", []string{"12 USC § 411", "31 USC § 5103"}},
		{"unknown type", "§", "cfr", "cfr", nil},
		{"no match", "bitcoin", "", "all", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := statute.Search(&model.SearchStatutesRequest{Query: tc.query, Type: tc.typ})

			if res.Query != tc.query || res.Type != tc.wantType {
				t.Fatalf("echo = %q/%q", res.Query, res.Type)
			}
			if res.Results == nil {
				t.Fatalf("results must never be nil")
			}
			if res.Count != len(res.Results) || res.Count != len(tc.citations) {
				t.Fatalf("count = %d, results = %+v", res.Count, res.Results)
			}
			for i, c := range tc.citations {
				if res.Results[i].Citation != c {
					t.Fatalf("result %d = %q, want %q", i, res.Results[i].Citation, c)
				}
			}
			if res.Note != "Integration with full statute databases pending" {
				t.Fatalf("note = %q", res.Note)
			}
		})
	}
}

func TestEvidenceSubmit(t *testing.T) {
	evidence := newTestServices(t).Evidence

	receipt := evidence.Submit(context.Background(), &model.SubmitEvidenceRequest{
		EvidenceType: "document",
		Description:  "Certified mail receipt",
	})

	sub := receipt.Submission
	wantID := "EVID-1709294400000-" + fixedSuffix
	if sub.ID != wantID {
		t.Fatalf("id = %q, want %q", sub.ID, wantID)
	}
	if sub.SubmissionDate != "2024-03-01T12:00:00.000Z" {
		t.Fatalf("submission date = %q", sub.SubmissionDate)
	}
	if sub.BlockchainHash != stamp.Digest(wantID+sub.SubmissionDate) {
		t.Fatalf("hash must be SHA-256 of id and timestamp")
	}
	if sub.Status != "submitted" || sub.VerificationStatus != "pending" {
		t.Fatalf("status = %s/%s", sub.Status, sub.VerificationStatus)
	}
	if !receipt.Success || receipt.Message != "Evidence submitted successfully" {
		t.Fatalf("receipt = %+v", receipt)
	}
	if receipt.NextSteps[2] != "Access evidence record at lawfully-illegal.com/evidence/"+wantID {
		t.Fatalf("next step = %q", receipt.NextSteps[2])
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"legal_citations":[]`, `"affidavit_url":null`, `"submitter_info":{}`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("submission JSON is missing %s: %s", want, raw)
		}
	}
}

func TestEvidenceSubmitKeepsOptionalFields(t *testing.T) {
	receipt := newTestServices(t).Evidence.Submit(context.Background(), &model.SubmitEvidenceRequest{
		EvidenceType:   "video",
		Description:    "Traffic stop",
		LegalCitations: []string{"42 USC § 1983"},
		AffidavitURL:   "https://example.com/affidavit.pdf",
		SubmitterInfo:  map[string]any{"name": "Jane"},
	})

	sub := receipt.Submission
	if sub.AffidavitURL == nil || *sub.AffidavitURL != "https://example.com/affidavit.pdf" {
		t.Fatalf("affidavit = %v", sub.AffidavitURL)
	}
	if len(sub.LegalCitations) != 1 || sub.SubmitterInfo["name"] != "Jane" {
		t.Fatalf("submission = %+v", sub)
	}
}

func TestEvidenceLookup(t *testing.T) {
	lookup := newTestServices(t).Evidence.Lookup("EVID-1-X")
	if lookup.ID != "EVID-1-X" ||
		lookup.Note != "Evidence retrieval implementation pending" ||
		lookup.Access != "Visit lawfully-illegal.com for public ledger access" {
		t.Fatalf("lookup = %+v", lookup)
	}
}

func TestTrustVerify(t *testing.T) {
	res := newTestServices(t).Trust.Verify(&model.VerifyTrustRequest{
		TrusteeName:  "Jane Roe",
		TrusteeTitle: "County Clerk",
	})

	v := res.Verification
	if v.TrustType != "constitutional_oath" || v.VerificationStatus != "verified" || v.TrustIdentifierTraceStatus != "clear" {
		t.Fatalf("verification = %+v", v)
	}
	if v.ViolationsDetected == nil || len(v.ViolationsDetected) != 0 {
		t.Fatalf("violations must be an empty list")
	}
	if len(v.Obligations) != 4 || len(v.Recommendations) != 3 {
		t.Fatalf("verification = %+v", v)
	}
	if v.Timestamp != "2024-03-01T12:00:00.000Z" {
		t.Fatalf("timestamp = %q", v.Timestamp)
	}
	if res.Source != "Trust-identifier-trace system" || res.Reference != "lawfully-illegal.com/trust-verification" {
		t.Fatalf("response = %+v", res)
	}
}

func TestTrustListObligations(t *testing.T) {
	list := newTestServices(t).Trust.ListObligations()
	if len(list.ConstitutionalObligations) != 4 || list.ConstitutionalObligations[0].Title != "Oath of Office" {
		t.Fatalf("obligations = %+v", list)
	}
}

func TestTenderGenerate(t *testing.T) {
	res, err := newTestServices(t).Tender.Generate(context.Background(), &model.GenerateTenderRequest{
		DebtorName:   "John Doe",
		CreditorName: "ABC Corp",
		DebtAmount:   "5000.00",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantID := "TENDER-1709294400000-" + fixedSuffix
	if res.TenderID != wantID || res.TenderDate != "2024-03-01T12:00:00.000Z" {
		t.Fatalf("id/date = %q/%q", res.TenderID, res.TenderDate)
	}
	for _, want := range []string{
		"Tender ID: " + wantID,
		"Date: 3/1/2024",
		"DEBT AMOUNT: $5000.00",
		"ACCOUNT NUMBER: N/A",
		"TENDER TYPE: full_payment",
	} {
		if !strings.Contains(res.TenderLetter, want) {
			t.Fatalf("letter is missing %q", want)
		}
	}
	if len(res.Instructions) != 6 || res.Source != "ni-tender-letter-generator" {
		t.Fatalf("response = %+v", res)
	}
	if res.LegalBasis.UCC != "UCC § 3-603 (Tender of payment)" {
		t.Fatalf("legal basis = %+v", res.LegalBasis)
	}
}

func TestSystemStatusAndIndex(t *testing.T) {
	system := newTestServices(t).System

	report := system.Status()
	if !report.Healthy() {
		t.Fatalf("status = %+v", report)
	}
	if report.Checks.ReferenceData["legal_terms"].Rows != 10 {
		t.Fatalf("checks = %+v", report.Checks)
	}

	index := system.Index()
	if index.Name != "Lawfully Illegal Master Hub API" || index.Status != "active" {
		t.Fatalf("index = %+v", index)
	}
	if index.Endpoints["tender"] != "/api/tender/generate" {
		t.Fatalf("endpoints = %v", index.Endpoints)
	}
}
