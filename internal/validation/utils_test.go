package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/errs"
)

type tenderPayload struct {
	DebtorName   string `json:"debtor_name" validate:"required"`
	CreditorName string `json:"creditor_name" validate:"required"`
	DebtAmount   string `json:"debt_amount" validate:"required,decimal"`
}

func (p *tenderPayload) Validate() error {
	return Struct(p)
}

type searchPayload struct {
	Query string `query:"q" validate:"required"`
}

func (p *searchPayload) Validate() error {
	return Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "must end after it starts"}}
}

func newJSONContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestRequiredFieldsMessage(t *testing.T) {
	cases := []struct {
		fields []string
		want   string
	}{
		{nil, "Validation failed"},
		{[]string{"q"}, "q is a required field"},
		{[]string{"evidence_type", "description"}, "evidence_type and description are required fields"},
		{[]string{"debtor_name", "creditor_name", "debt_amount"}, "debtor_name, creditor_name, and debt_amount are required fields"},
	}

	for _, tc := range cases {
		if got := RequiredFieldsMessage(tc.fields); got != tc.want {
			t.Fatalf("RequiredFieldsMessage(%v) = %q, want %q", tc.fields, got, tc.want)
		}
	}
}

func TestBindAndValidateReportsMissingFields(t *testing.T) {
	c := newJSONContext(`{"debtor_name": "John Doe"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &tenderPayload{}))

	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", httpErr.Status)
	}
	if httpErr.Message != "creditor_name and debt_amount are required fields" {
		t.Fatalf("message = %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 2 || httpErr.Errors[0].Field != "creditor_name" || httpErr.Errors[1].Field != "debt_amount" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateRejectsNonDecimalAmount(t *testing.T) {
	c := newJSONContext(`{"debtor_name": "a", "creditor_name": "b", "debt_amount": "lots"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &tenderPayload{}))

	if httpErr.Message != "Validation failed" {
		t.Fatalf("message = %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Error != "must be a decimal amount" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newJSONContext(`{"debtor_name": `)

	httpErr := asHTTPError(t, BindAndValidate(c, &tenderPayload{}))

	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", httpErr.Status)
	}
	if httpErr.Errors != nil {
		t.Fatalf("bind errors carry no field errors, got %+v", httpErr.Errors)
	}
}

func TestBindAndValidateQueryName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, BindAndValidate(c, &searchPayload{}))

	if httpErr.Message != "q is a required field" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	c := newJSONContext(`{"debtor_name": "a", "creditor_name": "b", "debt_amount": "5000.00"}`)

	payload := &tenderPayload{}
	if err := BindAndValidate(c, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.DebtAmount != "5000.00" {
		t.Fatalf("amount = %q", payload.DebtAmount)
	}
}

func TestCustomValidationErrors(t *testing.T) {
	c := newJSONContext(`{}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &customPayload{}))

	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "window" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}
