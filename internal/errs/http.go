// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for request bodies or HTTPError for API responses)
// to ensure the client receive meaningful, actionable, and consistent
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors for request bodies.
// - Support endpoint specific details (suggestions, available types, ...).
// - Provide errors that play nicely with Go's standard errors package.
package errs

import (
	"encoding/json"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "debt_amount", "error": "is required" }
type FieldError struct {
	// Field is the JSON name of the field the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is designed to be serialized directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, serialized as "error".
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
//   - Timestamp: ISO-8601 time the error was produced (set for 5xx).
//   - Details: extra top-level members merged into the JSON body.
type HTTPError struct {
	Code      string `json:"code"`
	Message   string `json:"error"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`

	// Details are flattened into the body next to the fields above,
	// e.g. {"error": "Term not found", "term": "x", "suggestions": []}.
	Details map[string]any `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the other thing is the same *type* (*HTTPError),
// Code/Status are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := e.clone()
	cp.Message = message
	return cp
}

// WithDetails returns a *copy* of this HTTPError with the given details merged
// over the existing ones.
func (e *HTTPError) WithDetails(details map[string]any) *HTTPError {
	cp := e.clone()
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	cp.Details = merged
	return cp
}

func (e *HTTPError) clone() *HTTPError {
	return &HTTPError{
		Code:      e.Code,
		Message:   e.Message,
		Status:    e.Status,
		Timestamp: e.Timestamp,
		Errors:    e.Errors,
		Details:   e.Details,
	}
}

// MarshalJSON writes the fixed fields and flattens Details into the same
// object. Fixed fields win over details with the same key.
func (e HTTPError) MarshalJSON() ([]byte, error) {
	type wire HTTPError

	base, err := json.Marshal(wire(e))
	if err != nil || len(e.Details) == 0 {
		return base, err
	}

	out := make(map[string]any, len(e.Details)+5)
	for k, v := range e.Details {
		out[k] = v
	}
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
