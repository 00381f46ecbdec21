// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or decimal amounts) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/lawfully-illegal/masterhub/internal/errs"
	"github.com/shopspring/decimal"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// validate is shared by every request type. It is configured once and only
// read afterwards, which validator.Validate supports concurrently.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the wire name of a field (json, form, query or path param) instead of
	// the Go field name, so errors line up with what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	// decimal: the string form parses as an arbitrary precision decimal.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})

	return v
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates request struct from path params, query params
// (GET) and the JSON body.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the client facing part of an echo bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field level failure (e.g. InvalidValidationError); still
		// report something the client can act on.
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	var missing []string

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"
			missing = append(missing, field)

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "url":
			msg = "must be a valid URL"

		case "decimal":
			msg = "must be a decimal amount"

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	if len(missing) == len(fieldErrors) {
		return RequiredFieldsMessage(missing), fieldErrors
	}

	return "Validation failed", fieldErrors
}

// RequiredFieldsMessage phrases a list of missing fields the way the API has
// always reported them:
//
//	["q"]                    -> "q is a required field"
//	["a", "b"]               -> "a and b are required fields"
//	["a", "b", "c"]          -> "a, b, and c are required fields"
func RequiredFieldsMessage(fields []string) string {
	switch len(fields) {
	case 0:
		return "Validation failed"
	case 1:
		return fields[0] + " is a required field"
	case 2:
		return fields[0] + " and " + fields[1] + " are required fields"
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1] + " are required fields"
	}
}
