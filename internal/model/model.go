// Package model holds the hub's entities, request payloads and response
// documents.
//
// Request payloads implement validation.Validatable so the handler pipeline
// can bind and validate them before any service code runs. Reference entities
// (terms, money types, statutes, obligations) are decoded from the embedded
// tables in the repository package and never mutated afterwards.
package model

import "github.com/lawfully-illegal/masterhub/internal/validation"

// NoParams is the payload of endpoints that take no input.
type NoParams struct{}

func (p *NoParams) Validate() error {
	return nil
}

// validate runs the shared struct validator on a request payload.
func validate(v any) error {
	return validation.Struct(v)
}
