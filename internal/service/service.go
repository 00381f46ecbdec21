// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies the hub's rules
// (lookups, normalization, stamping, letter rendering) and builds the
// response documents. Services never write HTTP responses themselves;
// failures are returned as *errs.HTTPError so the global error handler can
// render them.
package service
