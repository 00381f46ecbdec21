// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request correlation, request logging, CORS, New Relic
// tracing, rate limiting, panic recovery and the final error funnel.
package middleware
