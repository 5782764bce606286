// Package middleware provides net/http middleware for bearer-token
// authentication plus the usual request plumbing around it.
//
// Authenticate is the reason this package exists: it routes every request
// through a scheme.Registry, rejects bad tokens with a JSON error body, and
// stores verified claims in the request context for handlers to read via
// authctx.
//
//	reg, _ := scheme.NewRegistry(settings)
//	handler := middleware.Chain(
//		middleware.RequestID(),
//		middleware.RequestLogger(log),
//		middleware.Recovery(log),
//		middleware.Authenticate(reg, middleware.WithSkipPaths("/health")),
//	)(mux)
//
// Every middleware uses the standard func(http.Handler) http.Handler shape.
// Gin applications wrap any of them with GinWrap, or use the Gin* variants
// directly.
package middleware
