// Package authctx provides type-safe context propagation for
// authentication results.
//
// It uses Go generics so hosts can store and retrieve their own claims
// type without bearerkit knowing about the specific fields. The
// authentication middleware additionally records which scheme
// authenticated the request.
//
// Usage:
//
//	// Store claims (typically in middleware)
//	ctx = authctx.Set(ctx, claims)
//	ctx = authctx.SetScheme(ctx, "tenantA")
//
//	// Retrieve claims (in handlers)
//	claims, ok := authctx.Claims(ctx)
//	name, ok := authctx.Scheme(ctx)
package authctx

import (
	"context"
	"errors"

	"github.com/skillsenselab/bearerkit/token"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{ name string }

var (
	claimsKey = contextKey{"claims"}
	schemeKey = contextKey{"scheme"}
)

// Set stores authentication claims in the context.
// The claims can be any type — hosts may define their own claims struct.
func Set(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves typed authentication claims from the context.
// Returns the claims and true if found and of the correct type,
// or zero value and false otherwise.
func Get[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(claimsKey)
	if val == nil {
		var zero T
		return zero, false
	}
	claims, ok := val.(T)
	return claims, ok
}

// MustGet retrieves typed authentication claims from the context.
// Panics if claims are missing or of the wrong type.
// Use in handlers where authentication middleware guarantees claims exist.
func MustGet[T any](ctx context.Context) T {
	claims, ok := Get[T](ctx)
	if !ok {
		panic("authctx: claims not found in context or wrong type")
	}
	return claims
}

// ErrNoClaims is returned when claims are not found in the context.
var ErrNoClaims = errors.New("authctx: no claims in context")

// GetOrError retrieves typed claims from the context.
// Returns ErrNoClaims if claims are missing or of the wrong type.
func GetOrError[T any](ctx context.Context) (T, error) {
	claims, ok := Get[T](ctx)
	if !ok {
		var zero T
		return zero, ErrNoClaims
	}
	return claims, nil
}

// Claims retrieves the verified token claims stored by the
// authentication middleware.
func Claims(ctx context.Context) (*token.Claims, bool) {
	return Get[*token.Claims](ctx)
}

// SetScheme records the name of the scheme that authenticated the request.
func SetScheme(ctx context.Context, scheme string) context.Context {
	return context.WithValue(ctx, schemeKey, scheme)
}

// Scheme returns the name of the scheme that authenticated the request.
func Scheme(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(schemeKey).(string)
	return name, ok
}
