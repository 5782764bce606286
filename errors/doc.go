// Package errors provides the unified error model for bearerkit.
// It implements structured error types with machine-readable codes and
// HTTP status mapping, covering the two failure classes this library
// distinguishes: fatal configuration errors raised while a registry is
// being built, and per-request authentication rejections surfaced to
// clients as JSON error responses.
package errors
