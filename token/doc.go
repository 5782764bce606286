// Package token derives per-scheme verification parameters and verifies
// raw bearer tokens against them.
//
// BuildParams turns one credential into an immutable Params value: which
// checks run (signature, issuer, lifetime) and with which key. A Verifier
// wraps golang-jwt with exactly those parameters. Audience is never
// checked, lifetime is always checked, and clock skew tolerance is zero.
//
// Schemes whose algorithm family is unrecognized get a keyless Params;
// their Verifier skips signature verification but still enforces the
// registered claims.
package token
