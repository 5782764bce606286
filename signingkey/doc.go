// Package signingkey turns configured key material into verification keys.
//
// Each authentication scheme declares an algorithm name and an encoded
// key: HS* algorithms carry a standard-base64 HMAC secret, RS* and ES*
// algorithms carry a PEM-encoded public key or key pair. Parse decodes
// the material according to the algorithm's family and returns an
// immutable VerificationKey that is safe to share across all in-flight
// verifications.
//
// Algorithms outside the three known families intentionally yield a key
// with no material and no error: signature verification for such schemes
// is disabled downstream, and the registry decides whether that is
// tolerated or fatal.
package signingkey
