package testkeys

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// RegisteredClaims builds standard claims for a minted test token.
// A negative ttl produces an already-expired token.
func RegisteredClaims(subject, issuer string, ttl time.Duration) gojwt.RegisteredClaims {
	now := time.Now()
	return gojwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
	}
}

// Mint signs claims with the given method and key. It panics on failure
// because a fixture that cannot sign indicates a broken test setup.
func Mint(method gojwt.SigningMethod, key any, claims gojwt.Claims) string {
	signed, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		panic("testkeys: signing test token failed: " + err.Error())
	}
	return signed
}

// HS256Token mints a token signed with the shared HMAC secret fixture.
func HS256Token(subject, issuer string, ttl time.Duration) string {
	return Mint(gojwt.SigningMethodHS256, HMACSecret(), RegisteredClaims(subject, issuer, ttl))
}

// RS256Token mints a token signed with the RSA private key fixture.
func RS256Token(subject, issuer string, ttl time.Duration) string {
	return Mint(gojwt.SigningMethodRS256, RSAPrivateKey(), RegisteredClaims(subject, issuer, ttl))
}

// ES256Token mints a token signed with the ECDSA private key fixture.
func ES256Token(subject, issuer string, ttl time.Duration) string {
	return Mint(gojwt.SigningMethodES256, ECPrivateKey(), RegisteredClaims(subject, issuer, ttl))
}

// NoneToken mints an unsigned token, exercising schemes whose algorithm
// family is unrecognized and whose signature checking is disabled.
func NoneToken(subject, issuer string, ttl time.Duration) string {
	return Mint(gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, RegisteredClaims(subject, issuer, ttl))
}
