package token

import (
	stderrors "errors"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/bearerkit/errors"
)

// Verifier verifies raw bearer tokens for a single scheme. It is immutable
// and safe for concurrent use by any number of goroutines.
type Verifier struct {
	params     Params
	parserOpts []gojwt.ParserOption
	validator  *gojwt.Validator
}

// NewVerifier builds the verifier for one scheme's parameters. All parser
// configuration is computed here so Verify does no per-request setup.
func NewVerifier(params Params) *Verifier {
	// Leeway is deliberately not configured: expiry and not-before are
	// enforced with zero clock skew tolerance.
	parserOpts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{params.Algorithm}),
	}
	var validatorOpts []gojwt.ParserOption
	if params.ValidateIssuer {
		parserOpts = append(parserOpts, gojwt.WithIssuer(params.Issuer))
		validatorOpts = append(validatorOpts, gojwt.WithIssuer(params.Issuer))
	}

	return &Verifier{
		params:     params,
		parserOpts: parserOpts,
		validator:  gojwt.NewValidator(validatorOpts...),
	}
}

// Params returns the verification parameters this verifier enforces.
func (v *Verifier) Params() Params { return v.params }

// Verify checks a raw bearer token and returns its claims. Failures are
// authentication rejections, never server faults.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, errors.InvalidToken()
	}
	if !v.params.ValidateSigningKey {
		return v.verifyWithoutKey(raw)
	}

	claims := &Claims{}
	tok, err := gojwt.ParseWithClaims(raw, claims, v.keyFunc, v.parserOpts...)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !tok.Valid {
		return nil, errors.InvalidToken()
	}
	return claims, nil
}

// verifyWithoutKey parses the token without checking its signature, then
// applies the registered-claims checks with the same zero-leeway rules.
// Used for schemes whose algorithm family is unrecognized.
func (v *Verifier) verifyWithoutKey(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := gojwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.InvalidToken().WithCause(err)
	}
	if err := v.validator.Validate(claims); err != nil {
		return nil, mapTokenError(err)
	}
	return claims, nil
}

// keyFunc hands the scheme key to the parser after re-checking the method.
func (v *Verifier) keyFunc(tok *gojwt.Token) (interface{}, error) {
	if tok.Method.Alg() != v.params.Algorithm {
		return nil, fmt.Errorf("unexpected signing method: %s", tok.Method.Alg())
	}
	return v.params.Key.Key, nil
}

// mapTokenError translates engine failures into the error model.
func mapTokenError(err error) error {
	if stderrors.Is(err, gojwt.ErrTokenExpired) {
		return errors.TokenExpired().WithCause(err)
	}
	return errors.InvalidToken().WithCause(err)
}
