package token

import (
	"strings"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/signingkey"
)

// Params are the verification parameters for one scheme. They are derived
// from a credential once at startup, never mutated afterwards, and shared
// by reference across all in-flight verifications.
type Params struct {
	// Scheme is the owning scheme name.
	Scheme string
	// Algorithm is the signing algorithm, normalized to upper case for
	// method allow-listing.
	Algorithm string
	// Key is the parsed verification key. Keyless when the algorithm
	// family is unrecognized.
	Key signingkey.VerificationKey
	// ValidateSigningKey reports whether signature verification runs.
	// It is true exactly when the factory produced a key.
	ValidateSigningKey bool
	// ValidateIssuer reports whether the issuer claim is pinned.
	ValidateIssuer bool
	// Issuer is the pinned issuer value when ValidateIssuer is true.
	Issuer string
	// ValidateLifetime is always true: exp and nbf are enforced with
	// zero clock skew tolerance.
	ValidateLifetime bool
	// ValidateAudience is always false: audience checking is not part
	// of this library's contract.
	ValidateAudience bool
}

// BuildParams derives verification parameters from a credential. The only
// failure source is the key factory; every policy toggle is deterministic:
// issuer validation follows the credential, audience is always off,
// lifetime is always on.
func BuildParams(cred credential.Credential) (Params, error) {
	key, err := signingkey.Parse(cred.Algorithm, cred.SignKey.Value())
	if err != nil {
		return Params{}, err
	}

	return Params{
		Scheme:             cred.Scheme,
		Algorithm:          strings.ToUpper(cred.Algorithm),
		Key:                key,
		ValidateSigningKey: key.HasKey(),
		ValidateIssuer:     cred.Issuer != "",
		Issuer:             cred.Issuer,
		ValidateLifetime:   true,
		ValidateAudience:   false,
	}, nil
}
