package credential

import (
	"fmt"

	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/validation"
)

// Credential declares one bearer-token authentication scheme.
type Credential struct {
	// Scheme is the unique name of the scheme.
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"required"`
	// Header is the HTTP header inspected for the token.
	Header string `json:"header" yaml:"header" mapstructure:"header" validate:"required"`
	// Prefix is stripped from the header value to recover the token.
	// Empty means the whole header value is the token.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix"`
	// Algorithm names the JWT signing algorithm (HS256, RS384, ES256, ...).
	// Its first two characters select the key family, case-insensitively.
	Algorithm string `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required"`
	// SignKey is the encoded verification key material: standard base64 for
	// HMAC secrets, PEM for RSA and ECDSA keys.
	SignKey Secret `json:"sign_key" yaml:"sign_key" mapstructure:"sign_key" validate:"required"`
	// Issuer pins the expected token issuer. Empty disables issuer validation.
	Issuer string `json:"issuer,omitempty" yaml:"issuer,omitempty" mapstructure:"issuer"`
}

// Validate checks the credential's own fields.
func (c Credential) Validate() error {
	return validation.Validate(c)
}

// LogFields returns structured log fields describing the credential
// without exposing key material.
func (c Credential) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"scheme":        c.Scheme,
		"header":        c.Header,
		"prefix":        c.Prefix,
		"algorithm":     c.Algorithm,
		"issuer_pinned": c.Issuer != "",
	}
}

// Settings is the root configuration for bearer-token authentication.
type Settings struct {
	// Credentials is the ordered scheme list. Order matters: scheme
	// selection is first-match-wins.
	Credentials []Credential `json:"credentials" yaml:"credentials" mapstructure:"credentials"`
}

// Validate checks every credential and the cross-credential rules.
// An empty list is legal and yields no active schemes.
func (s Settings) Validate() error {
	seen := make(map[string]int, len(s.Credentials))
	for i, cred := range s.Credentials {
		if err := cred.Validate(); err != nil {
			msg := err.Error()
			if appErr, ok := errors.AsAppError(err); ok {
				msg = appErr.Message
			}
			return errors.Configuration(fmt.Sprintf("credential[%d]: %s", i, msg)).WithCause(err)
		}
		if prev, dup := seen[cred.Scheme]; dup {
			return errors.Configuration(fmt.Sprintf(
				"duplicate scheme %q declared at positions %d and %d", cred.Scheme, prev, i))
		}
		seen[cred.Scheme] = i
	}
	return nil
}
