package token

import (
	"encoding/json"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims are the verified claims of an accepted token. RegisteredClaims
// carries the standard fields; Extra preserves every claim in raw form so
// hosts can read private claims without this package knowing their shape.
type Claims struct {
	gojwt.RegisteredClaims
	// Extra holds the full claim set as decoded JSON, including private
	// claims that have no registered field.
	Extra map[string]any `json:"-"`
}

// UnmarshalJSON decodes the registered fields and captures the raw claim
// set in one pass.
func (c *Claims) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &c.RegisteredClaims); err != nil {
		return err
	}
	return json.Unmarshal(data, &c.Extra)
}

// Get returns a claim by name from the raw claim set.
func (c *Claims) Get(name string) (any, bool) {
	v, ok := c.Extra[name]
	return v, ok
}

// GetString returns a string claim by name. Missing or non-string claims
// yield the empty string.
func (c *Claims) GetString(name string) string {
	if v, ok := c.Extra[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
