package scheme

import (
	"net/http"
	"strings"

	"github.com/skillsenselab/bearerkit/credential"
)

// Match reports whether the request carries a candidate token for the
// credential, and returns that token when it does.
//
// The rule is strict: the header must be present with a non-empty value;
// a non-empty prefix must match byte-for-byte (ordinal, case-sensitive,
// no whitespace normalization) and the token is exactly the remainder;
// an empty prefix matches any non-empty value and the whole value is the
// token. Match never inspects the token itself, so a matching scheme may
// still reject the token during verification.
//
// Selection and per-scheme extraction both go through this one function,
// so the token a Handler verifies is always the token the Selector saw.
func Match(cred credential.Credential, r *http.Request) (string, bool) {
	value := r.Header.Get(cred.Header)
	if value == "" {
		return "", false
	}
	if cred.Prefix == "" {
		return value, true
	}
	if !strings.HasPrefix(value, cred.Prefix) {
		return "", false
	}
	return value[len(cred.Prefix):], true
}
