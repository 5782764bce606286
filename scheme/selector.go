package scheme

import (
	"net/http"

	"github.com/skillsenselab/bearerkit/credential"
)

// Selector deterministically routes a request to the authentication
// scheme that should handle it. Implementations are read-only on the
// request, never fail, and are safe for unlimited concurrent use.
type Selector interface {
	// Select returns the name of the first configured scheme whose
	// header/prefix rule matches the request. It returns false when no
	// scheme matches, which is a normal outcome, not an error.
	Select(r *http.Request) (string, bool)
}

// credentialSelector is the single Selector implementation: an immutable,
// ordered credential list walked first-match-wins. Selection policy lives
// in the data, not in per-scheme selector types.
type credentialSelector struct {
	creds []credential.Credential
}

// NewSelector builds a Selector over the given credentials. The slice is
// copied because its order decides precedence and must never change
// underneath the selector.
func NewSelector(creds []credential.Credential) Selector {
	cp := make([]credential.Credential, len(creds))
	copy(cp, creds)
	return &credentialSelector{creds: cp}
}

func (s *credentialSelector) Select(r *http.Request) (string, bool) {
	for _, cred := range s.creds {
		if _, ok := Match(cred, r); ok {
			return cred.Scheme, true
		}
	}
	return "", false
}
