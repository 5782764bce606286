package scheme

import (
	"fmt"
	"net/http"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/token"
)

// Handler authenticates requests for a single scheme. Handlers are built
// by the Registry and immutable afterwards.
type Handler struct {
	cred     credential.Credential
	verifier *token.Verifier
}

// Scheme returns the scheme name this handler serves.
func (h *Handler) Scheme() string { return h.cred.Scheme }

// Params returns the verification parameters the handler enforces.
func (h *Handler) Params() token.Params { return h.verifier.Params() }

// Authenticate extracts the token from the request using the same rule
// the selector applies, then verifies it. Unlike selection, being asked
// to authenticate a request that carries no credentials for this scheme
// is an error: the caller routed the request here on purpose.
func (h *Handler) Authenticate(r *http.Request) (*token.Claims, error) {
	raw, ok := Match(h.cred, r)
	if !ok {
		return nil, errors.Unauthorized(fmt.Sprintf(
			"request carries no credentials for scheme %q", h.cred.Scheme))
	}
	return h.verifier.Verify(raw)
}

// Verify checks an already-extracted raw token against this scheme.
func (h *Handler) Verify(raw string) (*token.Claims, error) {
	return h.verifier.Verify(raw)
}
