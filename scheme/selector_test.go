package scheme_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/internal/testkeys"
	"github.com/skillsenselab/bearerkit/scheme"
)

func newRequest(headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/resource", nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func cred(name, header, prefix string) credential.Credential {
	return credential.Credential{
		Scheme:    name,
		Header:    header,
		Prefix:    prefix,
		Algorithm: "HS256",
		SignKey:   credential.Secret(testkeys.HMACSecretB64),
	}
}

// ---- Match ----

func TestMatch_EmptyPrefixTakesWholeValue(t *testing.T) {
	r := newRequest(map[string]string{"X-Api-Key": "raw-token-value"})
	tok, ok := scheme.Match(cred("api", "X-Api-Key", ""), r)
	if !ok {
		t.Fatal("expected match")
	}
	if tok != "raw-token-value" {
		t.Errorf("expected whole value as token, got %q", tok)
	}
}

func TestMatch_PrefixRoundTrip(t *testing.T) {
	// The token must come back exactly as it appeared after the prefix,
	// with no whitespace normalization in either direction.
	tests := []struct {
		prefix string
		token  string
	}{
		{"Bearer ", "abc.def.ghi"},
		{"Token=", "opaque-123"},
		{"Bearer ", " leading-space-preserved"},
		{"Bearer", " space-is-part-of-token"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+tt.token, func(t *testing.T) {
			r := newRequest(map[string]string{"Authorization": tt.prefix + tt.token})
			got, ok := scheme.Match(cred("s", "Authorization", tt.prefix), r)
			if !ok {
				t.Fatal("expected match")
			}
			if got != tt.token {
				t.Errorf("recovered token %q, want %q", got, tt.token)
			}
		})
	}
}

func TestMatch_PrefixCaseSensitive(t *testing.T) {
	r := newRequest(map[string]string{"Authorization": "bearer abc"})
	if _, ok := scheme.Match(cred("s", "Authorization", "Bearer "), r); ok {
		t.Error("lowercase 'bearer' must not match prefix 'Bearer '")
	}
}

func TestMatch_MissingHeaderNeverMatches(t *testing.T) {
	r := newRequest(nil)
	if _, ok := scheme.Match(cred("s", "Authorization", "Bearer "), r); ok {
		t.Error("missing header must not match a prefixed credential")
	}
	if _, ok := scheme.Match(cred("s", "Authorization", ""), r); ok {
		t.Error("missing header must not match an unprefixed credential")
	}
}

func TestMatch_ValueEqualsPrefix(t *testing.T) {
	// A value consisting of only the prefix still matches; the empty
	// remainder then fails token verification downstream.
	r := newRequest(map[string]string{"Authorization": "Bearer "})
	tok, ok := scheme.Match(cred("s", "Authorization", "Bearer "), r)
	if !ok {
		t.Fatal("expected match")
	}
	if tok != "" {
		t.Errorf("expected empty token, got %q", tok)
	}
}

func TestMatch_WrongPrefixRejected(t *testing.T) {
	r := newRequest(map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
	if _, ok := scheme.Match(cred("s", "Authorization", "Bearer "), r); ok {
		t.Error("'Basic' value must not match 'Bearer ' prefix")
	}
}

// ---- Selector ----

func TestSelector_OrderDecides(t *testing.T) {
	a := cred("A", "X-Auth", "")
	b := cred("B", "X-Auth", "Bearer ")
	r := newRequest(map[string]string{"X-Auth": "Bearer abc"})

	// Both schemes match this request; the earlier one wins.
	if name, ok := scheme.NewSelector([]credential.Credential{a, b}).Select(r); !ok || name != "A" {
		t.Errorf("expected A for order [A,B], got %q (ok=%v)", name, ok)
	}
	if name, ok := scheme.NewSelector([]credential.Credential{b, a}).Select(r); !ok || name != "B" {
		t.Errorf("expected B for order [B,A], got %q (ok=%v)", name, ok)
	}
}

func TestSelector_Deterministic(t *testing.T) {
	sel := scheme.NewSelector([]credential.Credential{
		cred("tenantA", "Authorization", "Bearer "),
		cred("tenantB", "X-Api-Key", ""),
	})
	r := newRequest(map[string]string{"Authorization": "Bearer abc"})

	first, ok := sel.Select(r)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 10; i++ {
		got, ok := sel.Select(r)
		if !ok || got != first {
			t.Fatalf("call %d returned %q (ok=%v), want stable %q", i, got, ok, first)
		}
	}
}

func TestSelector_RoutesByHeader(t *testing.T) {
	sel := scheme.NewSelector([]credential.Credential{
		cred("tenantA", "Authorization", "Bearer "),
		cred("tenantB", "X-Api-Key", ""),
	})

	if name, _ := sel.Select(newRequest(map[string]string{"X-Api-Key": "k"})); name != "tenantB" {
		t.Errorf("expected tenantB, got %q", name)
	}
	if name, _ := sel.Select(newRequest(map[string]string{"Authorization": "Bearer t"})); name != "tenantA" {
		t.Errorf("expected tenantA, got %q", name)
	}
}

func TestSelector_NoMatch(t *testing.T) {
	sel := scheme.NewSelector([]credential.Credential{
		cred("tenantA", "Authorization", "Bearer "),
	})
	if name, ok := sel.Select(newRequest(map[string]string{"Cookie": "x=1"})); ok {
		t.Errorf("expected no match, got %q", name)
	}
}

func TestSelector_EmptyList(t *testing.T) {
	sel := scheme.NewSelector(nil)
	if _, ok := sel.Select(newRequest(map[string]string{"Authorization": "Bearer t"})); ok {
		t.Error("expected no match for empty credential list")
	}
}

func TestSelector_ImmuneToCallerMutation(t *testing.T) {
	creds := []credential.Credential{cred("tenantA", "Authorization", "Bearer ")}
	sel := scheme.NewSelector(creds)

	creds[0].Header = "X-Hijacked"

	r := newRequest(map[string]string{"Authorization": "Bearer abc"})
	if name, ok := sel.Select(r); !ok || name != "tenantA" {
		t.Errorf("selector must not observe caller mutations, got %q (ok=%v)", name, ok)
	}
}
