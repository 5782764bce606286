package credential

import (
	"strings"
	"testing"

	"github.com/skillsenselab/bearerkit/errors"
)

func validCredential() Credential {
	return Credential{
		Scheme:    "tenantA",
		Header:    "Authorization",
		Prefix:    "Bearer ",
		Algorithm: "HS256",
		SignKey:   "c2VjcmV0LWJ5dGVz",
	}
}

func TestCredential_Validate_Success(t *testing.T) {
	if err := validCredential().Validate(); err != nil {
		t.Errorf("expected valid credential, got %v", err)
	}
}

func TestCredential_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Credential)
		field  string
	}{
		{"missing scheme", func(c *Credential) { c.Scheme = "" }, "scheme"},
		{"missing header", func(c *Credential) { c.Header = "" }, "header"},
		{"missing algorithm", func(c *Credential) { c.Algorithm = "" }, "algorithm"},
		{"missing sign key", func(c *Credential) { c.SignKey = "" }, "sign_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := validCredential()
			tt.mutate(&cred)
			err := cred.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected %q in error, got %q", tt.field, err.Error())
			}
		})
	}
}

func TestCredential_Validate_OptionalFields(t *testing.T) {
	cred := validCredential()
	cred.Prefix = ""
	cred.Issuer = ""
	if err := cred.Validate(); err != nil {
		t.Errorf("prefix and issuer are optional, got %v", err)
	}
}

func TestSettings_Validate_Success(t *testing.T) {
	a := validCredential()
	b := validCredential()
	b.Scheme = "tenantB"
	b.Header = "X-Api-Key"

	s := Settings{Credentials: []Credential{a, b}}
	if err := s.Validate(); err != nil {
		t.Errorf("expected valid settings, got %v", err)
	}
}

func TestSettings_Validate_EmptyListLegal(t *testing.T) {
	if err := (Settings{}).Validate(); err != nil {
		t.Errorf("empty credential list should be legal, got %v", err)
	}
}

func TestSettings_Validate_DuplicateSchemes(t *testing.T) {
	a := validCredential()
	b := validCredential()
	b.Header = "X-Api-Key"

	s := Settings{Credentials: []Credential{a, b}}
	err := s.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate scheme names")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "tenantA") {
		t.Errorf("expected duplicate name in message, got %q", appErr.Message)
	}
}

func TestSettings_Validate_BadCredentialPositioned(t *testing.T) {
	a := validCredential()
	bad := validCredential()
	bad.Scheme = "tenantB"
	bad.Header = ""

	s := Settings{Credentials: []Credential{a, bad}}
	err := s.Validate()
	if err == nil {
		t.Fatal("expected error for invalid credential")
	}
	if !strings.Contains(err.Error(), "credential[1]") {
		t.Errorf("expected position in error, got %q", err.Error())
	}
}

func TestCredential_LogFields_NoSecret(t *testing.T) {
	cred := validCredential()
	cred.Issuer = "https://issuer.example.com"
	fields := cred.LogFields()

	if fields["scheme"] != "tenantA" {
		t.Errorf("expected scheme field, got %v", fields["scheme"])
	}
	if fields["issuer_pinned"] != true {
		t.Errorf("expected issuer_pinned=true, got %v", fields["issuer_pinned"])
	}
	for k, v := range fields {
		if s, ok := v.(string); ok && strings.Contains(s, "c2VjcmV0") {
			t.Errorf("field %q leaks key material: %v", k, v)
		}
	}
}
