package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/bearerkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("scheme", "tenantA")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("scheme", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("scheme", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorBase64(t *testing.T) {
	v := New()
	v.Base64("secret", "c2VjcmV0LWJ5dGVz")
	if v.HasErrors() {
		t.Errorf("expected no errors for valid base64, got %v", v.Errors())
	}

	v2 := New()
	v2.Base64("secret", "not-base64!!!")
	if !v2.HasErrors() {
		t.Error("expected error for invalid base64")
	}

	v3 := New()
	v3.Base64("secret", "")
	if v3.HasErrors() {
		t.Error("expected empty value to be skipped")
	}
}

func TestValidatorLengths(t *testing.T) {
	v := New()
	v.MaxLength("scheme", "short", 10)
	if v.HasErrors() {
		t.Error("expected no error within max length")
	}

	v2 := New()
	v2.MaxLength("scheme", "this is definitely too long", 10)
	if !v2.HasErrors() {
		t.Error("expected error over max length")
	}

	v3 := New()
	v3.MinLength("secret", "ab", 16)
	if !v3.HasErrors() {
		t.Error("expected error under min length")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("algorithm", "HS256", []string{"HS256", "RS256", "ES256"})
	if v.HasErrors() {
		t.Error("expected no error for allowed value")
	}

	v2 := New()
	v2.OneOf("algorithm", "none", []string{"HS256", "RS256", "ES256"})
	if !v2.HasErrors() {
		t.Error("expected error for disallowed value")
	}
}

func TestValidatorPattern(t *testing.T) {
	v := New()
	v.Pattern("header", "X-Api-Key", `^[A-Za-z0-9-]+$`)
	if v.HasErrors() {
		t.Error("expected no error for matching pattern")
	}

	v2 := New()
	v2.Pattern("header", "bad header", `^[A-Za-z0-9-]+$`)
	if !v2.HasErrors() {
		t.Error("expected error for non-matching pattern")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "schemes", "must not contain duplicates")
	if v.HasErrors() {
		t.Error("expected no error when condition holds")
	}

	v2 := New()
	v2.Custom(false, "schemes", "must not contain duplicates")
	if !v2.HasErrors() {
		t.Error("expected error when condition fails")
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("scheme", "")
	v.Base64("secret", "%%%")

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError for failed validation")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "scheme") || !strings.Contains(appErr.Message, "secret") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details)
	}
}

func TestValidatorValidateClean(t *testing.T) {
	v := New()
	v.Required("scheme", "ok")
	if appErr := v.Validate(); appErr != nil {
		t.Errorf("expected nil for clean validator, got %v", appErr)
	}
}

func TestRequiredHelper(t *testing.T) {
	if err := Required("scheme", "value"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("scheme", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

// ---- Struct tag validation ----

type testCredential struct {
	Scheme    string `json:"scheme" validate:"required"`
	Algorithm string `json:"algorithm" validate:"required,max=16"`
	Secret    string `json:"secret" validate:"omitempty,base64"`
}

func TestValidateStruct_Success(t *testing.T) {
	cred := testCredential{
		Scheme:    "tenantA",
		Algorithm: "RS256",
		Secret:    "c2VjcmV0",
	}
	if err := Validate(cred); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	cred := testCredential{Algorithm: "RS256"}
	err := Validate(cred)
	if err == nil {
		t.Fatal("expected error for missing scheme")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if !strings.Contains(appErr.Message, "scheme: is required") {
		t.Errorf("expected json tag name in message, got %q", appErr.Message)
	}
}

func TestValidateStruct_BadBase64(t *testing.T) {
	cred := testCredential{
		Scheme:    "tenantA",
		Algorithm: "HS256",
		Secret:    "!!not-base64!!",
	}
	err := Validate(cred)
	if err == nil {
		t.Fatal("expected error for invalid base64 secret")
	}
	if !strings.Contains(err.Error(), "base64") {
		t.Errorf("expected base64 message, got %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Scheme":        "scheme",
		"KeyMaterial":   "key_material",
		"HTTPStatus":    "h_t_t_p_status",
		"lowercase":     "lowercase",
		"SigningSecret": "signing_secret",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
