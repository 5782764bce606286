package token_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/internal/testkeys"
	"github.com/skillsenselab/bearerkit/token"
)

func newVerifier(t *testing.T, cred credential.Credential) *token.Verifier {
	t.Helper()
	params, err := token.BuildParams(cred)
	if err != nil {
		t.Fatalf("BuildParams failed: %v", err)
	}
	return token.NewVerifier(params)
}

func rejectionCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	if err == nil {
		t.Fatal("expected verification to fail")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

// ---- HMAC ----

func TestVerify_HS256_Success(t *testing.T) {
	v := newVerifier(t, hmacCredential())
	raw := testkeys.HS256Token("user-1", "", time.Hour)

	claims, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %q", claims.Subject)
	}
}

func TestVerify_WrongAlgorithmRejected(t *testing.T) {
	v := newVerifier(t, hmacCredential())
	raw := testkeys.RS256Token("user-1", "", time.Hour)

	if code := rejectionCode(t, mustFail(v, raw)); code != errors.ErrCodeInvalidToken {
		t.Errorf("expected INVALID_TOKEN, got %s", code)
	}
}

func TestVerify_TamperedSignatureRejected(t *testing.T) {
	v := newVerifier(t, hmacCredential())

	a := testkeys.HS256Token("user-a", "", time.Hour)
	b := testkeys.HS256Token("user-b", "", time.Hour)
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	spliced := aParts[0] + "." + aParts[1] + "." + bParts[2]

	if code := rejectionCode(t, mustFail(v, spliced)); code != errors.ErrCodeInvalidToken {
		t.Errorf("expected INVALID_TOKEN, got %s", code)
	}
}

func TestVerify_ExpiredByOneSecondRejected(t *testing.T) {
	v := newVerifier(t, hmacCredential())
	raw := testkeys.HS256Token("user-1", "", -time.Second)

	if code := rejectionCode(t, mustFail(v, raw)); code != errors.ErrCodeTokenExpired {
		t.Errorf("expected TOKEN_EXPIRED, got %s", code)
	}
}

func TestVerify_MalformedTokenRejected(t *testing.T) {
	v := newVerifier(t, hmacCredential())
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if err := mustFail(v, raw); err == nil {
			t.Errorf("expected rejection for %q", raw)
		}
	}
}

// ---- Issuer ----

func TestVerify_IssuerPinned(t *testing.T) {
	cred := hmacCredential()
	cred.Issuer = "https://good.example.com"
	v := newVerifier(t, cred)

	good := testkeys.HS256Token("user-1", "https://good.example.com", time.Hour)
	if _, err := v.Verify(good); err != nil {
		t.Errorf("expected matching issuer to pass, got %v", err)
	}

	bad := testkeys.HS256Token("user-1", "https://evil.example.com", time.Hour)
	if code := rejectionCode(t, mustFail(v, bad)); code != errors.ErrCodeInvalidToken {
		t.Errorf("expected INVALID_TOKEN, got %s", code)
	}

	missing := testkeys.HS256Token("user-1", "", time.Hour)
	if err := mustFail(v, missing); err == nil {
		t.Error("expected token without issuer to fail against pinned issuer")
	}
}

func TestVerify_IssuerUnpinnedAcceptsAny(t *testing.T) {
	v := newVerifier(t, hmacCredential())
	raw := testkeys.HS256Token("user-1", "https://anything.example.com", time.Hour)
	if _, err := v.Verify(raw); err != nil {
		t.Errorf("expected any issuer to pass when unpinned, got %v", err)
	}
}

// ---- Asymmetric families ----

func TestVerify_RS256_Success(t *testing.T) {
	for name, material := range map[string]string{
		"public key":  testkeys.RSAPublicPEM,
		"private key": testkeys.RSAPrivatePKCS8PEM,
	} {
		t.Run(name, func(t *testing.T) {
			cred := hmacCredential()
			cred.Algorithm = "RS256"
			cred.SignKey = credential.Secret(material)
			v := newVerifier(t, cred)

			raw := testkeys.RS256Token("svc-9", "", time.Hour)
			claims, err := v.Verify(raw)
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if claims.Subject != "svc-9" {
				t.Errorf("expected subject svc-9, got %q", claims.Subject)
			}
		})
	}
}

func TestVerify_ES256_Success(t *testing.T) {
	cred := hmacCredential()
	cred.Algorithm = "ES256"
	cred.SignKey = credential.Secret(testkeys.ECPublicPEM)
	v := newVerifier(t, cred)

	raw := testkeys.ES256Token("svc-ec", "", time.Hour)
	claims, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "svc-ec" {
		t.Errorf("expected subject svc-ec, got %q", claims.Subject)
	}
}

// ---- Signature checking disabled (unknown family) ----

func TestVerify_KeylessSchemeSkipsSignature(t *testing.T) {
	cred := hmacCredential()
	cred.Algorithm = "PS256"
	v := newVerifier(t, cred)

	raw := testkeys.NoneToken("anon-1", "", time.Hour)
	claims, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("expected unsigned token to pass keyless scheme, got %v", err)
	}
	if claims.Subject != "anon-1" {
		t.Errorf("expected subject anon-1, got %q", claims.Subject)
	}
}

func TestVerify_KeylessSchemeStillEnforcesLifetime(t *testing.T) {
	cred := hmacCredential()
	cred.Algorithm = "PS256"
	v := newVerifier(t, cred)

	raw := testkeys.NoneToken("anon-1", "", -time.Second)
	if code := rejectionCode(t, mustFail(v, raw)); code != errors.ErrCodeTokenExpired {
		t.Errorf("expected TOKEN_EXPIRED, got %s", code)
	}
}

func TestVerify_KeylessSchemeStillEnforcesIssuer(t *testing.T) {
	cred := hmacCredential()
	cred.Algorithm = "PS256"
	cred.Issuer = "https://pinned.example.com"
	v := newVerifier(t, cred)

	bad := testkeys.NoneToken("anon-1", "https://other.example.com", time.Hour)
	if err := mustFail(v, bad); err == nil {
		t.Error("expected issuer mismatch to fail even without signature checking")
	}

	good := testkeys.NoneToken("anon-1", "https://pinned.example.com", time.Hour)
	if _, err := v.Verify(good); err != nil {
		t.Errorf("expected matching issuer to pass, got %v", err)
	}
}

func TestVerify_KeylessSchemeMalformedRejected(t *testing.T) {
	cred := hmacCredential()
	cred.Algorithm = "PS256"
	v := newVerifier(t, cred)

	if err := mustFail(v, "not-a-token"); err == nil {
		t.Error("expected malformed token to fail")
	}
}

// ---- Claims access ----

func TestVerify_ExtraClaimsPreserved(t *testing.T) {
	v := newVerifier(t, hmacCredential())

	now := time.Now()
	raw := testkeys.Mint(gojwt.SigningMethodHS256, testkeys.HMACSecret(), gojwt.MapClaims{
		"sub":    "user-7",
		"tenant": "acme",
		"roles":  []string{"admin", "auditor"},
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "user-7" {
		t.Errorf("expected subject user-7, got %q", claims.Subject)
	}
	if claims.GetString("tenant") != "acme" {
		t.Errorf("expected tenant claim, got %q", claims.GetString("tenant"))
	}
	if _, ok := claims.Get("roles"); !ok {
		t.Error("expected roles claim to be preserved")
	}
	if claims.GetString("missing") != "" {
		t.Error("expected empty string for missing claim")
	}
}

// mustFail returns the verification error, failing the test if verification
// unexpectedly succeeds.
func mustFail(v *token.Verifier, raw string) error {
	_, err := v.Verify(raw)
	return err
}
