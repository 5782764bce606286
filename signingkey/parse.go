package signingkey

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/base64"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/bearerkit/errors"
)

// VerificationKey is parsed key material bound to its algorithm family.
// Keys are immutable after Parse and shared by all verifications of the
// owning scheme.
type VerificationKey struct {
	// Family is the algorithm family the key belongs to.
	Family Family
	// Key holds []byte for HMAC, *rsa.PublicKey for RSA, *ecdsa.PublicKey
	// for ECDSA, and nil for FamilyUnknown.
	Key any
}

// HasKey reports whether parsed key material is present. Schemes without
// a key run with signature verification disabled.
func (k VerificationKey) HasKey() bool { return k.Key != nil }

// Parse builds the verification key for a scheme from its algorithm name
// and encoded material.
//
// Empty arguments and undecodable material are configuration defects and
// return an error. An algorithm outside the known families is not an
// error here: Parse returns a keyless VerificationKey and leaves the
// policy decision to the caller.
func Parse(algorithm, material string) (VerificationKey, error) {
	if algorithm == "" {
		return VerificationKey{}, errors.Configuration("signing algorithm must not be empty")
	}
	if material == "" {
		return VerificationKey{}, errors.Configuration("signing key material must not be empty")
	}

	family := FamilyOf(algorithm)
	switch family {
	case FamilyHMAC:
		secret, err := base64.StdEncoding.DecodeString(material)
		if err != nil {
			return VerificationKey{}, errors.Configuration(fmt.Sprintf(
				"algorithm %s: HMAC secret is not valid standard base64", algorithm)).WithCause(err)
		}
		return VerificationKey{Family: family, Key: secret}, nil

	case FamilyRSA:
		key, err := parseRSA(material)
		if err != nil {
			return VerificationKey{}, errors.Configuration(fmt.Sprintf(
				"algorithm %s: key material is not a PEM-encoded RSA public key or key pair", algorithm)).WithCause(err)
		}
		return VerificationKey{Family: family, Key: key}, nil

	case FamilyECDSA:
		key, err := parseECDSA(material)
		if err != nil {
			return VerificationKey{}, errors.Configuration(fmt.Sprintf(
				"algorithm %s: key material is not a PEM-encoded ECDSA public key or key pair", algorithm)).WithCause(err)
		}
		return VerificationKey{Family: family, Key: key}, nil

	default:
		return VerificationKey{Family: FamilyUnknown}, nil
	}
}

// parseRSA accepts a public key (or certificate) PEM, falling back to a
// private key pair from which the public half is derived.
func parseRSA(material string) (*rsa.PublicKey, error) {
	if pub, err := gojwt.ParseRSAPublicKeyFromPEM([]byte(material)); err == nil {
		return pub, nil
	}
	priv, err := gojwt.ParseRSAPrivateKeyFromPEM([]byte(material))
	if err != nil {
		return nil, err
	}
	return &priv.PublicKey, nil
}

// parseECDSA mirrors parseRSA for EC keys.
func parseECDSA(material string) (*ecdsa.PublicKey, error) {
	if pub, err := gojwt.ParseECPublicKeyFromPEM([]byte(material)); err == nil {
		return pub, nil
	}
	priv, err := gojwt.ParseECPrivateKeyFromPEM([]byte(material))
	if err != nil {
		return nil, err
	}
	return &priv.PublicKey, nil
}
