package signingkey

import "strings"

// Family identifies the cryptographic family of a signing algorithm.
type Family int

const (
	// FamilyUnknown marks algorithms outside the supported families.
	FamilyUnknown Family = iota
	// FamilyHMAC covers the HS* algorithms (shared symmetric secret).
	FamilyHMAC
	// FamilyRSA covers the RS* algorithms (RSA key pair).
	FamilyRSA
	// FamilyECDSA covers the ES* algorithms (ECDSA key pair).
	FamilyECDSA
)

// String returns the family name for logs and error messages.
func (f Family) String() string {
	switch f {
	case FamilyHMAC:
		return "HMAC"
	case FamilyRSA:
		return "RSA"
	case FamilyECDSA:
		return "ECDSA"
	default:
		return "unknown"
	}
}

// FamilyOf derives the family from an algorithm name. Only the first two
// characters are inspected, case-insensitively, so "hs256" and "HS512"
// both map to FamilyHMAC. Anything else, including shorter names, maps
// to FamilyUnknown.
func FamilyOf(algorithm string) Family {
	if len(algorithm) < 2 {
		return FamilyUnknown
	}
	switch strings.ToUpper(algorithm[:2]) {
	case "HS":
		return FamilyHMAC
	case "RS":
		return FamilyRSA
	case "ES":
		return FamilyECDSA
	default:
		return FamilyUnknown
	}
}
