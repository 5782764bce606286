package credential

// Secret holds sensitive key material. It redacts itself in every textual
// representation so that credentials cannot leak through logs, error
// messages, or serialized configuration.
type Secret string

// secretRedacted is the placeholder shown instead of the actual value
// when the secret is printed, formatted, or serialized.
const secretRedacted = "[REDACTED]"

// String returns the redacted placeholder, preventing the secret from
// being printed via fmt.Println, log output, or similar.
func (s Secret) String() string { return secretRedacted }

// GoString returns the redacted placeholder, preventing the secret from
// being printed via fmt.Printf("%#v", ...).
func (s Secret) GoString() string { return secretRedacted }

// Value returns the actual secret string. This is the only way to access
// the underlying value and should be used only where the raw material is
// required, such as handing it to the key factory.
func (s Secret) Value() string { return string(s) }

// MarshalText implements encoding.TextMarshaler, returning the redacted
// placeholder. This keeps the secret out of JSON, YAML, and any other
// text-based serialization.
func (s Secret) MarshalText() ([]byte, error) { return []byte(secretRedacted), nil }

// UnmarshalText implements encoding.TextUnmarshaler so secrets can be
// decoded from configuration files.
func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
