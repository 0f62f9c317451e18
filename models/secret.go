package models

import "crypto/subtle"

// RedactionToken is the fixed placeholder rendered in place of a secret's
// real value on every textual serialization path.
const RedactionToken = "**********"

// Secret holds a sensitive configuration value such as a password or an API
// key. Every default rendering path — fmt verbs, JSON, YAML, text
// marshalling — substitutes [RedactionToken] for the real value; the
// plaintext is only reachable through an explicit call to Reveal.
//
// The zero value is an empty secret and renders as an empty string, so
// optional secrets that were never set do not show up as redacted noise in
// dumps.
type Secret struct {
	value string
}

// NewSecret wraps a plaintext value in a Secret.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the real underlying value. It is the only accessor that
// bypasses redaction; call sites should pass the result on immediately
// rather than storing it.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret was never set.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// EqualString compares the secret against a plaintext candidate in constant
// time, so internal logic can check credentials without revealing them.
func (s Secret) EqualString(other string) bool {
	return subtle.ConstantTimeCompare([]byte(s.value), []byte(other)) == 1
}

// String implements fmt.Stringer and always redacts.
func (s Secret) String() string {
	return s.masked()
}

// GoString implements fmt.GoStringer so %#v does not leak the value.
func (s Secret) GoString() string {
	return "models.Secret(" + s.masked() + ")"
}

// MarshalText implements encoding.TextMarshaler with redaction. It covers
// every encoder that falls back to text marshalling.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.masked()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, storing the plaintext.
func (s *Secret) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}

// MarshalJSON implements json.Marshaler with redaction.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.masked() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler with redaction.
func (s Secret) MarshalYAML() (any, error) {
	return s.masked(), nil
}

func (s Secret) masked() string {
	if s.value == "" {
		return ""
	}
	return RedactionToken
}
