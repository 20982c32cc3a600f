// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const redacted = "[SECRET]"

// Secret is a plaintext credential. Formatting, JSON and text encoding all
// produce a placeholder instead of the content.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so that every verb is redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON redacts secrets in JSON output.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoders such as YAML.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Len returns the length of the credential in bytes.
func (s Secret) Len() int { return len(s) }

// Reveal returns the credential as a string. The returned string cannot be
// zeroed; keep its lifetime short.
func (s Secret) Reveal() string { return string(s) }

// Use calls fn with the underlying bytes, not a copy.
func (s Secret) Use(fn func([]byte) error) error {
	return fn([]byte(s))
}

// Zero overwrites the credential in place.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}

// FromString wraps a string.
func FromString(in string) Secret { return Secret([]byte(in)) }

// FromBytes copies in. The caller may zero in afterwards.
func FromBytes(in []byte) Secret {
	out := make([]byte, len(in))
	copy(out, in)
	return Secret(out)
}

// FromLine copies a line read from a terminal or pipe with the trailing line
// terminator removed.
func FromLine(line []byte) Secret {
	s := strings.TrimRight(string(line), "\r\n")
	return FromString(s)
}
