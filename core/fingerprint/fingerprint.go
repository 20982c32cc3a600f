// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fingerprint turns a credential into the 96 character hex digest
// stored for each user. The credential is first rearranged with a constant,
// process-wide seed and then hashed with SHA3-384.
//
// The construction has no per-record salt and no key stretching. It is kept
// exactly as is because existing records depend on it.
package fingerprint

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/toeirei/tasagare/core/permute"
	"github.com/toeirei/tasagare/core/security"
	"golang.org/x/crypto/sha3"
)

// DefaultSeed is the rearrangement seed used when none is configured.
//
// It is INSECURE: the value is public, so anyone holding a fingerprint made
// with it can undo the rearrangement. Deployments should configure their own
// seed. Changing the seed invalidates every stored fingerprint.
const DefaultSeed = "UIUAG8RWIUSHSZ'/FPEJBDFVO;JBDEIRODF"

// Size is the length of a fingerprint in hex characters.
const Size = 96

// Finalizer computes fingerprints with a fixed rearrangement seed. It is safe
// for concurrent use.
type Finalizer struct {
	seed string
}

// New returns a Finalizer using seed, or DefaultSeed when seed is empty.
func New(seed string) *Finalizer {
	if seed == "" {
		seed = DefaultSeed
	}
	return &Finalizer{seed: seed}
}

var defaultFinalizer = New(DefaultSeed)

// Fingerprint computes the fingerprint of text with DefaultSeed.
func Fingerprint(text string) string {
	return defaultFinalizer.Fingerprint(text)
}

// UsesDefaultSeed reports whether the Finalizer fell back to DefaultSeed.
func (f *Finalizer) UsesDefaultSeed() bool {
	return f.seed == DefaultSeed
}

// Fingerprint rearranges text with the configured seed and returns the
// lowercase hex SHA3-384 of the result.
func (f *Finalizer) Fingerprint(text string) string {
	shuffled := permute.Rearrange(text, permute.WithSeed(f.seed))
	sum := sha3.Sum384([]byte(shuffled))
	return hex.EncodeToString(sum[:])
}

// FingerprintSecret is Fingerprint for a wrapped credential.
func (f *Finalizer) FingerprintSecret(s security.Secret) string {
	return f.Fingerprint(s.Reveal())
}

// Verify reports whether text fingerprints to stored. The comparison is exact
// and runs in constant time for inputs of equal length.
func (f *Finalizer) Verify(text, stored string) bool {
	got := f.Fingerprint(text)
	return subtle.ConstantTimeCompare([]byte(got), []byte(stored)) == 1
}

// VerifySecret is Verify for a wrapped credential.
func (f *Finalizer) VerifySecret(s security.Secret, stored string) bool {
	return f.Verify(s.Reveal(), stored)
}
