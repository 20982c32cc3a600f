// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package permute deterministically rearranges the characters of a string.
// The permutation is a Fisher-Yates shuffle driven by a generator seeded from
// a seed string, so the same seed and input always give the same output and
// the output always holds exactly the input's characters.
package permute

import (
	"strings"
	"unicode/utf8"

	"github.com/toeirei/tasagare/core/seed"
	"github.com/toeirei/tasagare/internal/prng"
)

type options struct {
	seed        string
	hasSeed     bool
	granularity seed.Granularity
	generator   *seed.Generator
}

// Option configures a single Rearrange call.
type Option func(*options)

// WithSeed uses s verbatim and skips seed generation. The resulting
// permutation is fully predictable to anyone who knows s; reserve it for
// cases where the same arrangement must be reproduced on purpose.
func WithSeed(s string) Option {
	return func(o *options) {
		o.seed = s
		o.hasSeed = true
	}
}

// WithGranularity binds the generated seed to a calendar bucket. Ignored when
// WithSeed is given.
func WithGranularity(g seed.Granularity) Option {
	return func(o *options) { o.granularity = g }
}

// WithGenerator sets the generator used when no explicit seed is given.
func WithGenerator(gen *seed.Generator) Option {
	return func(o *options) { o.generator = gen }
}

// Rearrange returns input with its characters shuffled. Without options the
// seed is freshly generated and practically unique, so repeated calls give
// different arrangements.
func Rearrange(input string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if input == "" {
		return ""
	}
	return Shuffle(input, o.resolveSeed())
}

func (o *options) resolveSeed() string {
	if o.hasSeed {
		return o.seed
	}
	if o.generator != nil {
		return o.generator.Generate(o.granularity)
	}
	return seed.Generate(o.granularity)
}

// Shuffle rearranges the characters of input with a generator seeded from s.
// Characters are UTF-8 encoded code points; a byte that does not start a
// valid encoding is moved as a unit of its own.
func Shuffle(input, s string) string {
	chars := splitChars(input)
	if len(chars) < 2 {
		return input
	}
	prng.New(s).Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return strings.Join(chars, "")
}

func splitChars(s string) []string {
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		chars = append(chars, s[:size])
		s = s[size:]
	}
	return chars
}
