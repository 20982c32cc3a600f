// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package seed

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	mathrand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/toeirei/tasagare/internal/prng"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/encoding/unicode/utf32"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	minNoiseLen  = 25
	maxNoiseLen  = 100
	minSuffixLen = 6
	maxSuffixLen = 35
	minSuffixChr = 33
	maxSuffixChr = 126
)

// Entropy is the source of the random characters appended to unbounded
// seeds. *math/rand/v2.Rand satisfies it.
type Entropy interface {
	IntN(n int) int
}

// cryptoSource feeds math/rand/v2 from crypto/rand. crypto/rand.Read does
// not return errors on supported platforms.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Generator produces seeds. The zero value is not usable; use NewGenerator.
type Generator struct {
	clock   Clock
	entropy Entropy
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock the calendar fields are read from.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithEntropy replaces the cryptographic source used for the random part of
// unbounded seeds. Intended for tests.
func WithEntropy(e Entropy) Option {
	return func(g *Generator) { g.entropy = e }
}

// NewGenerator returns a Generator reading the local system clock and
// crypto/rand unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{clock: systemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate returns a seed for g using the system clock.
func Generate(g Granularity) string {
	return defaultGenerator.Generate(g)
}

// Generate returns a seed for the requested granularity. Periodic
// granularities return the same seed for every call inside the same bucket.
func (gen *Generator) Generate(g Granularity) string {
	now := gen.clock.Now()
	raw := strconv.FormatInt(Bucket(g, now), 10)
	if !g.Periodic() {
		raw += gen.noise()
	}
	return Finalize(raw)
}

// Bucket returns the integer a seed is derived from. For periodic
// granularities it only depends on the calendar bucket containing t. For
// None it mixes every field down to the microsecond.
//
// The multipliers match the seeds already in use and must not change.
func Bucket(g Granularity, t time.Time) int64 {
	day := int64(t.Day())
	week := day / 7
	month := int64(t.Month())
	year := int64(t.Year())

	switch g {
	case Day:
		return 2*day + 40*week + 128*month + 1050*year
	case Week:
		return week + 10*month + 100*year
	case Month:
		return 13*month + 100*year
	case Year:
		return 99 * year
	}

	micro := int64(t.Nanosecond() / int(time.Microsecond))
	return 8*micro +
		14*int64(t.Second()) +
		131*int64(t.Minute()) +
		1031*int64(t.Hour()) +
		27491*day +
		402464*week +
		1740020*month +
		1042000*year
}

func (gen *Generator) noise() string {
	src := gen.entropy
	if src == nil {
		src = mathrand.New(cryptoSource{})
	}
	size := minNoiseLen + src.IntN(maxNoiseLen-minNoiseLen+1)
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(alphanumeric[src.IntN(len(alphanumeric))])
	}
	return sb.String()
}

// Finalize hashes raw and extends the digest with a printable suffix drawn
// from a generator seeded by the digest itself, so the result depends on raw
// alone.
func Finalize(raw string) string {
	digest := hex.EncodeToString(hashUTF32(raw))

	mt := prng.New(digest)
	size := mt.IntRange(minSuffixLen, maxSuffixLen)
	var sb strings.Builder
	sb.Grow(len(digest) + size)
	sb.WriteString(digest)
	for i := 0; i < size; i++ {
		sb.WriteByte(byte(mt.IntRange(minSuffixChr, maxSuffixChr)))
	}
	return sb.String()
}

// hashUTF32 returns SHA3-256 over s encoded as little-endian UTF-32 with a
// leading byte-order mark.
func hashUTF32(s string) []byte {
	enc := utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder()
	encoded, err := enc.Bytes([]byte(s))
	if err != nil {
		// Only reachable for input that is not valid UTF-8.
		encoded = []byte(s)
	}
	sum := sha3.Sum256(encoded)
	return sum[:]
}
