// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prng implements the 32-bit Mersenne Twister (MT19937) together with
// the string seeding, bit extraction and range reduction used by the
// fingerprints already stored in the field. Every stored fingerprint was
// produced from this exact stream, so the generator must not be swapped for
// math/rand or any other source.
//
// An MT is not safe for concurrent use. Callers create one per operation.
package prng

import (
	"crypto/sha512"
	"encoding/binary"
	"math/bits"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// MT is a Mersenne Twister generator.
type MT struct {
	state [n]uint32
	index int
}

// New returns a generator seeded from the string s. See SeedString.
func New(s string) *MT {
	mt := &MT{}
	mt.SeedString(s)
	return mt
}

// SeedString seeds the generator from a string. The key material is the UTF-8
// bytes of s followed by their SHA-512 digest, read as one big-endian integer
// and split into 32-bit words starting from the least significant end.
func (mt *MT) SeedString(s string) {
	raw := []byte(s)
	sum := sha512.Sum512(raw)
	raw = append(raw, sum[:]...)
	mt.seedKey(keyWords(raw))
}

// keyWords converts a big-endian integer into little-endian 32-bit words with
// leading zero bytes dropped. Zero becomes a single zero word.
func keyWords(be []byte) []uint32 {
	for len(be) > 0 && be[0] == 0 {
		be = be[1:]
	}
	if len(be) == 0 {
		return []uint32{0}
	}
	words := make([]uint32, (len(be)+3)/4)
	var chunk [4]byte
	for i := range words {
		end := len(be) - 4*i
		start := end - 4
		if start < 0 {
			start = 0
		}
		chunk = [4]byte{}
		copy(chunk[4-(end-start):], be[start:end])
		words[i] = binary.BigEndian.Uint32(chunk[:])
	}
	return words
}

func (mt *MT) seedScalar(s uint32) {
	mt.state[0] = s
	for i := 1; i < n; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = n
}

func (mt *MT) seedKey(key []uint32) {
	mt.seedScalar(19650218)
	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := mt.state[i-1]
		mt.state[i] = (mt.state[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			mt.state[0] = mt.state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := mt.state[i-1]
		mt.state[i] = (mt.state[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			mt.state[0] = mt.state[n-1]
			i = 1
		}
	}
	mt.state[0] = upperMask
}

func (mt *MT) twist() {
	mag := func(y uint32) uint32 {
		if y&1 == 1 {
			return matrixA
		}
		return 0
	}
	var kk int
	for kk = 0; kk < n-m; kk++ {
		y := (mt.state[kk] & upperMask) | (mt.state[kk+1] & lowerMask)
		mt.state[kk] = mt.state[kk+m] ^ (y >> 1) ^ mag(y)
	}
	for ; kk < n-1; kk++ {
		y := (mt.state[kk] & upperMask) | (mt.state[kk+1] & lowerMask)
		mt.state[kk] = mt.state[kk+m-n] ^ (y >> 1) ^ mag(y)
	}
	y := (mt.state[n-1] & upperMask) | (mt.state[0] & lowerMask)
	mt.state[n-1] = mt.state[m-1] ^ (y >> 1) ^ mag(y)
	mt.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT) Uint32() uint32 {
	if mt.index >= n {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Bits returns an integer with k random bits, 0 <= k <= 64. Outputs are
// consumed 32 bits at a time, least significant word first, and the final
// partial word keeps its most significant bits.
func (mt *MT) Bits(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k > 64 {
		k = 64
	}
	var out uint64
	for shift := 0; k > 0; shift, k = shift+32, k-32 {
		r := mt.Uint32()
		if k < 32 {
			r >>= 32 - uint(k)
		}
		out |= uint64(r) << uint(shift)
	}
	return out
}

// Below returns a uniform integer in [0, bound) by rejection sampling on the
// bit length of bound. Below(0) is 0.
func (mt *MT) Below(bound int) int {
	if bound <= 0 {
		return 0
	}
	k := bits.Len64(uint64(bound))
	r := mt.Bits(k)
	for r >= uint64(bound) {
		r = mt.Bits(k)
	}
	return int(r)
}

// IntRange returns a uniform integer in the closed interval [lo, hi].
func (mt *MT) IntRange(lo, hi int) int {
	return lo + mt.Below(hi-lo+1)
}

// Shuffle performs a Fisher-Yates shuffle of size elements, walking from the
// last index down to 1.
func (mt *MT) Shuffle(size int, swap func(i, j int)) {
	for i := size - 1; i > 0; i-- {
		swap(i, mt.Below(i+1))
	}
}
