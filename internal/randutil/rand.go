// Package randutil builds the seeded random sources used for dealing.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two sources
// built from the same seed deal identical rounds.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged when it is non-zero, otherwise a fresh
// random seed. Zero means "not configured" throughout the CLI.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return int64(rand.Uint64())
	}
	s := int64(binary.LittleEndian.Uint64(b[:]))
	if s == 0 {
		s = 1
	}
	return s
}

// Derive returns the seed for the n-th stream under base, so independent
// rounds or workers never share a sequence.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
