// Package engine provides the random streams that drive duel simulation.
//
// Streams are always passed explicitly; nothing in this module touches the
// global math/rand state, so concurrent simulations never contend on a
// shared generator and tests can substitute a scripted Source.
package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniform random integers. It is the subset of *rand.Rand the
// duel resolver consumes, kept as an interface so tests can inject
// deterministic rolls.
type Source interface {
	Intn(n int) int
}

// New returns a stream seeded with the given value. Two streams built from
// the same seed produce identical draw sequences.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a master seed from crypto/rand, used when the caller
// does not supply one.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// DeriveSeeds expands a master seed into n worker seeds. The expansion is
// itself a seeded stream, so a fixed master seed and worker count always
// yield the same per-worker sub-streams.
func DeriveSeeds(master int64, n int) []int64 {
	src := New(master)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = src.Int63()
	}
	return seeds
}
