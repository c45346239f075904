// Package coin provides random-bit sources for casting lines.
package coin

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Crypto draws fair coin tosses from crypto/rand, one byte per eight tosses.
// The zero value is ready to use. A Crypto must not be shared between
// goroutines.
type Crypto struct {
	buf  byte
	left int
}

// Flip returns one toss. It panics if the system random source fails, since
// no casting can proceed without entropy.
func (c *Crypto) Flip() bool {
	if c.left == 0 {
		var b [1]byte
		if _, err := crand.Read(b[:]); err != nil {
			panic(fmt.Sprintf("coin: read random byte: %v", err))
		}
		c.buf = b[0]
		c.left = 8
	}
	v := c.buf&1 == 1
	c.buf >>= 1
	c.left--
	return v
}

// Seeded is a deterministic source: identical seeds produce identical tosses.
type Seeded struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeeded returns a deterministic source seeded with seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Flip returns one toss.
func (s *Seeded) Flip() bool { return s.rng.IntN(2) == 1 }

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() uint64 { return s.seed }

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
