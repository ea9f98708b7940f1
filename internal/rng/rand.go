package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces raw 64-bit pseudo-random values.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Rand is a goroutine-safe generator over a Source.
type Rand struct {
	lock sync.Mutex
	src  Source
}

// New returns a Mersenne Twister generator seeded with seed. Two generators
// created with the same seed produce the same stream.
func New(seed uint64) *Rand {
	source := prng.NewMT19937()
	source.Seed(seed)
	return &Rand{src: source}
}

// NewFromEntropy returns a generator seeded from the operating system's
// entropy pool.
func NewFromEntropy() *Rand {
	seed, err := EntropySeed()
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("rng: reading entropy: %v", err))
	}
	return New(seed)
}

// NewWithSource wraps an arbitrary source.
func NewWithSource(src Source) *Rand {
	return &Rand{src: src}
}

// EntropySeed reads a 64-bit seed from crypto/rand.
func EntropySeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	return int(r.Uint64Inclusive(uint64(n - 1)))
}

// Uint64Inclusive returns a uniform number in [0, n].
func (r *Rand) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is a power of two, so we can just mask
	//
	// Note: this also works for MaxUint64 since unsigned overflow wraps.
	case n&(n+1) == 0:
		return r.uint64() & n

	// n is greater than MaxUint64/2, iterate until we land in range.
	case n > math.MaxInt64:
		v := r.uint64()
		for v > n {
			v = r.uint64()
		}
		return v

	// Reject draws above the largest multiple of n+1 that fits in 63 bits so
	// the modulo stays unbiased.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

func (r *Rand) uint63() uint64 {
	return r.uint64() & math.MaxInt64
}

func (r *Rand) uint64() uint64 {
	r.lock.Lock()
	n := r.src.Uint64()
	r.lock.Unlock()
	return n
}
