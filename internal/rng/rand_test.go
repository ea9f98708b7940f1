package rng

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays fixed values.
type sequenceSource struct {
	values []uint64
	idx    int
}

func (s *sequenceSource) Uint64() uint64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func TestNew_SameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000), "draw %d", i)
	}
}

func TestNew_DifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 50; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 50)
}

func TestIntN_Bounds(t *testing.T) {
	r := New(7)

	tests := []struct {
		name string
		n    int
	}{
		{name: "one", n: 1},
		{name: "power of two", n: 8},
		{name: "odd", n: 7},
		{name: "large", n: 1_000_003},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				v := r.IntN(tt.n)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, tt.n)
			}
		})
	}
}

func TestIntN_PanicsOnNonPositive(t *testing.T) {
	r := New(1)
	assert.Panics(t, func() { r.IntN(0) })
	assert.Panics(t, func() { r.IntN(-3) })
}

func TestUint64Inclusive_MaskPath(t *testing.T) {
	r := NewWithSource(&sequenceSource{values: []uint64{0xFF}})
	assert.Equal(t, uint64(7), r.Uint64Inclusive(7))
}

func TestUint64Inclusive_RejectsAboveMaximum(t *testing.T) {
	// n = 2: values above the largest multiple of 3 below 2^63 are rejected.
	src := &sequenceSource{values: []uint64{math.MaxInt64, 5}}
	r := NewWithSource(src)

	assert.Equal(t, uint64(2), r.Uint64Inclusive(2))
	assert.Equal(t, 2, src.idx)
}

func TestUint64Inclusive_FullRange(t *testing.T) {
	r := NewWithSource(&sequenceSource{values: []uint64{math.MaxUint64}})
	assert.Equal(t, uint64(math.MaxUint64), r.Uint64Inclusive(math.MaxUint64))
}

func TestRand_ConcurrentUse(t *testing.T) {
	r := New(99)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := r.IntN(10)
				if v < 0 || v >= 10 {
					t.Errorf("out of range: %d", v)
				}
			}
		}()
	}
	wg.Wait()
}

func TestFactories(t *testing.T) {
	fixed := Fixed(5)
	assert.Same(t, fixed(), fixed())

	fresh := Fresh()
	assert.NotSame(t, fresh(), fresh())
}

func TestEntropySeed(t *testing.T) {
	_, err := EntropySeed()
	require.NoError(t, err)
}
