package draw

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorteio/api/internal/rng"
)

// scriptedRNG replays fixed values, reduced modulo n, and records every bound
// it was asked for.
type scriptedRNG struct {
	values []int
	next   int
	bounds []int
}

func (s *scriptedRNG) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// lastRNG always picks the highest index, which leaves a Fisher-Yates
// shuffle as the identity.
type lastRNG struct{}

func (lastRNG) IntN(n int) int { return n - 1 }

func seeded() *rng.Rand { return rng.New(20240601) }

func TestSampleNamesWithoutRepetition(t *testing.T) {
	source := []string{"Ana", "Bruno", "Carla", "Diego", "Eva"}

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"single", 1, 1},
		{"partial", 3, 3},
		{"exact", 5, 5},
		{"truncated to pool", 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleNames(seeded(), source, Config{Quantity: tt.quantity})
			require.Len(t, got, tt.want)

			seen := make(map[string]bool)
			for _, name := range got {
				assert.Contains(t, source, name)
				assert.False(t, seen[name], "duplicate %q", name)
				seen[name] = true
			}
		})
	}
}

func TestSampleNamesDoesNotModifySource(t *testing.T) {
	source := []string{"a", "b", "c", "d"}
	original := slices.Clone(source)

	SampleNames(seeded(), source, Config{Quantity: 4})

	assert.Equal(t, original, source)
}

func TestSampleNamesShuffleOrder(t *testing.T) {
	// Bounds 3,2,1 with picks 0,0,0: swap(3,0), swap(2,0), swap(1,0).
	r := &scriptedRNG{values: []int{0}}
	got := SampleNames(r, []string{"a", "b", "c", "d"}, Config{Quantity: 4})

	assert.Equal(t, []int{4, 3, 2}, r.bounds)
	assert.Equal(t, []string{"b", "c", "d", "a"}, got)
}

func TestSampleNamesWithRepetition(t *testing.T) {
	source := []string{"x", "y"}
	r := &scriptedRNG{values: []int{1, 1, 0, 1}}

	got := SampleNames(r, source, Config{AllowRepetition: true, Quantity: 4})

	assert.Equal(t, []string{"y", "y", "x", "y"}, got)
	assert.Equal(t, []int{2, 2, 2, 2}, r.bounds)
}

func TestSampleNamesRepetitionExceedsPool(t *testing.T) {
	got := SampleNames(seeded(), []string{"solo"}, Config{AllowRepetition: true, Quantity: 6})

	assert.Equal(t, []string{"solo", "solo", "solo", "solo", "solo", "solo"}, got)
}

func TestSampleNamesDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		source []string
		cfg    Config
	}{
		{"empty source", nil, Config{Quantity: 3}},
		{"empty source with repetition", []string{}, Config{Quantity: 3, AllowRepetition: true}},
		{"zero quantity", []string{"a"}, Config{Quantity: 0}},
		{"negative quantity", []string{"a"}, Config{Quantity: -2, AllowRepetition: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleNames(seeded(), tt.source, tt.cfg)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSampleNamesUniformity(t *testing.T) {
	source := []string{"a", "b", "c", "d", "e"}
	const trials = 20000
	const quantity = 2

	r := seeded()
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		for _, name := range SampleNames(r, source, Config{Quantity: quantity}) {
			counts[name]++
		}
	}

	expected := float64(trials) * quantity / float64(len(source))
	for _, name := range source {
		assert.InDelta(t, expected, float64(counts[name]), expected*0.05, "frequency of %q", name)
	}
}

func TestSampleNamesPositionUniformity(t *testing.T) {
	source := []string{"a", "b", "c"}
	const trials = 15000

	r := seeded()
	first := make(map[string]int)
	for i := 0; i < trials; i++ {
		first[SampleNames(r, source, Config{Quantity: 3})[0]]++
	}

	expected := float64(trials) / 3
	for _, name := range source {
		assert.InDelta(t, expected, float64(first[name]), expected*0.06, "first position %q", name)
	}
}

func TestSampleNumbersWithoutRepetition(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"small range", Config{MinValue: 1, MaxValue: 10, Quantity: 4}},
		{"whole range", Config{MinValue: 1, MaxValue: 6, Quantity: 6}},
		{"negative bounds", Config{MinValue: -5, MaxValue: 5, Quantity: 11}},
		{"single value", Config{MinValue: 7, MaxValue: 7, Quantity: 1}},
		{"huge range", Config{MinValue: 1, MaxValue: 1 << 40, Quantity: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleNumbers(seeded(), tt.cfg)
			require.Len(t, got, tt.cfg.Quantity)

			seen := make(map[int]bool)
			for _, v := range got {
				assert.GreaterOrEqual(t, v, tt.cfg.MinValue)
				assert.LessOrEqual(t, v, tt.cfg.MaxValue)
				assert.False(t, seen[v], "duplicate %d", v)
				seen[v] = true
			}
		})
	}
}

func TestSampleNumbersWholeRangeIsPermutation(t *testing.T) {
	got := SampleNumbers(seeded(), Config{MinValue: 3, MaxValue: 12, Quantity: 10})

	slices.Sort(got)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
}

func TestSampleNumbersInsufficientRange(t *testing.T) {
	got := SampleNumbers(seeded(), Config{MinValue: 1, MaxValue: 5, Quantity: 10})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSampleNumbersWithRepetition(t *testing.T) {
	got := SampleNumbers(seeded(), Config{MinValue: 1, MaxValue: 3, Quantity: 5, AllowRepetition: true})

	require.Len(t, got, 5)
	for _, v := range got {
		assert.Contains(t, []int{1, 2, 3}, v)
	}
}

func TestSampleNumbersRepetitionIgnoresRangeSize(t *testing.T) {
	got := SampleNumbers(seeded(), Config{MinValue: 4, MaxValue: 4, Quantity: 3, AllowRepetition: true})

	assert.Equal(t, []int{4, 4, 4}, got)
}

func TestSampleNumbersSelectionOrder(t *testing.T) {
	// Forward swaps over [10, 15): pick 4 then 0 then 2.
	r := &scriptedRNG{values: []int{4, 0, 2}}
	got := SampleNumbers(r, Config{MinValue: 10, MaxValue: 14, Quantity: 3})

	assert.Equal(t, []int{5, 4, 3}, r.bounds)
	// i=0 takes index 4 (14) and parks 10 at 4.
	// i=1 takes index 1 (11).
	// i=2 takes index 4 (10).
	assert.Equal(t, []int{14, 11, 10}, got)
}

func TestSampleNumbersDegenerate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"inverted range", Config{MinValue: 10, MaxValue: 1, Quantity: 1}},
		{"inverted range with repetition", Config{MinValue: 10, MaxValue: 1, Quantity: 1, AllowRepetition: true}},
		{"zero quantity", Config{MinValue: 1, MaxValue: 10}},
		{"negative quantity", Config{MinValue: 1, MaxValue: 10, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleNumbers(seeded(), tt.cfg)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSampleNumbersUniformity(t *testing.T) {
	const trials = 12000

	r := seeded()
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		for _, v := range SampleNumbers(r, Config{MinValue: 1, MaxValue: 6, Quantity: 3}) {
			counts[v]++
		}
	}

	expected := float64(trials) * 3 / 6
	for v := 1; v <= 6; v++ {
		assert.InDelta(t, expected, float64(counts[v]), expected*0.05, "frequency of %d", v)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     int
	}{
		{"single", 5, 5, 1},
		{"positive", 1, 100, 100},
		{"crossing zero", -3, 3, 7},
		{"inverted", 2, 1, 0},
		{"overflow", -1 << 62, 1 << 62, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Span(tt.min, tt.max))
		})
	}
}
