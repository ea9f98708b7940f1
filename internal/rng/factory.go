package rng

// Factory hands out the generator used for a single draw.
type Factory func() *Rand

// Fresh returns a factory that seeds a new generator from entropy on every
// call, so no two draws share generator state.
func Fresh() Factory {
	return NewFromEntropy
}

// Fixed returns a factory that always yields the same seeded generator.
// Successive draws continue the same stream, which makes a whole session
// reproducible from the seed.
func Fixed(seed uint64) Factory {
	shared := New(seed)
	return func() *Rand {
		return shared
	}
}
