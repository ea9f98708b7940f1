package draw

// shuffled returns a uniformly permuted copy of values. The input is never
// modified.
func shuffled[T any](r RNG, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)

	// Fisher-Yates, walking down from the last index.
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SampleNames draws cfg.Quantity names from source in selection order.
//
// Without repetition the result is the prefix of a uniform permutation of
// source, silently truncated to len(source) when the quantity is larger.
// With repetition every pick is an independent uniform index into source.
// An empty source or a non-positive quantity yields an empty result.
func SampleNames(r RNG, source []string, cfg Config) []string {
	if len(source) == 0 || cfg.Quantity <= 0 {
		return []string{}
	}

	if !cfg.AllowRepetition {
		perm := shuffled(r, source)
		return perm[:min(cfg.Quantity, len(perm))]
	}

	results := make([]string, cfg.Quantity)
	for i := range results {
		results[i] = source[r.IntN(len(source))]
	}
	return results
}

// SampleNumbers draws cfg.Quantity integers from [cfg.MinValue, cfg.MaxValue]
// in selection order.
//
// Unlike SampleNames, a draw without repetition that asks for more values
// than the range holds returns an empty result instead of truncating.
func SampleNumbers(r RNG, cfg Config) []int {
	span := Span(cfg.MinValue, cfg.MaxValue)
	if span == 0 || cfg.Quantity <= 0 {
		return []int{}
	}

	if !cfg.AllowRepetition {
		if cfg.Quantity > span {
			return []int{}
		}
		return permutePrefix(r, cfg.MinValue, span, cfg.Quantity)
	}

	results := make([]int, cfg.Quantity)
	for i := range results {
		results[i] = cfg.MinValue + r.IntN(span)
	}
	return results
}

// permutePrefix returns the first count elements of a uniform permutation of
// [base, base+span). It runs a forward Fisher-Yates over a virtual array and
// only materialises the positions it swaps, so memory is O(count) even when
// span is huge.
func permutePrefix(r RNG, base, span, count int) []int {
	swapped := make(map[int]int, count)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return base + i
	}

	results := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + r.IntN(span-i)
		results[i] = at(j)
		swapped[j] = at(i)
	}
	return results
}
