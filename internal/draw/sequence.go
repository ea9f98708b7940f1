package draw

import "slices"

// GenerateSequence samples exactly like SampleNumbers and returns the values
// in ascending order.
func GenerateSequence(r RNG, cfg SequenceConfig) []int {
	values := SampleNumbers(r, cfg.numbers())
	slices.Sort(values)
	return values
}
