package draw

import "slices"

// Entry is a raffle participant. Weight counts as that many tickets.
type Entry struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Elimination is the outcome of an elimination raffle.
type Elimination struct {
	// Eliminated lists participants in the order they were knocked out.
	Eliminated []string `json:"eliminated"`
	Winner     string   `json:"winner"`
}

// MaxWeight is the most tickets a single raffle entry can hold.
const MaxWeight = 1_000_000

// Tickets returns how many tickets an entry holds: its weight clamped to
// [1, MaxWeight].
func (e Entry) Tickets() int {
	return min(max(e.Weight, 1), MaxWeight)
}

// WeightedPick returns the index of the winning entry, chosen with
// probability proportional to its tickets. It returns -1 when entries is
// empty.
func WeightedPick(r RNG, entries []Entry) int {
	if len(entries) == 0 {
		return -1
	}

	total := 0
	for _, e := range entries {
		total += e.Tickets()
	}

	ticket := r.IntN(total)
	for i, e := range entries {
		w := e.Tickets()
		if ticket < w {
			return i
		}
		ticket -= w
	}
	return len(entries) - 1
}

// Eliminate knocks out one uniformly chosen participant at a time until a
// single winner remains. An empty input has no winner.
func Eliminate(r RNG, participants []string) Elimination {
	remaining := slices.Clone(participants)
	result := Elimination{Eliminated: make([]string, 0, max(len(remaining)-1, 0))}
	if len(remaining) == 0 {
		return result
	}

	for len(remaining) > 1 {
		i := r.IntN(len(remaining))
		result.Eliminated = append(result.Eliminated, remaining[i])
		remaining = slices.Delete(remaining, i, i+1)
	}
	result.Winner = remaining[0]
	return result
}
