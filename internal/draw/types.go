package draw

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// Kind identifies what a draw produces.
type Kind string

const (
	KindNames    Kind = "names"
	KindNumbers  Kind = "numbers"
	KindSequence Kind = "sequence"
	KindGroups   Kind = "groups"

	KindWeighted    Kind = "weighted"
	KindElimination Kind = "elimination"
)

// Defaults applied by the service layer when a request omits a value.
const (
	DefaultMinValue       = 1
	DefaultMaxValue       = 100
	DefaultSequenceLength = 5

	// MaxRepeatedQuantity caps draws with repetition, where the pool size
	// does not bound the result.
	MaxRepeatedQuantity = 50

	// MaxBound limits both ends of a number range, so a draw without
	// repetition never exceeds 2*MaxBound+1 values.
	MaxBound = 9999
)

// Config configures a name or number draw.
type Config struct {
	AllowRepetition bool `json:"allow_repetition"`
	Quantity        int  `json:"quantity"`
	MinValue        int  `json:"min_value"`
	MaxValue        int  `json:"max_value"`
}

// SequenceConfig configures a sorted sequence draw.
type SequenceConfig struct {
	AllowRepetition bool `json:"allow_repetition"`
	SequenceLength  int  `json:"sequence_length"`
	MinValue        int  `json:"min_value"`
	MaxValue        int  `json:"max_value"`
}

// numbers maps a sequence configuration onto the shared number sampler.
func (c SequenceConfig) numbers() Config {
	return Config{
		AllowRepetition: c.AllowRepetition,
		Quantity:        c.SequenceLength,
		MinValue:        c.MinValue,
		MaxValue:        c.MaxValue,
	}
}

// GroupConfig configures a group partition.
type GroupConfig struct {
	MembersPerGroup  int  `json:"members_per_group"`
	DistributeEvenly bool `json:"distribute_evenly"`
}

// GroupPlan describes how a participant count divides into groups.
type GroupPlan struct {
	Participants    int  `json:"participants"`
	MembersPerGroup int  `json:"members_per_group"`
	TotalGroups     int  `json:"total_groups"`
	Remainder       int  `json:"remainder"`
	PerfectDivision bool `json:"perfect_division"`
}

// Span returns the inclusive count of integers in [min, max], or zero when
// the bounds are inverted or the count does not fit in an int.
func Span(minValue, maxValue int) int {
	if minValue > maxValue {
		return 0
	}
	span := maxValue - minValue + 1
	if span <= 0 {
		return 0
	}
	return span
}
