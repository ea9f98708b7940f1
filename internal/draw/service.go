package draw

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sorteio/api/internal/rng"
)

// Roster supplies the names a draw can be taken from.
type Roster interface {
	// NameValues returns the loose names in insertion order.
	NameValues(ctx context.Context) ([]string, error)
	// ListValues returns the names stored in a saved list.
	ListValues(ctx context.Context, listID string) ([]string, error)
}

// Source selects where the names of a draw come from. Inline names win over a
// list id; with neither, the loose roster is used.
type Source struct {
	Names  []string `json:"names,omitempty"`
	ListID string   `json:"list_id,omitempty"`
}

// NamesRequest asks for a name draw.
type NamesRequest struct {
	Source          Source `json:"source"`
	AllowRepetition bool   `json:"allow_repetition"`
	Quantity        int    `json:"quantity"`
}

// NumbersRequest asks for a number draw. Omitted bounds use the defaults.
type NumbersRequest struct {
	AllowRepetition bool `json:"allow_repetition"`
	Quantity        int  `json:"quantity"`
	MinValue        *int `json:"min_value,omitempty"`
	MaxValue        *int `json:"max_value,omitempty"`
}

// SequenceRequest asks for a sorted sequence. Omitted fields use the defaults.
type SequenceRequest struct {
	AllowRepetition bool `json:"allow_repetition"`
	SequenceLength  *int `json:"sequence_length,omitempty"`
	MinValue        *int `json:"min_value,omitempty"`
	MaxValue        *int `json:"max_value,omitempty"`
}

// GroupsRequest asks for a group partition. DistributeEvenly defaults to true.
type GroupsRequest struct {
	Source           Source `json:"source"`
	MembersPerGroup  int    `json:"members_per_group"`
	DistributeEvenly *bool  `json:"distribute_evenly,omitempty"`
}

// WeightedRequest asks for a single winner picked by weight.
type WeightedRequest struct {
	Entries []Entry `json:"entries"`
}

// EliminationRequest asks for an elimination raffle over a name source.
type EliminationRequest struct {
	Source Source `json:"source"`
}

// NamesResult is the outcome of a name draw.
type NamesResult struct {
	Kind      Kind      `json:"kind"`
	Names     []string  `json:"names"`
	Requested int       `json:"requested"`
	PoolSize  int       `json:"pool_size"`
	Truncated bool      `json:"truncated"`
	DrawnAt   time.Time `json:"drawn_at"`
}

// NumbersResult is the outcome of a number or sequence draw.
type NumbersResult struct {
	Kind    Kind      `json:"kind"`
	Numbers []int     `json:"numbers"`
	Config  Config    `json:"config"`
	DrawnAt time.Time `json:"drawn_at"`
}

// GroupsResult is the outcome of a group partition.
type GroupsResult struct {
	Kind             Kind       `json:"kind"`
	Groups           [][]string `json:"groups"`
	Plan             GroupPlan  `json:"plan"`
	DistributeEvenly bool       `json:"distribute_evenly"`
	DrawnAt          time.Time  `json:"drawn_at"`
}

// WeightedResult is the outcome of a weighted raffle.
type WeightedResult struct {
	Kind        Kind      `json:"kind"`
	Winner      Entry     `json:"winner"`
	TotalWeight int       `json:"total_weight"`
	DrawnAt     time.Time `json:"drawn_at"`
}

// EliminationResult is the outcome of an elimination raffle.
type EliminationResult struct {
	Kind Kind `json:"kind"`
	Elimination
	DrawnAt time.Time `json:"drawn_at"`
}

// Service validates draw requests, resolves their name source and runs the
// pure samplers with a generator from its factory.
type Service struct {
	roster Roster
	rngs   rng.Factory
}

// NewService creates a draw service.
func NewService(roster Roster, rngs rng.Factory) *Service {
	return &Service{
		roster: roster,
		rngs:   rngs,
	}
}

// DrawNames draws names from the requested source.
func (s *Service) DrawNames(ctx context.Context, req NamesRequest) (*NamesResult, error) {
	cfg := Config{AllowRepetition: req.AllowRepetition, Quantity: req.Quantity}
	if err := validateQuantity(cfg.Quantity, cfg.AllowRepetition); err != nil {
		return nil, err
	}

	source, err := s.resolve(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, ErrEmptySource
	}

	names := SampleNames(s.rngs(), source, cfg)
	log.Debug("names drawn", "pool_size", len(source), "requested", cfg.Quantity, "drawn", len(names), "allow_repetition", cfg.AllowRepetition)

	return &NamesResult{
		Kind:      KindNames,
		Names:     names,
		Requested: cfg.Quantity,
		PoolSize:  len(source),
		Truncated: len(names) < cfg.Quantity,
		DrawnAt:   time.Now(),
	}, nil
}

// DrawNumbers draws integers from an inclusive range.
func (s *Service) DrawNumbers(ctx context.Context, req NumbersRequest) (*NumbersResult, error) {
	cfg := Config{
		AllowRepetition: req.AllowRepetition,
		Quantity:        req.Quantity,
		MinValue:        valueOr(req.MinValue, DefaultMinValue),
		MaxValue:        valueOr(req.MaxValue, DefaultMaxValue),
	}
	if err := ValidateNumbers(cfg); err != nil {
		return nil, err
	}

	numbers := SampleNumbers(s.rngs(), cfg)
	log.Debug("numbers drawn", "min", cfg.MinValue, "max", cfg.MaxValue, "quantity", cfg.Quantity, "allow_repetition", cfg.AllowRepetition)

	return &NumbersResult{
		Kind:    KindNumbers,
		Numbers: numbers,
		Config:  cfg,
		DrawnAt: time.Now(),
	}, nil
}

// DrawSequence draws integers from an inclusive range, sorted ascending.
func (s *Service) DrawSequence(ctx context.Context, req SequenceRequest) (*NumbersResult, error) {
	cfg := SequenceConfig{
		AllowRepetition: req.AllowRepetition,
		SequenceLength:  valueOr(req.SequenceLength, DefaultSequenceLength),
		MinValue:        valueOr(req.MinValue, DefaultMinValue),
		MaxValue:        valueOr(req.MaxValue, DefaultMaxValue),
	}
	if err := ValidateNumbers(cfg.numbers()); err != nil {
		return nil, err
	}

	numbers := GenerateSequence(s.rngs(), cfg)
	log.Debug("sequence generated", "min", cfg.MinValue, "max", cfg.MaxValue, "length", cfg.SequenceLength, "allow_repetition", cfg.AllowRepetition)

	return &NumbersResult{
		Kind:    KindSequence,
		Numbers: numbers,
		Config:  cfg.numbers(),
		DrawnAt: time.Now(),
	}, nil
}

// DrawGroups splits the requested source into groups.
func (s *Service) DrawGroups(ctx context.Context, req GroupsRequest) (*GroupsResult, error) {
	if req.MembersPerGroup < 1 {
		return nil, ErrInvalidGroupSize
	}
	cfg := GroupConfig{
		MembersPerGroup:  req.MembersPerGroup,
		DistributeEvenly: valueOr(req.DistributeEvenly, true),
	}

	participants, err := s.resolve(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	groups := PartitionGroups(s.rngs(), participants, cfg)
	plan := PlanGroups(len(participants), cfg.MembersPerGroup)
	if !plan.PerfectDivision && plan.TotalGroups > 0 {
		log.Debug("uneven group split", "participants", plan.Participants, "members_per_group", plan.MembersPerGroup, "remainder", plan.Remainder)
	}
	log.Debug("groups drawn", "participants", len(participants), "groups", len(groups), "distribute_evenly", cfg.DistributeEvenly)

	return &GroupsResult{
		Kind:             KindGroups,
		Groups:           groups,
		Plan:             plan,
		DistributeEvenly: cfg.DistributeEvenly,
		DrawnAt:          time.Now(),
	}, nil
}

// DrawWeighted picks one entry with probability proportional to its weight.
func (s *Service) DrawWeighted(ctx context.Context, req WeightedRequest) (*WeightedResult, error) {
	if len(req.Entries) < 2 {
		return nil, ErrTooFewParticipants
	}

	total := 0
	for _, e := range req.Entries {
		if e.Weight > MaxWeight {
			return nil, ErrWeightTooLarge
		}
		total += e.Tickets()
	}

	winner := req.Entries[WeightedPick(s.rngs(), req.Entries)]
	log.Debug("weighted raffle drawn", "participants", len(req.Entries), "total_weight", total)

	return &WeightedResult{
		Kind:        KindWeighted,
		Winner:      winner,
		TotalWeight: total,
		DrawnAt:     time.Now(),
	}, nil
}

// DrawElimination knocks participants out one by one until a winner remains.
func (s *Service) DrawElimination(ctx context.Context, req EliminationRequest) (*EliminationResult, error) {
	participants, err := s.resolve(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	if len(participants) < 2 {
		return nil, ErrTooFewParticipants
	}

	result := Eliminate(s.rngs(), participants)
	log.Debug("elimination raffle drawn", "participants", len(participants))

	return &EliminationResult{
		Kind:        KindElimination,
		Elimination: result,
		DrawnAt:     time.Now(),
	}, nil
}

// ValidateNumbers checks a number draw before it runs, so the caller can
// tell the user why a draw would come back empty.
func ValidateNumbers(cfg Config) error {
	if err := validateQuantity(cfg.Quantity, cfg.AllowRepetition); err != nil {
		return err
	}
	if cfg.MinValue < -MaxBound || cfg.MaxValue > MaxBound {
		return ErrBoundOutOfRange
	}
	if cfg.MinValue > cfg.MaxValue {
		return ErrInvalidRange
	}
	if !cfg.AllowRepetition && cfg.Quantity > Span(cfg.MinValue, cfg.MaxValue) {
		return ErrInsufficientRange
	}
	return nil
}

func validateQuantity(quantity int, allowRepetition bool) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if allowRepetition && quantity > MaxRepeatedQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, src Source) ([]string, error) {
	switch {
	case len(src.Names) > 0:
		return src.Names, nil
	case src.ListID != "":
		names, err := s.roster.ListValues(ctx, src.ListID)
		if err != nil {
			return nil, fmt.Errorf("load list %s: %w", src.ListID, err)
		}
		return names, nil
	default:
		names, err := s.roster.NameValues(ctx)
		if err != nil {
			return nil, fmt.Errorf("load names: %w", err)
		}
		return names, nil
	}
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
