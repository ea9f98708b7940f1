package draw

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorteio/api/internal/rng"
)

var errRosterDown = errors.New("roster unavailable")

// mockRoster implements Roster for testing.
type mockRoster struct {
	names       []string
	lists       map[string][]string
	shouldError bool
	listCalls   int
	nameCalls   int
}

func (m *mockRoster) NameValues(ctx context.Context) ([]string, error) {
	m.nameCalls++
	if m.shouldError {
		return nil, errRosterDown
	}
	return m.names, nil
}

func (m *mockRoster) ListValues(ctx context.Context, listID string) ([]string, error) {
	m.listCalls++
	if m.shouldError {
		return nil, errRosterDown
	}
	names, ok := m.lists[listID]
	if !ok {
		return nil, errors.New("list not found")
	}
	return names, nil
}

func newTestService(roster *mockRoster) *Service {
	return NewService(roster, rng.Fixed(7))
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestServiceDrawNames(t *testing.T) {
	roster := &mockRoster{
		names: []string{"Ana", "Bruno", "Carla"},
		lists: map[string][]string{"turma": {"Diego", "Eva"}},
	}
	svc := newTestService(roster)
	ctx := context.Background()

	t.Run("loose roster", func(t *testing.T) {
		res, err := svc.DrawNames(ctx, NamesRequest{Quantity: 2})
		require.NoError(t, err)

		assert.Equal(t, KindNames, res.Kind)
		assert.Len(t, res.Names, 2)
		assert.Equal(t, 3, res.PoolSize)
		assert.False(t, res.Truncated)
		assert.Subset(t, roster.names, res.Names)
		assert.False(t, res.DrawnAt.IsZero())
	})

	t.Run("inline names win over list", func(t *testing.T) {
		res, err := svc.DrawNames(ctx, NamesRequest{
			Source:   Source{Names: []string{"Zé"}, ListID: "turma"},
			Quantity: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Zé"}, res.Names)
	})

	t.Run("saved list", func(t *testing.T) {
		res, err := svc.DrawNames(ctx, NamesRequest{Source: Source{ListID: "turma"}, Quantity: 2})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Diego", "Eva"}, res.Names)
	})

	t.Run("truncated", func(t *testing.T) {
		res, err := svc.DrawNames(ctx, NamesRequest{Quantity: 5})
		require.NoError(t, err)

		assert.Len(t, res.Names, 3)
		assert.Equal(t, 5, res.Requested)
		assert.True(t, res.Truncated)
	})

	t.Run("repetition", func(t *testing.T) {
		res, err := svc.DrawNames(ctx, NamesRequest{Quantity: 10, AllowRepetition: true})
		require.NoError(t, err)

		assert.Len(t, res.Names, 10)
		assert.False(t, res.Truncated)
	})
}

func TestServiceDrawNamesErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		roster *mockRoster
		req    NamesRequest
		want   error
	}{
		{"zero quantity", &mockRoster{names: []string{"a"}}, NamesRequest{}, ErrInvalidQuantity},
		{"repetition cap", &mockRoster{names: []string{"a"}}, NamesRequest{Quantity: MaxRepeatedQuantity + 1, AllowRepetition: true}, ErrQuantityTooLarge},
		{"empty roster", &mockRoster{}, NamesRequest{Quantity: 1}, ErrEmptySource},
		{"roster failure", &mockRoster{shouldError: true}, NamesRequest{Quantity: 1}, errRosterDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(tt.roster).DrawNames(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServiceDrawNumbers(t *testing.T) {
	svc := newTestService(&mockRoster{})
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		res, err := svc.DrawNumbers(ctx, NumbersRequest{Quantity: 3})
		require.NoError(t, err)

		assert.Equal(t, KindNumbers, res.Kind)
		assert.Equal(t, DefaultMinValue, res.Config.MinValue)
		assert.Equal(t, DefaultMaxValue, res.Config.MaxValue)
		require.Len(t, res.Numbers, 3)
		for _, v := range res.Numbers {
			assert.GreaterOrEqual(t, v, DefaultMinValue)
			assert.LessOrEqual(t, v, DefaultMaxValue)
		}
	})

	t.Run("explicit range", func(t *testing.T) {
		res, err := svc.DrawNumbers(ctx, NumbersRequest{Quantity: 5, MinValue: intPtr(-2), MaxValue: intPtr(2)})
		require.NoError(t, err)

		got := slices.Clone(res.Numbers)
		slices.Sort(got)
		assert.Equal(t, []int{-2, -1, 0, 1, 2}, got)
	})

	t.Run("zero is a valid bound", func(t *testing.T) {
		res, err := svc.DrawNumbers(ctx, NumbersRequest{Quantity: 1, MinValue: intPtr(0), MaxValue: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, []int{0}, res.Numbers)
	})
}

func TestValidateNumbers(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", Config{Quantity: 3, MinValue: 1, MaxValue: 10}, nil},
		{"zero quantity", Config{MinValue: 1, MaxValue: 10}, ErrInvalidQuantity},
		{"inverted", Config{Quantity: 1, MinValue: 5, MaxValue: 1}, ErrInvalidRange},
		{"insufficient range", Config{Quantity: 10, MinValue: 1, MaxValue: 5}, ErrInsufficientRange},
		{"repetition ignores range", Config{Quantity: 10, MinValue: 1, MaxValue: 5, AllowRepetition: true}, nil},
		{"repetition cap", Config{Quantity: 51, MinValue: 1, MaxValue: 5, AllowRepetition: true}, ErrQuantityTooLarge},
		{"repetition at cap", Config{Quantity: 50, MinValue: 1, MaxValue: 5, AllowRepetition: true}, nil},
		{"widest range", Config{Quantity: 2*MaxBound + 1, MinValue: -MaxBound, MaxValue: MaxBound}, nil},
		{"max above bound", Config{Quantity: 1, MinValue: 1, MaxValue: MaxBound + 1}, ErrBoundOutOfRange},
		{"min below bound", Config{Quantity: 1, MinValue: -MaxBound - 1, MaxValue: 1}, ErrBoundOutOfRange},
		{"huge draw without repetition", Config{Quantity: 1_500_000_000, MinValue: 1, MaxValue: 2_000_000_000}, ErrBoundOutOfRange},
		{"extreme bounds", Config{Quantity: 1, MinValue: math.MinInt, MaxValue: math.MaxInt}, ErrBoundOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumbers(tt.cfg)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServiceDrawSequence(t *testing.T) {
	svc := newTestService(&mockRoster{})
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		res, err := svc.DrawSequence(ctx, SequenceRequest{})
		require.NoError(t, err)

		assert.Equal(t, KindSequence, res.Kind)
		assert.Len(t, res.Numbers, DefaultSequenceLength)
		assert.True(t, slices.IsSorted(res.Numbers))
		assert.Equal(t, DefaultSequenceLength, res.Config.Quantity)
	})

	t.Run("lottery style", func(t *testing.T) {
		res, err := svc.DrawSequence(ctx, SequenceRequest{SequenceLength: intPtr(6), MinValue: intPtr(1), MaxValue: intPtr(60)})
		require.NoError(t, err)

		assert.Len(t, res.Numbers, 6)
		assert.True(t, slices.IsSorted(res.Numbers))
		assert.Len(t, slices.Compact(slices.Clone(res.Numbers)), 6)
	})

	t.Run("insufficient range", func(t *testing.T) {
		_, err := svc.DrawSequence(ctx, SequenceRequest{SequenceLength: intPtr(10), MinValue: intPtr(1), MaxValue: intPtr(5)})
		assert.ErrorIs(t, err, ErrInsufficientRange)
	})

	t.Run("explicit zero length", func(t *testing.T) {
		_, err := svc.DrawSequence(ctx, SequenceRequest{SequenceLength: intPtr(0)})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestServiceDrawGroups(t *testing.T) {
	roster := &mockRoster{names: participants(5)}
	svc := newTestService(roster)
	ctx := context.Background()

	t.Run("defaults to round-robin", func(t *testing.T) {
		res, err := svc.DrawGroups(ctx, GroupsRequest{MembersPerGroup: 2})
		require.NoError(t, err)

		assert.Equal(t, KindGroups, res.Kind)
		assert.True(t, res.DistributeEvenly)
		assert.Equal(t, []int{2, 2, 1}, sizes(res.Groups))
		assert.Equal(t, 3, res.Plan.TotalGroups)
		assert.Equal(t, 1, res.Plan.Remainder)
		assert.False(t, res.Plan.PerfectDivision)
	})

	t.Run("sequential fill", func(t *testing.T) {
		res, err := svc.DrawGroups(ctx, GroupsRequest{
			Source:           Source{Names: participants(10)},
			MembersPerGroup:  4,
			DistributeEvenly: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, []int{4, 4, 2}, sizes(res.Groups))
	})

	t.Run("empty roster yields no groups", func(t *testing.T) {
		res, err := newTestService(&mockRoster{}).DrawGroups(ctx, GroupsRequest{MembersPerGroup: 3})
		require.NoError(t, err)
		assert.Empty(t, res.Groups)
		assert.Zero(t, res.Plan.TotalGroups)
	})

	t.Run("group size beyond participants", func(t *testing.T) {
		res, err := svc.DrawGroups(ctx, GroupsRequest{MembersPerGroup: math.MaxInt - 2})
		require.NoError(t, err)
		require.Len(t, res.Groups, 1)
		assert.ElementsMatch(t, roster.names, res.Groups[0])
		assert.Equal(t, 1, res.Plan.TotalGroups)
	})

	t.Run("invalid group size", func(t *testing.T) {
		_, err := svc.DrawGroups(ctx, GroupsRequest{MembersPerGroup: 0})
		assert.ErrorIs(t, err, ErrInvalidGroupSize)
	})

	t.Run("roster failure", func(t *testing.T) {
		_, err := newTestService(&mockRoster{shouldError: true}).DrawGroups(ctx, GroupsRequest{
			Source:          Source{ListID: "missing"},
			MembersPerGroup: 2,
		})
		assert.ErrorIs(t, err, errRosterDown)
	})
}

func TestServiceDrawWeighted(t *testing.T) {
	svc := newTestService(&mockRoster{})
	ctx := context.Background()

	res, err := svc.DrawWeighted(ctx, WeightedRequest{Entries: []Entry{{Name: "a", Weight: 3}, {Name: "b", Weight: 0}}})
	require.NoError(t, err)
	assert.Equal(t, KindWeighted, res.Kind)
	assert.Equal(t, 4, res.TotalWeight)
	assert.Contains(t, []string{"a", "b"}, res.Winner.Name)

	_, err = svc.DrawWeighted(ctx, WeightedRequest{Entries: []Entry{{Name: "solo", Weight: 1}}})
	assert.ErrorIs(t, err, ErrTooFewParticipants)

	_, err = svc.DrawWeighted(ctx, WeightedRequest{Entries: []Entry{{Name: "a", Weight: math.MaxInt}, {Name: "b", Weight: 5}}})
	assert.ErrorIs(t, err, ErrWeightTooLarge)

	res, err = svc.DrawWeighted(ctx, WeightedRequest{Entries: []Entry{{Name: "a", Weight: MaxWeight}, {Name: "b", Weight: MaxWeight}}})
	require.NoError(t, err)
	assert.Equal(t, 2*MaxWeight, res.TotalWeight)
}

func TestServiceDrawElimination(t *testing.T) {
	svc := newTestService(&mockRoster{names: []string{"a", "b", "c", "d"}})
	ctx := context.Background()

	res, err := svc.DrawElimination(ctx, EliminationRequest{})
	require.NoError(t, err)
	assert.Equal(t, KindElimination, res.Kind)
	assert.Len(t, res.Eliminated, 3)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, append(slices.Clone(res.Eliminated), res.Winner))

	_, err = svc.DrawElimination(ctx, EliminationRequest{Source: Source{Names: []string{"solo"}}})
	assert.ErrorIs(t, err, ErrTooFewParticipants)
}
