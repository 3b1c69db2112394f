package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// diceCube is A{2} x B{2} across and C{2} down with no rules.
func diceCube(t *testing.T) *Cube {
	t.Helper()
	c, err := New(
		[]Dimension{dim("A", "a0", "a1"), dim("B", "b0", "b1"), dim("C", "c0", "c1")},
		Axes{Horizontal: []string{"A", "B"}, Vertical: []string{"C"}},
		nil,
	)
	require.NoError(t, err)
	return c
}

func TestSplit(t *testing.T) {
	c := diceCube(t)
	got, err := c.Split(Coordinate{"A": 1}, "C")
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{"A": 1, "C": 0}, {"A": 1, "C": 1}}, got)

	_, err = c.Split(Coordinate{"A": 1}, "A")
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedDomain))

	_, err = c.Split(Coordinate{}, "Z")
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedDomain))
}

func TestDiceOrder(t *testing.T) {
	c := diceCube(t)
	got, err := c.Dice(Coordinate{}, Coordinate{"A": 1, "C": 0})
	require.NoError(t, err)
	// A is cut first (horizontal before vertical), then C inside A=1.
	assert.Equal(t, []Coordinate{
		{"A": 0},
		{"A": 1, "C": 0},
		{"A": 1, "C": 1},
	}, got)
}

func TestDiceStopsWhenDisjointOrContained(t *testing.T) {
	c := diceCube(t)

	got, err := c.Dice(Coordinate{"A": 0}, Coordinate{"A": 1, "B": 0})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{"A": 0}}, got)

	got, err = c.Dice(Coordinate{"A": 1, "B": 0, "C": 1}, Coordinate{"A": 1})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{"A": 1, "B": 0, "C": 1}}, got)

	got, err = c.Dice(Coordinate{}, Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{}}, got)
}

func TestDicePiecesAreDisjointOrContained(t *testing.T) {
	c := diceCube(t)
	knife := Coordinate{"B": 1, "C": 0}
	pieces, err := c.Dice(Coordinate{"A": 0}, knife)
	require.NoError(t, err)
	for _, p := range pieces {
		assert.True(t, Disjoint(p, knife) != Contained(p, knife), "piece %s", p)
	}
}

func TestMultidiceFirstMatch(t *testing.T) {
	c := diceCube(t)
	knives := []Coordinate{{"A": 0}, {"C": 1}, {}}
	pieces, err := c.Multidice(Coordinate{}, knives)
	require.NoError(t, err)

	assert.Equal(t, []Piece{
		{Subspace: Coordinate{"A": 0}, Rule: 0},
		{Subspace: Coordinate{"A": 1, "C": 1}, Rule: 1},
		{Subspace: Coordinate{"A": 1, "C": 0}, Rule: 2},
	}, pieces)
}

func TestMultidiceUnclaimedRegion(t *testing.T) {
	c := diceCube(t)
	_, err := c.Multidice(Coordinate{}, []Coordinate{{"A": 0}})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeUnresolvedCell))
	assert.Contains(t, err.Error(), "{A=1}")
}

func TestSeparate(t *testing.T) {
	c := diceCube(t)
	h := []string{"A", "B"}

	got, err := c.Separate(Coordinate{"B": 1}, h)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{"A": 0, "B": 1}, {"A": 1, "B": 1}}, got)

	// Already a prefix: nothing to split.
	got, err = c.Separate(Coordinate{"A": 1}, h)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{"A": 1}}, got)

	got, err = c.Separate(Coordinate{}, h)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{}}, got)
}

func TestInterval(t *testing.T) {
	c := diceCube(t)
	h := []string{"A", "B"}

	tests := []struct {
		name       string
		s          Coordinate
		start, end int
	}{
		{"whole axis", Coordinate{}, 0, 4},
		{"first half", Coordinate{"A": 0}, 0, 2},
		{"second half", Coordinate{"A": 1}, 2, 4},
		{"single cell", Coordinate{"A": 1, "B": 0}, 2, 3},
		{"other axis ignored", Coordinate{"A": 1, "C": 1}, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := c.Interval(tt.s, h)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestIntervalNonContiguous(t *testing.T) {
	c := diceCube(t)
	_, _, err := c.Interval(Coordinate{"B": 1}, []string{"A", "B"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeNonContiguousSubspace))
}

func TestIntervalSizeOneDimensionIsContiguous(t *testing.T) {
	c, err := New(
		[]Dimension{dim("U", "only"), dim("B", "b0", "b1")},
		Axes{Horizontal: []string{"U", "B"}},
		nil,
	)
	require.NoError(t, err)

	start, end, err := c.Interval(Coordinate{"B": 1}, []string{"U", "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)
}

func TestSeparateThenIntervalAgreesWithUnfold(t *testing.T) {
	c := diceCube(t)
	h := []string{"A", "B"}
	parts, err := c.Separate(Coordinate{"B": 0}, h)
	require.NoError(t, err)

	var starts []int
	for _, p := range parts {
		start, end, err := c.Interval(p, h)
		require.NoError(t, err)
		assert.Equal(t, 1, end-start)
		idx, err := c.Unfold(h, p)
		require.NoError(t, err)
		assert.Equal(t, idx, start)
		starts = append(starts, start)
	}
	assert.Equal(t, []int{0, 2}, starts)
}
