package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

func codecCube(t *testing.T) *Cube {
	t.Helper()
	c, err := New(
		[]Dimension{dim("A", "a0", "a1"), dim("B", "b0", "b1", "b2"), dim("C", "c0", "c1", "c2", "c3")},
		Axes{Horizontal: []string{"A", "B", "C"}},
		nil,
	)
	require.NoError(t, err)
	return c
}

func TestCombos(t *testing.T) {
	c := codecCube(t)
	assert.Equal(t, 1, c.Combos(nil))
	assert.Equal(t, 3, c.Combos([]string{"B"}))
	assert.Equal(t, 24, c.Combos([]string{"A", "B", "C"}))
	assert.Equal(t, 24, c.Width())
	assert.Equal(t, 1, c.Height())
}

func TestFoldLastDimensionLeastSignificant(t *testing.T) {
	c := codecCube(t)
	dims := []string{"A", "B", "C"}

	assert.Equal(t, Coordinate{"A": 0, "B": 0, "C": 0}, c.Fold(dims, 0))
	assert.Equal(t, Coordinate{"A": 0, "B": 0, "C": 1}, c.Fold(dims, 1))
	assert.Equal(t, Coordinate{"A": 0, "B": 1, "C": 1}, c.Fold(dims, 5))
	assert.Equal(t, Coordinate{"A": 1, "B": 2, "C": 3}, c.Fold(dims, 23))
	assert.Equal(t, Coordinate{}, c.Fold(nil, 0))
}

func TestFoldUnfoldRoundTrip(t *testing.T) {
	c := codecCube(t)
	for _, dims := range [][]string{
		nil,
		{"B"},
		{"C", "A"},
		{"A", "B", "C"},
		{"C", "B", "A"},
	} {
		for i := 0; i < c.Combos(dims); i++ {
			coord := c.Fold(dims, i)
			got, err := c.Unfold(dims, coord)
			require.NoError(t, err)
			assert.Equal(t, i, got, "dims %v", dims)
		}
	}
}

func TestUnfoldIgnoresExtraDimensions(t *testing.T) {
	c := codecCube(t)
	got, err := c.Unfold([]string{"B"}, Coordinate{"A": 1, "B": 2, "C": 3})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestUnfoldMissingDimension(t *testing.T) {
	c := codecCube(t)
	_, err := c.Unfold([]string{"A", "B"}, Coordinate{"A": 1})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedDomain))
}
