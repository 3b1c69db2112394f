package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	c := scenarioCube(t)

	h := c.Headers(Horizontal)
	require.Len(t, h, 2)

	assert.Equal(t, "A", h[0].Dimension)
	assert.Equal(t, 0, h[0].Level)
	assert.Equal(t, []HeaderCell{
		{Start: 0, Span: 2, Value: Value{Label: "a0"}},
		{Start: 2, Span: 2, Value: Value{Label: "a1"}},
	}, h[0].Cells)

	assert.Equal(t, "B", h[1].Dimension)
	assert.Equal(t, []HeaderCell{
		{Start: 0, Span: 1, Value: Value{Label: "b0"}},
		{Start: 1, Span: 1, Value: Value{Label: "b1"}},
		{Start: 2, Span: 1, Value: Value{Label: "b0"}},
		{Start: 3, Span: 1, Value: Value{Label: "b1"}},
	}, h[1].Cells)

	v := c.Headers(Vertical)
	require.Len(t, v, 1)
	assert.Equal(t, []HeaderCell{{Start: 0, Span: 1, Value: Value{Label: "c0"}}}, v[0].Cells)
}

func TestHeadersCoverAxisOncePerLevel(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		c := randomCube(t, seed)
		for _, axis := range []Axis{Horizontal, Vertical} {
			n := c.Combos(c.AxisDims(axis))
			for _, band := range c.Headers(axis) {
				next := 0
				for _, cell := range band.Cells {
					assert.Equal(t, next, cell.Start, "seed %d %s level %d", seed, axis, band.Level)
					next += cell.Span
				}
				assert.Equal(t, n, next)
			}
		}
	}
}
