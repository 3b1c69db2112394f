package hypercube

import (
	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Combos returns the number of value combinations of dims: the product of
// their sizes, 1 for an empty list.
func (c *Cube) Combos(dims []string) int {
	n := 1
	for _, d := range dims {
		n *= c.size(d)
	}
	return n
}

// Width returns the number of grid columns.
func (c *Cube) Width() int { return c.Combos(c.axes.Horizontal) }

// Height returns the number of grid rows.
func (c *Cube) Height() int { return c.Combos(c.axes.Vertical) }

// Fold decodes a linear index into a coordinate over dims. The last dimension
// is the least significant digit. idx must lie in [0, Combos(dims)).
func (c *Cube) Fold(dims []string, idx int) Coordinate {
	out := make(Coordinate, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		n := c.size(dims[i])
		out[dims[i]] = idx % n
		idx /= n
	}
	return out
}

// Unfold is the inverse of Fold. Every dimension of dims must be fixed in
// coord; dimensions of coord outside dims are ignored.
func (c *Cube) Unfold(dims []string, coord Coordinate) (int, error) {
	idx := 0
	for _, d := range dims {
		v, ok := coord[d]
		if !ok {
			return 0, errs.New(errs.ErrCodeMalformedDomain, "unfold %v: %s does not fix %q", dims, coord, d)
		}
		idx = idx*c.size(d) + v
	}
	return idx, nil
}
