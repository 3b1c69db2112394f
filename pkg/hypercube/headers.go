package hypercube

// HeaderCell is one value label spanning Span consecutive grid positions
// along an axis, starting at Start.
type HeaderCell struct {
	Start int
	Span  int
	Value Value
}

// HeaderBand is the header row (horizontal axis) or column (vertical axis) of
// one dimension. Level is the dimension's precedence position on its axis.
type HeaderBand struct {
	Level     int
	Dimension string
	Cells     []HeaderCell
}

// Headers returns the header bands of an axis in precedence order. The band
// of the dimension at level i repeats its values once for every combination
// of the more significant dimensions, each value spanning the combinations of
// the less significant ones.
func (c *Cube) Headers(a Axis) []HeaderBand {
	dims := c.axes.Horizontal
	if a == Vertical {
		dims = c.axes.Vertical
	}

	bands := make([]HeaderBand, len(dims))
	for i, name := range dims {
		d := c.dims[name]
		span := c.Combos(dims[i+1:])
		block := c.Combos(dims[i:])
		copies := c.Combos(dims[:i])

		cells := make([]HeaderCell, 0, copies*d.Size())
		for k := 0; k < copies; k++ {
			for j, v := range d.Values {
				cells = append(cells, HeaderCell{Start: k*block + j*span, Span: span, Value: v})
			}
		}
		bands[i] = HeaderBand{Level: i, Dimension: name, Cells: cells}
	}
	return bands
}
