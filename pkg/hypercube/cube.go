package hypercube

import (
	"slices"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// MaxCells bounds the body grid, Width()*Height(), of any Cube.
const MaxCells = 1 << 20

// Cube is a validated hypercube: dimensions, axis assignment and rules.
// It is read-only after [New] and safe for concurrent use.
type Cube struct {
	dims  map[string]Dimension
	order []string
	axes  Axes
	// scan is Horizontal followed by Vertical; the fixed split order of Dice.
	scan  []string
	rules []Rule
}

// New validates the inputs and builds a Cube. The slices are copied.
//
// It fails with DIMENSION_MISMATCH when a dimension name is empty or
// duplicated, a dimension has no values, or an axis names an undeclared
// dimension or repeats one, and when the grid would exceed [MaxCells]. It fails with MALFORMED_DOMAIN when a rule
// references an undeclared dimension, an out-of-range value, or a dimension
// that is on neither axis (such a rule could never match a cell).
func New(dims []Dimension, axes Axes, rules []Rule) (*Cube, error) {
	c := &Cube{
		dims:  make(map[string]Dimension, len(dims)),
		order: make([]string, 0, len(dims)),
	}
	for _, d := range dims {
		if d.Name == "" {
			return nil, errs.New(errs.ErrCodeDimensionMismatch, "dimension with empty name")
		}
		if _, dup := c.dims[d.Name]; dup {
			return nil, errs.New(errs.ErrCodeDimensionMismatch, "dimension %q declared twice", d.Name)
		}
		if d.Size() == 0 {
			return nil, errs.New(errs.ErrCodeDimensionMismatch, "dimension %q has no values", d.Name)
		}
		c.dims[d.Name] = Dimension{Name: d.Name, Values: slices.Clone(d.Values)}
		c.order = append(c.order, d.Name)
	}

	onAxis := make(map[string]Axis)
	for _, side := range []struct {
		axis  Axis
		names []string
	}{{Horizontal, axes.Horizontal}, {Vertical, axes.Vertical}} {
		for _, name := range side.names {
			if _, ok := c.dims[name]; !ok {
				return nil, errs.New(errs.ErrCodeDimensionMismatch,
					"%s axis references undeclared dimension %q", side.axis, name)
			}
			if prev, seen := onAxis[name]; seen {
				return nil, errs.New(errs.ErrCodeDimensionMismatch,
					"dimension %q appears on the %s axis and again on the %s axis", name, prev, side.axis)
			}
			onAxis[name] = side.axis
		}
	}
	c.axes = Axes{
		Horizontal: slices.Clone(axes.Horizontal),
		Vertical:   slices.Clone(axes.Vertical),
	}
	c.scan = slices.Concat(c.axes.Horizontal, c.axes.Vertical)

	width, err := c.axisCells(Horizontal, c.axes.Horizontal, MaxCells)
	if err != nil {
		return nil, err
	}
	if _, err := c.axisCells(Vertical, c.axes.Vertical, MaxCells/width); err != nil {
		return nil, err
	}

	c.rules = make([]Rule, len(rules))
	for i, r := range rules {
		for name, idx := range r.Domain {
			d, ok := c.dims[name]
			if !ok {
				return nil, errs.New(errs.ErrCodeMalformedDomain,
					"rule %d references undeclared dimension %q", i, name)
			}
			if idx < 0 || idx >= d.Size() {
				return nil, errs.New(errs.ErrCodeMalformedDomain,
					"rule %d: %s=%d out of range [0,%d)", i, name, idx, d.Size())
			}
			if _, ok := onAxis[name]; !ok {
				return nil, errs.New(errs.ErrCodeMalformedDomain,
					"rule %d constrains dimension %q which is on neither axis", i, name)
			}
		}
		c.rules[i] = Rule{Domain: r.Domain.Clone(), Payload: r.Payload}
	}
	return c, nil
}

// axisCells multiplies the sizes of dims, failing as soon as the product
// passes limit. Checking before each multiplication keeps it from overflowing.
func (c *Cube) axisCells(a Axis, dims []string, limit int) (int, error) {
	n := 1
	for _, d := range dims {
		size := c.size(d)
		if n > limit/size {
			return 0, errs.New(errs.ErrCodeDimensionMismatch,
				"%s axis spans more than %d cells (limit %d cells in total)", a, limit, MaxCells)
		}
		n *= size
	}
	return n, nil
}

// Dimension returns the named dimension.
func (c *Cube) Dimension(name string) (Dimension, bool) {
	d, ok := c.dims[name]
	return d, ok
}

// Dimensions returns all dimensions in declaration order.
func (c *Cube) Dimensions() []Dimension {
	out := make([]Dimension, len(c.order))
	for i, name := range c.order {
		out[i] = c.dims[name]
	}
	return out
}

// Axes returns a copy of the axis assignment.
func (c *Cube) Axes() Axes {
	return Axes{
		Horizontal: slices.Clone(c.axes.Horizontal),
		Vertical:   slices.Clone(c.axes.Vertical),
	}
}

// AxisDims returns the dimension names of one axis in precedence order.
func (c *Cube) AxisDims(a Axis) []string {
	if a == Vertical {
		return slices.Clone(c.axes.Vertical)
	}
	return slices.Clone(c.axes.Horizontal)
}

// Rules returns the rules in priority order.
func (c *Cube) Rules() []Rule {
	return slices.Clone(c.rules)
}

// Rule returns the rule at index i.
func (c *Cube) Rule(i int) Rule {
	return c.rules[i]
}

// Domains returns the rule domains in priority order, the knives of
// [Cube.Multidice].
func (c *Cube) Domains() []Coordinate {
	out := make([]Coordinate, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Domain
	}
	return out
}

// size returns the size of a declared dimension.
func (c *Cube) size(name string) int {
	return c.dims[name].Size()
}
