package hypercube

import (
	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Split expands s into one child per value of dim, each child equal to s plus
// dim fixed. dim must be declared and not yet fixed in s.
func (c *Cube) Split(s Coordinate, dim string) ([]Coordinate, error) {
	d, ok := c.dims[dim]
	if !ok {
		return nil, errs.New(errs.ErrCodeMalformedDomain, "split %s: undeclared dimension %q", s, dim)
	}
	if s.Has(dim) {
		return nil, errs.New(errs.ErrCodeMalformedDomain, "split %s: dimension %q already fixed", s, dim)
	}
	out := make([]Coordinate, d.Size())
	for i := range out {
		out[i] = s.With(dim, i)
	}
	return out, nil
}

// cutDimension picks the next dimension to split onion by: the first axis
// dimension, horizontal then vertical, that knife fixes and onion does not.
func (c *Cube) cutDimension(onion, knife Coordinate) (string, bool) {
	for _, d := range c.scan {
		if knife.Has(d) && !onion.Has(d) {
			return d, true
		}
	}
	return "", false
}

// Dice splits onion until every piece is either disjoint from knife or
// contained in it. Pieces are returned in depth-first split order.
func (c *Cube) Dice(onion, knife Coordinate) ([]Coordinate, error) {
	var out []Coordinate
	stack := []Coordinate{onion}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if Disjoint(s, knife) || Contained(s, knife) {
			out = append(out, s)
			continue
		}
		d, ok := c.cutDimension(s, knife)
		if !ok {
			return nil, errs.New(errs.ErrCodeMalformedDomain,
				"dice %s by %s: knife fixes no axis dimension left free", s, knife)
		}
		children, err := c.Split(s, d)
		if err != nil {
			return nil, err
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return out, nil
}

// Multidice cuts onion by each knife in priority order. Pieces contained in
// knife i are claimed by i; only pieces disjoint from every earlier knife go
// on to the next one. This is first-match resolution without a grid.
//
// Any region still unclaimed after the last knife is an UNRESOLVED_CELL error.
func (c *Cube) Multidice(onion Coordinate, knives []Coordinate) ([]Piece, error) {
	var out []Piece
	active := []Coordinate{onion}
	for i, knife := range knives {
		if len(active) == 0 {
			break
		}
		var next []Coordinate
		for _, a := range active {
			chunks, err := c.Dice(a, knife)
			if err != nil {
				return nil, err
			}
			for _, ch := range chunks {
				if Contained(ch, knife) {
					out = append(out, Piece{Subspace: ch, Rule: i})
				} else {
					next = append(next, ch)
				}
			}
		}
		active = next
	}
	if len(active) > 0 {
		return nil, errs.New(errs.ErrCodeUnresolvedCell,
			"no rule matches subspace %s; add a catch-all rule with no conditions last",
			c.describe(active[0]))
	}
	return out, nil
}

// Separate splits s so each result projects onto dims as one contiguous run:
// every free dimension of dims that precedes a fixed one is split.
func (c *Cube) Separate(s Coordinate, dims []string) ([]Coordinate, error) {
	out := []Coordinate{s}
	for i, d := range dims {
		if s.Has(d) || !fixesAny(s, dims[i+1:]) {
			continue
		}
		next := make([]Coordinate, 0, len(out)*c.size(d))
		for _, p := range out {
			children, err := c.Split(p, d)
			if err != nil {
				return nil, err
			}
			next = append(next, children...)
		}
		out = next
	}
	return out, nil
}

func fixesAny(s Coordinate, dims []string) bool {
	for _, d := range dims {
		if s.Has(d) {
			return true
		}
	}
	return false
}

// Interval returns the half-open index range [start, end) that s covers along
// dims. The fixed dimensions of dims must form a prefix; a free dimension of
// size one counts as fixed. Otherwise the projection is not one run and the
// result is a NON_CONTIGUOUS_SUBSPACE error; see [Cube.Separate].
func (c *Cube) Interval(s Coordinate, dims []string) (start, end int, err error) {
	fixed := make([]string, 0, len(dims))
	prefix := make(Coordinate, len(dims))
	var free []string
	for _, d := range dims {
		v, ok := s[d]
		if !ok && c.size(d) == 1 && len(free) == 0 {
			v, ok = 0, true
		}
		if !ok {
			free = append(free, d)
			continue
		}
		if len(free) > 0 {
			return 0, 0, errs.New(errs.ErrCodeNonContiguousSubspace,
				"subspace %s is not contiguous along %v: %q is free but %q is fixed", s, dims, free[0], d)
		}
		fixed = append(fixed, d)
		prefix[d] = v
	}

	length := c.Combos(free)
	first, err := c.Unfold(fixed, prefix)
	if err != nil {
		return 0, 0, err
	}
	return first * length, (first + 1) * length, nil
}

// GuillotinePartition decomposes the grid directly from rule domains: dice
// the whole space by each rule in priority order, then separate every claimed
// piece along both axes so it maps to a single rectangle.
func (c *Cube) GuillotinePartition() ([]Placement, error) {
	pieces, err := c.Multidice(Coordinate{}, c.Domains())
	if err != nil {
		return nil, err
	}

	var out []Placement
	for _, p := range pieces {
		payload := c.rules[p.Rule].Payload
		cols, err := c.Separate(p.Subspace, c.axes.Horizontal)
		if err != nil {
			return nil, err
		}
		for _, col := range cols {
			cells, err := c.Separate(col, c.axes.Vertical)
			if err != nil {
				return nil, err
			}
			for _, s := range cells {
				r, err := c.rect(s)
				if err != nil {
					return nil, err
				}
				out = append(out, Placement{Rect: r, Payload: payload})
			}
		}
	}
	return out, nil
}

func (c *Cube) rect(s Coordinate) (Rect, error) {
	hs, he, err := c.Interval(s, c.axes.Horizontal)
	if err != nil {
		return Rect{}, err
	}
	vs, ve, err := c.Interval(s, c.axes.Vertical)
	if err != nil {
		return Rect{}, err
	}
	return Rect{HStart: hs, HEnd: he, VStart: vs, VEnd: ve}, nil
}
