package hypercube

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Coordinate assigns a value index to some subset of dimensions. A rule
// domain and a subspace are both coordinates; a full coordinate covers every
// axis dimension.
type Coordinate map[string]int

// String renders the coordinate as sorted name=index pairs.
func (c Coordinate) String() string {
	if len(c) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range slices.Sorted(maps.Keys(c)) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(c[d]))
	}
	b.WriteByte('}')
	return b.String()
}

// Clone returns an independent copy. Cloning nil yields an empty coordinate.
func (c Coordinate) Clone() Coordinate {
	out := make(Coordinate, len(c)+1)
	maps.Copy(out, c)
	return out
}

// With returns a copy of c with dim fixed to idx.
func (c Coordinate) With(dim string, idx int) Coordinate {
	out := c.Clone()
	out[dim] = idx
	return out
}

// Has reports whether dim is fixed.
func (c Coordinate) Has(dim string) bool {
	_, ok := c[dim]
	return ok
}

// Merge returns the union of c and other. The key sets must be disjoint:
// axis coordinates never share a dimension, so any overlap means the inputs
// are inconsistent and is reported rather than resolved by letting one side win.
func (c Coordinate) Merge(other Coordinate) (Coordinate, error) {
	out := make(Coordinate, len(c)+len(other))
	maps.Copy(out, c)
	for d, v := range other {
		if prev, ok := out[d]; ok {
			return nil, errs.New(errs.ErrCodeMalformedDomain,
				"cannot merge %s and %s: dimension %q assigned twice (%d, %d)", c, other, d, prev, v)
		}
		out[d] = v
	}
	return out, nil
}

// Matches reports whether every dimension fixed by domain has the same value
// in c.
func (c Coordinate) Matches(domain Coordinate) bool {
	for d, v := range domain {
		if got, ok := c[d]; !ok || got != v {
			return false
		}
	}
	return true
}

// Disjoint reports whether a and b cannot share a cell: some dimension fixed
// in both disagrees.
func Disjoint(a, b Coordinate) bool {
	for d, v := range b {
		if av, ok := a[d]; ok && av != v {
			return true
		}
	}
	return false
}

// Contained reports whether small lies entirely inside big: every dimension
// big fixes is fixed to the same value in small.
func Contained(small, big Coordinate) bool {
	return small.Matches(big)
}
