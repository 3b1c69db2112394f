package hypercube

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func dim(name string, labels ...string) Dimension {
	d := Dimension{Name: name}
	for _, l := range labels {
		d.Values = append(d.Values, Value{Label: l})
	}
	return d
}

func rule(content string, domain Coordinate) Rule {
	return Rule{Domain: domain, Payload: Payload{Content: content}}
}

// scenarioCube is A{a0,a1} x B{b0,b1} across, C{c0} down, with
// {A=0} -> X and a catch-all Y.
func scenarioCube(t *testing.T) *Cube {
	t.Helper()
	c, err := New(
		[]Dimension{dim("A", "a0", "a1"), dim("B", "b0", "b1"), dim("C", "c0")},
		Axes{Horizontal: []string{"A", "B"}, Vertical: []string{"C"}},
		[]Rule{rule("X", Coordinate{"A": 0}), rule("Y", nil)},
	)
	require.NoError(t, err)
	return c
}

// randomCube builds a reproducible cube with up to four dimensions spread
// over both axes, a handful of random rules and a trailing catch-all.
func randomCube(t *testing.T, seed int64) *Cube {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	n := 1 + rng.Intn(4)
	dims := make([]Dimension, n)
	var axes Axes
	for i := range dims {
		size := 1 + rng.Intn(3)
		labels := make([]string, size)
		for j := range labels {
			labels[j] = fmt.Sprintf("v%d", j)
		}
		dims[i] = dim(fmt.Sprintf("D%d", i), labels...)
		if rng.Intn(2) == 0 {
			axes.Horizontal = append(axes.Horizontal, dims[i].Name)
		} else {
			axes.Vertical = append(axes.Vertical, dims[i].Name)
		}
	}

	contents := []string{"p", "q", "r"}
	var rules []Rule
	for i := rng.Intn(6); i > 0; i-- {
		domain := Coordinate{}
		for _, d := range dims {
			if rng.Intn(2) == 0 {
				domain[d.Name] = rng.Intn(d.Size())
			}
		}
		rules = append(rules, rule(contents[rng.Intn(len(contents))], domain))
	}
	rules = append(rules, rule("default", nil))

	c, err := New(dims, axes, rules)
	require.NoError(t, err)
	return c
}
