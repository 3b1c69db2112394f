package hypercube

import (
	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Strategy names a rectangle decomposition algorithm.
type Strategy string

const (
	// StrategyGreedy scans the resolved grid; see [Cube.GreedyPartition].
	StrategyGreedy Strategy = "greedy"
	// StrategyGuillotine dices rule domains; see [Cube.GuillotinePartition].
	StrategyGuillotine Strategy = "guillotine"
)

// ParseStrategy parses a strategy name. The empty string selects greedy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyGreedy, "":
		return StrategyGreedy, nil
	case StrategyGuillotine:
		return StrategyGuillotine, nil
	}
	return "", errs.New(errs.ErrCodeInvalidStrategy, "invalid strategy %q (must be greedy or guillotine)", s)
}

// Partition runs the chosen strategy. The merge mode applies to greedy only;
// guillotine pieces never span more than one rule.
func (c *Cube) Partition(s Strategy, mode MergeMode) ([]Placement, error) {
	switch s {
	case StrategyGreedy, "":
		return c.GreedyPartition(mode)
	case StrategyGuillotine:
		return c.GuillotinePartition()
	}
	return nil, errs.New(errs.ErrCodeInvalidStrategy, "invalid strategy %q", s)
}

// Flatten stamps each placement's payload onto a height x width grid. It
// fails if a rectangle is empty, leaves the grid, overlaps another, or if
// any cell stays uncovered.
func Flatten(placements []Placement, width, height int) ([][]Payload, error) {
	out := make([][]Payload, height)
	covered := make([][]bool, height)
	for row := range out {
		out[row] = make([]Payload, width)
		covered[row] = make([]bool, width)
	}

	for i, p := range placements {
		r := p.Rect
		if r.Width() <= 0 || r.Height() <= 0 || r.HStart < 0 || r.VStart < 0 || r.HEnd > width || r.VEnd > height {
			return nil, errs.New(errs.ErrCodeInternal, "placement %d: rectangle %s invalid for %dx%d grid", i, r, height, width)
		}
		for row := r.VStart; row < r.VEnd; row++ {
			for col := r.HStart; col < r.HEnd; col++ {
				if covered[row][col] {
					return nil, errs.New(errs.ErrCodeInternal, "placement %d: rectangle %s overlaps cell (%d, %d)", i, r, row, col)
				}
				covered[row][col] = true
				out[row][col] = p.Payload
			}
		}
	}

	for row := range covered {
		for col, ok := range covered[row] {
			if !ok {
				return nil, errs.New(errs.ErrCodeInternal, "cell (%d, %d) not covered by any rectangle", row, col)
			}
		}
	}
	return out, nil
}

// Verify checks that placements partition the grid and reproduce the
// resolved payload of every cell.
func (c *Cube) Verify(placements []Placement) error {
	flat, err := Flatten(placements, c.Width(), c.Height())
	if err != nil {
		return err
	}
	grid, err := c.BuildGrid()
	if err != nil {
		return err
	}
	want := c.PayloadGrid(grid)
	for row := range want {
		for col := range want[row] {
			if flat[row][col] != want[row][col] {
				return errs.New(errs.ErrCodeInternal, "cell (%d, %d): placed %q, resolved %q",
					row, col, flat[row][col].Content, want[row][col].Content)
			}
		}
	}
	return nil
}
