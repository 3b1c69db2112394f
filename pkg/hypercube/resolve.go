package hypercube

import (
	"strings"

	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// CellCoordinate returns the full coordinate of the cell at (row, col).
func (c *Cube) CellCoordinate(row, col int) (Coordinate, error) {
	if row < 0 || row >= c.Height() || col < 0 || col >= c.Width() {
		return nil, errs.New(errs.ErrCodeMalformedDomain,
			"cell (%d, %d) outside %dx%d grid", row, col, c.Height(), c.Width())
	}
	return c.Fold(c.axes.Vertical, row).Merge(c.Fold(c.axes.Horizontal, col))
}

// ResolveCell returns the index of the first rule matching the cell at
// (row, col). A cell no rule matches is a configuration error.
func (c *Cube) ResolveCell(row, col int) (int, error) {
	coord, err := c.CellCoordinate(row, col)
	if err != nil {
		return 0, err
	}
	return c.resolve(row, col, coord)
}

func (c *Cube) resolve(row, col int, coord Coordinate) (int, error) {
	for i, r := range c.rules {
		if coord.Matches(r.Domain) {
			return i, nil
		}
	}
	return 0, errs.New(errs.ErrCodeUnresolvedCell,
		"no rule matches cell (row %d, col %d) %s; add a catch-all rule with no conditions last",
		row, col, c.describe(coord))
}

// BuildGrid resolves every cell, returning a Height x Width grid of rule
// indices.
func (c *Cube) BuildGrid() (Grid, error) {
	width, height := c.Width(), c.Height()
	cols := make([]Coordinate, width)
	for col := range cols {
		cols[col] = c.Fold(c.axes.Horizontal, col)
	}

	grid := make(Grid, height)
	for row := range grid {
		rowCoord := c.Fold(c.axes.Vertical, row)
		grid[row] = make([]int, width)
		for col := range grid[row] {
			coord, err := rowCoord.Merge(cols[col])
			if err != nil {
				return nil, err
			}
			if grid[row][col], err = c.resolve(row, col, coord); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}

// PayloadGrid maps each rule index of g to that rule's payload.
func (c *Cube) PayloadGrid(g Grid) [][]Payload {
	out := make([][]Payload, len(g))
	for row, cells := range g {
		out[row] = make([]Payload, len(cells))
		for col, rule := range cells {
			out[row][col] = c.rules[rule].Payload
		}
	}
	return out
}

// describe renders a coordinate with value labels for error messages,
// e.g. {A=1, B=0} (A=a1, B=b0).
func (c *Cube) describe(coord Coordinate) string {
	labels := make([]string, 0, len(coord))
	for _, d := range c.scan {
		if v, ok := coord[d]; ok {
			labels = append(labels, d+"="+c.dims[d].Values[v].Label)
		}
	}
	if len(labels) == 0 {
		return coord.String()
	}
	return coord.String() + " (" + strings.Join(labels, ", ") + ")"
}
