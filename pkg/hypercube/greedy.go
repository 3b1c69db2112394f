package hypercube

import (
	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// MergeMode decides which cells may share a rectangle.
type MergeMode int

const (
	// MergeContent merges cells with equal payloads, even when different rules
	// produced them.
	MergeContent MergeMode = iota
	// MergeRule merges only cells won by the same rule.
	MergeRule
)

// String returns the flag spelling of the mode.
func (m MergeMode) String() string {
	if m == MergeRule {
		return "rule"
	}
	return "content"
}

// ParseMergeMode parses "content" or "rule".
func ParseMergeMode(s string) (MergeMode, error) {
	switch s {
	case "content", "":
		return MergeContent, nil
	case "rule":
		return MergeRule, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidMerge, "invalid merge mode %q (must be content or rule)", s)
}

// Matches builds the mask of cells equal to v.
func Matches[T comparable](grid [][]T, v T) [][]bool {
	mask := make([][]bool, len(grid))
	for row, cells := range grid {
		mask[row] = make([]bool, len(cells))
		for col, cell := range cells {
			mask[row][col] = cell == v
		}
	}
	return mask
}

// Rectangulate partitions the true cells of mask into rectangles.
//
// Cells are scanned row-major. From each true cell the rectangle grows right
// while the row stays true, then down while every cell of that column span in
// the next row is true. Covered cells are cleared, so mask is consumed: it is
// all false on return.
func Rectangulate(mask [][]bool) []Rect {
	var rects []Rect
	for vs := range mask {
		for hs := 0; hs < len(mask[vs]); hs++ {
			if !mask[vs][hs] {
				continue
			}
			he := hs
			for he < len(mask[vs]) && mask[vs][he] {
				he++
			}
			ve := vs + 1
			for ve < len(mask) && spanTrue(mask[ve], hs, he) {
				ve++
			}
			for r := vs; r < ve; r++ {
				for c := hs; c < he; c++ {
					mask[r][c] = false
				}
			}
			rects = append(rects, Rect{HStart: hs, HEnd: he, VStart: vs, VEnd: ve})
		}
	}
	return rects
}

func spanTrue(row []bool, from, to int) bool {
	if to > len(row) {
		return false
	}
	for _, v := range row[from:to] {
		if !v {
			return false
		}
	}
	return true
}

// GreedyPartition resolves the grid and partitions it with [Rectangulate],
// once per distinct merge key. Keys are visited in order of first appearance
// (row-major), which makes the output deterministic.
func (c *Cube) GreedyPartition(mode MergeMode) ([]Placement, error) {
	grid, err := c.BuildGrid()
	if err != nil {
		return nil, err
	}
	if mode == MergeRule {
		return partitionBy(grid, func(rule int) Payload { return c.rules[rule].Payload }), nil
	}
	return partitionBy(c.PayloadGrid(grid), func(p Payload) Payload { return p }), nil
}

func partitionBy[T comparable](grid [][]T, payload func(T) Payload) []Placement {
	var out []Placement
	for _, key := range distinct(grid) {
		for _, r := range Rectangulate(Matches(grid, key)) {
			out = append(out, Placement{Rect: r, Payload: payload(key)})
		}
	}
	return out
}

// distinct returns the values of grid in row-major first-appearance order.
func distinct[T comparable](grid [][]T) []T {
	seen := make(map[T]bool)
	var out []T
	for _, cells := range grid {
		for _, v := range cells {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
