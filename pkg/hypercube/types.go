package hypercube

import "fmt"

// Value is one labeled, styled value of a dimension.
type Value struct {
	Label string
	Style string
}

// Dimension is a named categorical axis with an ordered, finite set of values.
type Dimension struct {
	Name   string
	Values []Value
}

// Size returns the number of values.
func (d Dimension) Size() int { return len(d.Values) }

// Axes assigns dimensions to the two grid axes. Leftmost is most significant
// (slowest varying).
type Axes struct {
	Horizontal []string
	Vertical   []string
}

// Axis selects one side of an [Axes].
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Payload is the rendered content of a cell. Cells with equal payloads may
// merge even when different rules produced them.
type Payload struct {
	Content string
	Style   string
}

// Rule maps a partial coordinate to a payload. Position in the rule list is
// priority: earlier rules win.
type Rule struct {
	Domain  Coordinate
	Payload Payload
}

// Rect is the half-open box [HStart,HEnd) x [VStart,VEnd) in grid cells.
type Rect struct {
	HStart, HEnd int
	VStart, VEnd int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.HEnd - r.HStart }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.VEnd - r.VStart }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether the cell at (row, col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return col >= r.HStart && col < r.HEnd && row >= r.VStart && row < r.VEnd
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.HStart, r.HEnd, r.VStart, r.VEnd)
}

// Placement is a rectangle tagged with the payload drawn in it.
type Placement struct {
	Rect    Rect
	Payload Payload
}

// Piece is a subspace wholly claimed by the rule at index Rule.
type Piece struct {
	Subspace Coordinate
	Rule     int
}

// Grid holds the winning rule index of every cell, indexed [row][col].
type Grid [][]int
