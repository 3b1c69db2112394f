package render

import (
	"cmp"
	"slices"

	"github.com/matzehuels/hypercube/pkg/hypercube"
)

// CellKind tells header cells from body cells.
type CellKind int

const (
	// CellBody is a rectangle of the partition.
	CellBody CellKind = iota
	// CellCorner is the empty block above the row headers.
	CellCorner
	// CellColumnHeader labels a value of a horizontal dimension.
	CellColumnHeader
	// CellRowHeader labels a value of a vertical dimension.
	CellRowHeader
)

func (k CellKind) String() string {
	switch k {
	case CellCorner:
		return "corner"
	case CellColumnHeader:
		return "column-header"
	case CellRowHeader:
		return "row-header"
	}
	return "body"
}

// IsHeader reports whether the cell belongs to the header region.
func (k CellKind) IsHeader() bool { return k != CellBody }

// TableCell is a block anchored at zero-based (Row, Col).
type TableCell struct {
	Row, Col         int
	RowSpan, ColSpan int
	Text             string
	Style            string
	Kind             CellKind
}

// Table is a Rows x Cols grid tiled by Cells, sorted row-major by anchor.
type Table struct {
	Rows, Cols int
	Cells      []TableCell
}

// BuildTable lays out c with its body partitioned by placements. Row headers
// take one column per vertical dimension and column headers one row per
// horizontal dimension.
func BuildTable(c *hypercube.Cube, placements []hypercube.Placement) Table {
	axes := c.Axes()
	hoff := len(axes.Vertical)
	voff := len(axes.Horizontal)

	t := Table{Rows: c.Height() + voff, Cols: c.Width() + hoff}
	if hoff > 0 && voff > 0 {
		t.Cells = append(t.Cells, TableCell{RowSpan: voff, ColSpan: hoff, Kind: CellCorner})
	}

	for _, band := range c.Headers(hypercube.Horizontal) {
		for _, h := range band.Cells {
			t.Cells = append(t.Cells, TableCell{
				Row: band.Level, Col: hoff + h.Start,
				RowSpan: 1, ColSpan: h.Span,
				Text: h.Value.Label, Style: h.Value.Style,
				Kind: CellColumnHeader,
			})
		}
	}
	for _, band := range c.Headers(hypercube.Vertical) {
		for _, h := range band.Cells {
			t.Cells = append(t.Cells, TableCell{
				Row: voff + h.Start, Col: band.Level,
				RowSpan: h.Span, ColSpan: 1,
				Text: h.Value.Label, Style: h.Value.Style,
				Kind: CellRowHeader,
			})
		}
	}
	for _, p := range placements {
		t.Cells = append(t.Cells, TableCell{
			Row: voff + p.Rect.VStart, Col: hoff + p.Rect.HStart,
			RowSpan: p.Rect.Height(), ColSpan: p.Rect.Width(),
			Text: p.Payload.Content, Style: p.Payload.Style,
			Kind: CellBody,
		})
	}

	slices.SortStableFunc(t.Cells, func(a, b TableCell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	return t
}

// Cover maps every grid position to the index of the cell covering it, or
// -1 where no cell does.
func (t Table) Cover() [][]int {
	cover := make([][]int, t.Rows)
	for r := range cover {
		cover[r] = make([]int, t.Cols)
		for c := range cover[r] {
			cover[r][c] = -1
		}
	}
	for i, cell := range t.Cells {
		for r := cell.Row; r < cell.Row+cell.RowSpan && r < t.Rows; r++ {
			for c := cell.Col; c < cell.Col+cell.ColSpan && c < t.Cols; c++ {
				cover[r][c] = i
			}
		}
	}
	return cover
}

// RowCells returns the cells anchored in each row.
func (t Table) RowCells() [][]TableCell {
	rows := make([][]TableCell, t.Rows)
	for _, cell := range t.Cells {
		rows[cell.Row] = append(rows[cell.Row], cell)
	}
	return rows
}
