package render

import (
	"testing"

	"github.com/matzehuels/hypercube/pkg/hypercube"
)

func scenario(t *testing.T) (*hypercube.Cube, []hypercube.Placement) {
	t.Helper()
	c, err := hypercube.New(
		[]hypercube.Dimension{
			{Name: "A", Values: []hypercube.Value{{Label: "a0", Style: "red!20"}, {Label: "a1"}}},
			{Name: "B", Values: []hypercube.Value{{Label: "b0"}, {Label: "b1"}}},
			{Name: "C", Values: []hypercube.Value{{Label: "c0"}}},
		},
		hypercube.Axes{Horizontal: []string{"A", "B"}, Vertical: []string{"C"}},
		[]hypercube.Rule{
			{Domain: hypercube.Coordinate{"A": 0}, Payload: hypercube.Payload{Content: "X", Style: "green!10"}},
			{Payload: hypercube.Payload{Content: "Y"}},
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, err := c.GreedyPartition(hypercube.MergeContent)
	if err != nil {
		t.Fatalf("GreedyPartition: %v", err)
	}
	return c, p
}

func TestBuildTable(t *testing.T) {
	tbl := BuildTable(scenario(t))

	if tbl.Rows != 3 || tbl.Cols != 5 {
		t.Fatalf("size = %dx%d, want 3x5", tbl.Rows, tbl.Cols)
	}

	want := []TableCell{
		{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1, Kind: CellCorner},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 2, Text: "a0", Style: "red!20", Kind: CellColumnHeader},
		{Row: 0, Col: 3, RowSpan: 1, ColSpan: 2, Text: "a1", Kind: CellColumnHeader},
		{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Text: "b0", Kind: CellColumnHeader},
		{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1, Text: "b1", Kind: CellColumnHeader},
		{Row: 1, Col: 3, RowSpan: 1, ColSpan: 1, Text: "b0", Kind: CellColumnHeader},
		{Row: 1, Col: 4, RowSpan: 1, ColSpan: 1, Text: "b1", Kind: CellColumnHeader},
		{Row: 2, Col: 0, RowSpan: 1, ColSpan: 1, Text: "c0", Kind: CellRowHeader},
		{Row: 2, Col: 1, RowSpan: 1, ColSpan: 2, Text: "X", Style: "green!10", Kind: CellBody},
		{Row: 2, Col: 3, RowSpan: 1, ColSpan: 2, Text: "Y", Kind: CellBody},
	}
	if len(tbl.Cells) != len(want) {
		t.Fatalf("got %d cells, want %d: %+v", len(tbl.Cells), len(want), tbl.Cells)
	}
	for i := range want {
		if tbl.Cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, tbl.Cells[i], want[i])
		}
	}
}

func TestBuildTableTilesGrid(t *testing.T) {
	tbl := BuildTable(scenario(t))
	seen := make([][]int, tbl.Rows)
	for r := range seen {
		seen[r] = make([]int, tbl.Cols)
	}
	for _, cell := range tbl.Cells {
		for r := cell.Row; r < cell.Row+cell.RowSpan; r++ {
			for c := cell.Col; c < cell.Col+cell.ColSpan; c++ {
				seen[r][c]++
			}
		}
	}
	for r := range seen {
		for c, n := range seen[r] {
			if n != 1 {
				t.Errorf("position (%d, %d) covered %d times", r, c, n)
			}
		}
	}
}

func TestBuildTableWithoutVerticalAxis(t *testing.T) {
	c, err := hypercube.New(
		[]hypercube.Dimension{{Name: "A", Values: []hypercube.Value{{Label: "a0"}, {Label: "a1"}}}},
		hypercube.Axes{Horizontal: []string{"A"}},
		[]hypercube.Rule{{Payload: hypercube.Payload{Content: "all"}}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, err := c.GreedyPartition(hypercube.MergeContent)
	if err != nil {
		t.Fatalf("GreedyPartition: %v", err)
	}

	tbl := BuildTable(c, p)
	if tbl.Rows != 2 || tbl.Cols != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tbl.Rows, tbl.Cols)
	}
	for _, cell := range tbl.Cells {
		if cell.Kind == CellCorner || cell.Kind == CellRowHeader {
			t.Errorf("unexpected %s cell", cell.Kind)
		}
	}
}

func TestCover(t *testing.T) {
	tbl := BuildTable(scenario(t))
	cover := tbl.Cover()
	if got := tbl.Cells[cover[1][0]].Kind; got != CellCorner {
		t.Errorf("(1,0) covered by %s, want corner", got)
	}
	if got := tbl.Cells[cover[2][4]].Text; got != "Y" {
		t.Errorf("(2,4) covered by %q, want Y", got)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"red", "#ff0000", true},
		{"red!20", "#ffcccc", true},
		{"red!50!blue", "#800080", true},
		{"Blue!0", "#ffffff", true},
		{"#12ab34", "#12ab34", true},
		{"", "", false},
		{"chartreuse", "", false},
		{"red!x", "", false},
		{"red!150", "", false},
	}
	for _, tt := range tests {
		got, ok := Color(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Color(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
