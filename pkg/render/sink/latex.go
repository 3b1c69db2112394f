package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/hypercube/pkg/render"
)

// LaTeXOption configures LaTeX rendering via [RenderLaTeX].
type LaTeXOption func(*latexRenderer)

type latexRenderer struct {
	align    string
	bodyOnly bool
}

// WithAlign sets the column alignment letter (default "c").
func WithAlign(a string) LaTeXOption { return func(r *latexRenderer) { r.align = a } }

// WithBodyOnly omits the document preamble, leaving only the NiceTabular
// environment for inclusion in a larger document.
func WithBodyOnly() LaTeXOption { return func(r *latexRenderer) { r.bodyOnly = true } }

// RenderLaTeX writes the table as a NiceTabular with one \Block per cell.
// Styled cells are filled with \rectanglecolor in the \CodeBefore section.
func RenderLaTeX(t render.Table, opts ...LaTeXOption) []byte {
	r := latexRenderer{align: "c"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if !r.bodyOnly {
		buf.WriteString("\\documentclass{standalone}\n")
		buf.WriteString("\\usepackage[table]{xcolor}\n")
		buf.WriteString("\\usepackage{nicematrix}\n\n")
		buf.WriteString("\\begin{document}\n\n")
	}

	fmt.Fprintf(&buf, "\\begin{NiceTabular}{%s}[hvlines]\n", strings.Repeat(r.align, t.Cols))

	buf.WriteString("  \\CodeBefore\n")
	for _, c := range t.Cells {
		if c.Style == "" {
			continue
		}
		// nicematrix positions are 1-based and inclusive.
		fmt.Fprintf(&buf, "    \\rectanglecolor{%s}{%d-%d}{%d-%d}\n",
			c.Style, c.Row+1, c.Col+1, c.Row+c.RowSpan, c.Col+c.ColSpan)
	}

	buf.WriteString("  \\Body\n")
	blocks := make([][]string, t.Rows)
	for i := range blocks {
		blocks[i] = make([]string, t.Cols)
	}
	for _, c := range t.Cells {
		blocks[c.Row][c.Col] = fmt.Sprintf(" \\Block{%d-%d}{%s}", c.RowSpan, c.ColSpan, c.Text)
	}
	for _, row := range blocks {
		buf.WriteString("    ")
		buf.WriteString(strings.Join(row, " & "))
		buf.WriteString("\\\\\n")
	}

	buf.WriteString("\\end{NiceTabular}\n")
	if !r.bodyOnly {
		buf.WriteString("\\end{document}\n")
	}
	return buf.Bytes()
}
