package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
	"golang.org/x/net/html"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/render"
)

// ToDOT converts the table to a Graphviz graph with a single plaintext node
// whose label is an HTML-like TABLE. Spans map to ROWSPAN/COLSPAN and
// styles to BGCOLOR.
//
// Every row anchors at least one cell, since the last dimension of each axis
// has span one, so no TR is ever empty.
func ToDOT(t render.Table) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hypercube {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("\n")
	buf.WriteString("  table [label=<\n")
	buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\" CELLPADDING=\"6\">\n")

	for _, cells := range t.RowCells() {
		buf.WriteString("      <TR>")
		for _, c := range cells {
			buf.WriteString(dotCell(c))
		}
		buf.WriteString("</TR>\n")
	}

	buf.WriteString("    </TABLE>\n")
	buf.WriteString("  >];\n")
	buf.WriteString("}\n")
	return buf.String()
}

func dotCell(c render.TableCell) string {
	attrs := ""
	if c.RowSpan > 1 {
		attrs += fmt.Sprintf(" ROWSPAN=\"%d\"", c.RowSpan)
	}
	if c.ColSpan > 1 {
		attrs += fmt.Sprintf(" COLSPAN=\"%d\"", c.ColSpan)
	}
	if hex, ok := render.Color(c.Style); ok {
		attrs += fmt.Sprintf(" BGCOLOR=\"%s\"", hex)
	}
	text := html.EscapeString(c.Text)
	if c.Kind.IsHeader() && text != "" {
		text = "<B>" + text + "</B>"
	}
	return fmt.Sprintf("<TD%s>%s</TD>", attrs, text)
}

// RenderSVG lays out a DOT graph with Graphviz and returns the SVG. Convert
// the result with [render.ToPDF] or [render.ToPNG] for print or raster output.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render svg")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg tag with a unitless one
// so the image scales in browsers and rsvg-convert alike.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
