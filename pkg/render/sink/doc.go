// Package sink renders a [render.Table] into output formats.
//
// # Overview
//
// This package provides renderers for:
//
//   - LaTeX: a standalone nicematrix document, the canonical output
//   - HTML: a plain table with rowspan/colspan and inline background colors
//   - DOT and SVG: a Graphviz HTML-like table rendered with go-graphviz
//   - PNG and PDF: the SVG converted with rsvg-convert
//   - JSON: rectangles and header bands for external tools
//
// Basic usage:
//
//	tbl := render.BuildTable(cube, placements)
//	tex := sink.RenderLaTeX(tbl)
//	svg, err := sink.RenderSVG(ctx, sink.ToDOT(tbl))
//
// Cell text is written verbatim into LaTeX so documents can use math and
// macros; the other formats escape it.
//
// [render.Table]: github.com/matzehuels/hypercube/pkg/render.Table
package sink
