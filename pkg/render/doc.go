// Package render lays a partitioned cube out as a table with header bands.
//
// # Overview
//
// [BuildTable] turns a cube and its rectangle partition into a [Table]: a
// grid of spanning cells made of a corner block, one header row per
// horizontal dimension, one header column per vertical dimension, and the
// body rectangles shifted past the headers. Output formats in the
// [sink] subpackage all consume a [Table].
//
// # Colors
//
// Styles are xcolor expressions such as "red!20" or "blue!30!green", the
// notation LaTeX output uses directly. [Color] translates the common subset
// into #rrggbb for HTML, Graphviz and the terminal.
//
// # Conversion
//
// [ToPDF] and [ToPNG] convert SVG through the external rsvg-convert tool.
//
// [sink]: github.com/matzehuels/hypercube/pkg/render/sink
package render
