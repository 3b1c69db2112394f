// Package io reads and writes hypercube documents.
//
// # Overview
//
// A document declares the dimensions of a table, assigns them to the
// horizontal and vertical axes in precedence order, and lists the rules that
// fill the cells. The same [Document] can be stored in four formats:
//
//   - TSV: the compact tab-separated format, convenient to edit by hand
//   - JSON: used by the HTTP API
//   - YAML and TOML: readable alternatives for checked-in documents
//
// # TSV Format
//
// A TSV document has four sections:
//
//	size	S	red!20	M		L	blue!20
//	color	red		blue
//
//	size	color
//	region
//	sold out	gray!30	size	2	color	0
//	open
//
// Dimension lines hold a name followed by label/style pairs and end at the
// first blank line. The next line names the horizontal dimensions, the one
// after it the vertical dimensions; either may be empty. Every remaining line
// is a rule: content, style, then dimension/index pairs. Rules end at a blank
// line or the end of input. A line starting with % is a comment anywhere.
//
// Rules are matched first to last, so a document usually ends with a rule
// without conditions that covers every remaining cell.
//
// # Structured Formats
//
// JSON, YAML and TOML share one schema:
//
//	{
//	  "dimensions": [{"name": "size", "values": [{"label": "S", "style": "red!20"}]}],
//	  "horizontal": ["size"],
//	  "vertical": [],
//	  "rules": [{"content": "open", "when": {"size": 0}}]
//	}
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension; [Read],
// [Write] and [Decode] take it explicitly. Every decoding failure is an
// INVALID_INPUT error from [github.com/matzehuels/hypercube/pkg/errors].
// Structural problems such as an undeclared dimension are reported by
// [Document.Cube].
package io
