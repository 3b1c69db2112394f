// Package hypercube resolves an N-dimensional table of categorical parameters
// into a partition of merged, styled rectangles on a 2-D grid.
//
// A [Cube] is built from three inputs:
//
//   - dimensions: named, ordered lists of (label, style) values
//   - axes: which dimensions run horizontally and vertically, most significant first
//   - rules: an ordered list of partial coordinates ("domains") with a payload
//
// Every grid cell is one value per axis dimension. The cell takes the payload
// of the first rule whose domain it matches, so a trailing rule with an empty
// domain acts as a catch-all.
//
// # Index Codec
//
// [Cube.Fold] and [Cube.Unfold] convert between a linear position along an
// axis and a per-dimension coordinate, treating the dimension list as
// mixed-radix digits with the last dimension least significant:
//
//	col := 5
//	coord := cube.Fold(cube.Axes().Horizontal, col)
//	back, _ := cube.Unfold(cube.Axes().Horizontal, coord) // back == 5
//
// # Partitioning
//
// Two strategies produce the same []Placement contract:
//
//   - [Cube.GreedyPartition] materializes the grid with [Cube.BuildGrid] and
//     scans it row-major, growing each rectangle right then down ([Rectangulate]).
//   - [Cube.GuillotinePartition] never materializes the grid. It dices the
//     whole space against each rule domain in priority order ([Cube.Multidice]),
//     then splits each piece until it projects onto a contiguous interval on
//     both axes ([Cube.Separate], [Cube.Interval]).
//
// Neither strategy is minimal. The guillotine strategy tends to win when rule
// domains line up with the axis precedence and loses otherwise.
//
// # Errors
//
// All errors carry a code from pkg/errors: DIMENSION_MISMATCH and
// MALFORMED_DOMAIN at construction, UNRESOLVED_CELL when no rule matches,
// NON_CONTIGUOUS_SUBSPACE from [Cube.Interval].
package hypercube
