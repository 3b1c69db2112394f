// Package pkg provides the core libraries for hypercube table rendering.
//
// # Overview
//
// Hypercube lays out an N-dimensional table of categorical parameters as a
// 2-D grid. Every dimension is assigned to the horizontal or vertical axis;
// an ordered rule list fills each cell, and equal neighbouring cells are
// merged into rectangles that render as multirow/multicolumn tables.
//
// The pkg directory is organized into these areas:
//
//  1. [hypercube] - Domain logic (coordinates, rule resolution, partitioning)
//  2. [io] - Document formats (TSV, JSON, YAML, TOML)
//  3. [render] - Table model and output sinks (LaTeX, HTML, DOT, SVG, PNG, PDF, JSON)
//  4. [pipeline] - Orchestration (load → partition → render) with caching
//  5. [cache] - File, redis, and no-op cache backends
//
// # Architecture
//
// The typical data flow:
//
//	TSV/JSON/YAML/TOML document
//	         ↓
//	    [io] package (parse into a Document)
//	         ↓
//	    [hypercube] package (build the Cube, resolve cells, partition)
//	         ↓
//	    [render] package (headers + rectangles → Table → sinks)
//	         ↓
//	    tex/html/dot/svg/png/pdf/json output
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    pkgio "github.com/matzehuels/hypercube/pkg/io"
//	    "github.com/matzehuels/hypercube/pkg/pipeline"
//	)
//
//	doc, _ := pkgio.Import("shirts.tsv")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	result, _ := runner.Execute(context.Background(), doc, pipeline.Options{
//	    Formats: []string{"tex", "html"},
//	})
//	tex := result.Artifacts["tex"]
//
// # Supporting Packages
//
// [errors] defines the error codes shared by the CLI and the HTTP server,
// [observability] exposes hooks for pipeline and HTTP events, and
// [buildinfo] carries version metadata set at link time.
//
// [hypercube]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/hypercube
// [io]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hypercube/pkg/buildinfo
package pkg
