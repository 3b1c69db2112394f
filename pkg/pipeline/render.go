package pipeline

import (
	"context"
	"fmt"
	"time"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/hypercube"
	"github.com/matzehuels/hypercube/pkg/observability"
	"github.com/matzehuels/hypercube/pkg/render"
	"github.com/matzehuels/hypercube/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, c *hypercube.Cube, placements []hypercube.Placement, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, c, placements, opts.Formats)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, c *hypercube.Cube, placements []hypercube.Placement, formats []string) (map[string][]byte, error) {
	t := render.BuildTable(c, placements)
	artifacts := make(map[string][]byte, len(formats))

	// SVG feeds PNG and PDF; render it at most once.
	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = sink.RenderSVG(ctx, sink.ToDOT(t))
		return svg, err
	}

	for _, format := range formats {
		if _, done := artifacts[format]; done {
			continue
		}

		var data []byte
		var err error

		switch format {
		case FormatTeX:
			data = sink.RenderLaTeX(t)
		case FormatHTML:
			data, err = sink.RenderHTML(t, sink.WithDocument())
		case FormatDOT:
			data = []byte(sink.ToDOT(t))
		case FormatSVG:
			data, err = svgOnce()
		case FormatPNG:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPNG(ctx, data, 2.0)
			}
		case FormatPDF:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatJSON:
			data, err = sink.RenderJSON(c, placements)
		default:
			return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
