package sink

import (
	"context"

	"github.com/matzehuels/hypercube/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the table as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, t render.Table, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(ctx, ToDOT(t))
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, r.scale)
}

// RenderPDF renders the table as PDF via SVG conversion.
func RenderPDF(ctx context.Context, t render.Table) ([]byte, error) {
	svg, err := RenderSVG(ctx, ToDOT(t))
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
