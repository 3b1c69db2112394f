package sink

import (
	"encoding/json"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/hypercube"
)

type jsonOutput struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Rectangles []jsonRectangle `json:"rectangles"`
	Headers    jsonHeaders     `json:"headers"`
}

type jsonRectangle struct {
	HStart  int    `json:"h_start"`
	HEnd    int    `json:"h_end"`
	VStart  int    `json:"v_start"`
	VEnd    int    `json:"v_end"`
	Content string `json:"content"`
	Style   string `json:"style,omitempty"`
}

type jsonHeaders struct {
	Horizontal []jsonBand `json:"horizontal"`
	Vertical   []jsonBand `json:"vertical"`
}

type jsonBand struct {
	Dimension string       `json:"dimension"`
	Cells     []jsonHeader `json:"cells"`
}

type jsonHeader struct {
	Start int    `json:"start"`
	Span  int    `json:"span"`
	Label string `json:"label"`
	Style string `json:"style,omitempty"`
}

// RenderJSON exports the partition in body coordinates, without the header
// offsets of a [render.Table], plus the header bands of both axes. This is
// also the response body of the HTTP partition endpoint.
//
// [render.Table]: github.com/matzehuels/hypercube/pkg/render.Table
func RenderJSON(c *hypercube.Cube, placements []hypercube.Placement) ([]byte, error) {
	out := jsonOutput{
		Width:      c.Width(),
		Height:     c.Height(),
		Rectangles: make([]jsonRectangle, len(placements)),
		Headers: jsonHeaders{
			Horizontal: bands(c.Headers(hypercube.Horizontal)),
			Vertical:   bands(c.Headers(hypercube.Vertical)),
		},
	}
	for i, p := range placements {
		out.Rectangles[i] = jsonRectangle{
			HStart: p.Rect.HStart, HEnd: p.Rect.HEnd,
			VStart: p.Rect.VStart, VEnd: p.Rect.VEnd,
			Content: p.Payload.Content, Style: p.Payload.Style,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}

func bands(hb []hypercube.HeaderBand) []jsonBand {
	out := make([]jsonBand, len(hb))
	for i, b := range hb {
		cells := make([]jsonHeader, len(b.Cells))
		for j, h := range b.Cells {
			cells[j] = jsonHeader{Start: h.Start, Span: h.Span, Label: h.Value.Label, Style: h.Value.Style}
		}
		out[i] = jsonBand{Dimension: b.Dimension, Cells: cells}
	}
	return out
}
