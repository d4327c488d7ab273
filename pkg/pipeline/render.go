package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/io"
	"github.com/matzehuels/arena/pkg/render"
	"github.com/matzehuels/arena/pkg/render/plan"
)

// Render generates output artifacts in the requested formats. The SVG is
// drawn once and reused for PNG and PDF conversion.
func Render(ctx context.Context, c *court.Court, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	drawSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = plan.RenderSVG(ctx, plan.ToDOT(c, opts.PlanOptions()))
		return svg, err
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = drawSVG()
		case FormatPNG, FormatPDF:
			if data, err = drawSVG(); err == nil {
				data, err = render.Convert(ctx, data, render.Format(format), opts.Scale)
			}
		case FormatJSON:
			var buf bytes.Buffer
			err = io.WriteJSON(c, &buf)
			data = buf.Bytes()
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
