package plan

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/render"
)

// View selects what the drawing shows.
type View string

const (
	// ViewPlan is a top-down drawing of the four walls.
	ViewPlan View = "plan"
	// ViewElevation draws each wall face-on, one row per wall.
	ViewElevation View = "elevation"
)

// DefaultScale is the drawing scale in inches per meter.
const DefaultScale = 0.5

const (
	wallThickness = 0.18 // inches, plan view
	rowGap        = 1.2  // meters between elevation rows
)

// Options configures court drawings.
type Options struct {
	View View
	// Scale is inches per meter. Zero means DefaultScale.
	Scale float64
	// Detailed adds heights to section labels.
	Detailed bool
}

var kindColors = map[court.Kind]string{
	court.KindPanel:        "white",
	court.KindGoal:         "#e76f51",
	court.KindCurvedCorner: "#a8dadc",
	court.KindMiniGoal:     "#f4a261",
	court.KindGate:         "#2a9d8f",
	court.KindChicane:      "#e9c46a",
}

// box is one section placed on the drawing, in meters.
type box struct {
	id       string
	s        court.Section
	x, y     float64 // center
	w, h     float64
	vertical bool
}

// ToDOT converts a court to Graphviz DOT. Every section becomes a pinned box
// so the neato engine reproduces the geometry exactly. The result can be
// rendered with [RenderSVG], [RenderPDF] or [RenderPNG].
func ToDOT(c *court.Court, opts Options) string {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	var boxes []box
	if opts.View == ViewElevation {
		boxes = elevation(c)
	} else {
		boxes = planBoxes(c, opts.Scale)
	}

	var buf bytes.Buffer
	buf.WriteString("graph court {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=box, style=filled, fixedsize=true, fontsize=9, fontname=\"Helvetica\", penwidth=0.8];\n")
	fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=14;\n", c.String())
	buf.WriteString("\n")

	for _, b := range boxes {
		fmt.Fprintf(&buf, "  %q [%s];\n", b.id, strings.Join(fmtAttrs(b, opts), ", "))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(b box, opts Options) []string {
	w, h := b.w*opts.Scale, b.h*opts.Scale
	if b.vertical {
		w, h = h, w
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(b.s, opts.Detailed)),
		fmt.Sprintf("pos=\"%.3f,%.3f!\"", b.x*opts.Scale, b.y*opts.Scale),
		fmt.Sprintf("width=%.3f", w),
		fmt.Sprintf("height=%.3f", h),
		fmt.Sprintf("fillcolor=%q", kindColors[b.s.Kind()]),
	}
	if court.ArchOf(b.s) != nil {
		attrs = append(attrs, "style=\"filled,dashed\"")
	}
	return attrs
}

func fmtLabel(s court.Section, detailed bool) string {
	if detailed {
		return s.String()
	}
	switch s.Kind() {
	case court.KindPanel:
		return fmt.Sprintf("%dm", int(s.Width()))
	case court.KindCurvedCorner:
		return ""
	}
	return s.Kind().Label()
}

// planBoxes lays the walls out around the court rectangle: end1 along the
// top, end2 along the bottom, side1 down the left and side2 down the right.
func planBoxes(c *court.Court, scale float64) []box {
	t := wallThickness / scale
	var out []box
	row := func(id court.WallID, y float64) {
		x := 0.0
		for i, s := range c.Sections(id) {
			w := s.Width()
			out = append(out, box{id: nodeID(id, i), s: s, x: x + w/2, y: y, w: w, h: t})
			x += w
		}
	}
	row(court.End1, c.Length)
	if c.Standalone {
		return out
	}
	row(court.End2, 0)

	start := c.Length - c.Corner.Allowance()/2
	col := func(id court.WallID, x float64) {
		y := start
		for i, s := range c.Sections(id) {
			w := s.Width()
			out = append(out, box{id: nodeID(id, i), s: s, x: x, y: y - w/2, w: w, h: t, vertical: true})
			y -= w
		}
	}
	col(court.Side1, 0)
	col(court.Side2, c.Width)
	return out
}

// elevation stacks the walls as rows of section faces, bottoms aligned.
func elevation(c *court.Court) []box {
	var out []box
	base := 0.0
	ids := c.WallIDs()
	for k := len(ids) - 1; k >= 0; k-- {
		id := ids[k]
		x := 0.0
		top := 0
		for i, s := range c.Sections(id) {
			w, h := s.Width(), float64(s.Height())
			out = append(out, box{id: nodeID(id, i), s: s, x: x + w/2, y: base + h/2, w: w, h: h})
			x += w
			top = max(top, s.Height())
		}
		base += float64(top) + rowGap
	}
	return out
}

func nodeID(id court.WallID, i int) string {
	return fmt.Sprintf("%s_%d", id, i)
}

// RenderSVG renders a DOT drawing to SVG using Graphviz's neato engine,
// which honors the pinned positions written by [ToDOT].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Render draws c in the requested format. PDF and PNG need rsvg-convert.
func Render(ctx context.Context, c *court.Court, opts Options, f render.Format, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, ToDOT(c, opts))
	if err != nil {
		return nil, err
	}
	return render.Convert(ctx, svg, f, scale)
}

// RenderPDF renders a DOT drawing as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT drawing as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
