// Package render provides output conversion for court drawings.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [Convert] dispatches on a
// [Format] and passes SVG through untouched, so callers that only need SVG
// never depend on librsvg.
//
//	svg, err := plan.RenderSVG(ctx, plan.ToDOT(c, plan.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Court Plans
//
// The [plan] subpackage draws a court with Graphviz: a top-down plan of the
// four walls, or an elevation of each wall showing section heights.
//
// [plan]: github.com/matzehuels/arena/pkg/render/plan
package render
