// Package plan draws courts with Graphviz.
//
// [ToDOT] emits an undirected graph with one pinned, fixed-size box per
// section. Boxes are scaled from meters to inches ([Options.Scale]) and
// filled by section kind; arched panels get a dashed outline. Two views are
// available:
//
//   - [ViewPlan] draws the court from above. end1 runs along the top edge
//     and end2 along the bottom, both left to right; side1 and side2 run top
//     to bottom down the left and right edges, inset by half the corner
//     allowance.
//   - [ViewElevation] draws every wall face-on, one row per wall with end1
//     at the top, so section heights and arches can be compared.
//
// [RenderSVG] lays the graph out with the neato engine (which keeps pinned
// positions) through the embedded go-graphviz runtime, so SVG output needs no
// system Graphviz install. [RenderPDF] and [RenderPNG] convert that SVG with
// rsvg-convert.
//
//	dot := plan.ToDOT(c, plan.Options{View: plan.ViewElevation, Detailed: true})
//	svg, err := plan.RenderSVG(ctx, dot)
package plan
