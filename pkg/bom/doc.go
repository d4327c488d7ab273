// Package bom derives the bill of materials for a court.
//
// [Calculate] walks every wall twice. The first pass adds the parts of each
// section (bar panels, mesh panels, arch panels, gate leaves, chicane frames
// with their two synthesized rebound panels, curved corner pieces). The second
// pass places posts at every boundary between sections and at both wall ends,
// skipping boundaries that touch a goal since the goal frame brings its own.
//
// Corner posts of a right-angle court are shared by the two walls that meet
// there. Each wall adds half a post; halves are summed across the court and
// rounded up once at the end. Quantities are tracked in half units
// internally, so the result is exact.
//
// Part names are symbolic, e.g. "Bar Panel 2m", "Post 3m",
// "Gate 2m (in 2m frame)". Items with a zero quantity are never returned.
//
// # Export
//
// [Rows] feeds table renderers. [WriteCSV], [WriteJSON] and [WriteXLSX] write
// the list in the matching format; [WriteHTMLChart] writes a standalone HTML
// bar chart of quantities.
package bom
