// Package court models a fenced multi-use games enclosure and generates its
// layout from a handful of dimensions.
//
// # Model
//
// A [Court] has up to four walls ([End1], [End2], [Side1], [Side2]). Each
// [Wall] is an ordered run of [Section] values read left to right. Section is
// a closed sum type:
//
//   - [Panel]: a 1m or 2m bar panel with mesh above, optionally carrying an
//     [ArchInfo] when it touches a goal
//   - [Goal]: the fixed 3m goal frame and hoop, one per end wall
//   - [CurvedCorner]: the 0.5m corner piece on curved courts
//   - [MiniGoal], [Gate], [Chicane]: 2m replacements for a plain panel
//
// Courts are snapshots. Nothing mutates a Court once built; package edit
// returns a fresh deep copy for every accepted change.
//
// # Generation
//
// [Generate] derives the corner style from the width (even widths get curved
// corners), validates the dimensions, and builds both end walls and both side
// walls independently from the same inputs:
//
//	c, err := court.Generate(10, 15, 3, 3)
//	if errors.IsValidation(err) {
//	    // width, length or height out of range
//	}
//
// End walls are tiled outward from a central goal by [EndWall]. The panel
// touching the goal on each side follows a transition rule: at wall height 2 a
// width-2 panel gets a rising arch, at height 4 a falling arch, and above 3m
// it is otherwise clamped to the 3m frame height. A width-1 panel touching the
// goal is left as tiled.
//
// [GenerateStandalone] produces a degenerate one-wall court holding only a
// goal, the starting point for building an end wall panel by panel.
package court
