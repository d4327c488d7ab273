// Package io provides JSON import and export for courts.
//
// # JSON Format
//
// A court is an object with its dimensions and a map of walls. Each wall is
// an array of sections, left to right:
//
//	{
//	  "width": 10,
//	  "length": 15,
//	  "corner_type": "curved",
//	  "end_height": 3,
//	  "side_height": 3,
//	  "walls": {
//	    "end1": [
//	      {"type": "curved_corner", "width": 0.5, "height": 3},
//	      {"type": "panel", "width": 2, "height": 2,
//	       "arch": {"base_level": 1, "goal_height": 2, "outer_height": 1, "goal_side": "left"}},
//	      {"type": "goal", "width": 3, "height": 3}
//	    ],
//	    "side1": [...]
//	  }
//	}
//
// Section types are panel, goal, curved_corner, mini_goal, gate and chicane.
// Width and height are written for every section. On import the width of a
// fixed-size section may be omitted; if present it must match. A mini goal
// carries an optional prev_height, the height of the panel it replaced.
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode and then validate the court, so a
// successfully imported court satisfies the same invariants as one produced by
// the generator. [CourtDoc.Decode] does the same for a document embedded in a
// larger request body.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write indented JSON. [Marshal] and [Unmarshal]
// are the compact forms used for cache entries.
package io
