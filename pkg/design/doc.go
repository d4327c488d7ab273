// Package design loads declarative court designs.
//
// A design file names the generator inputs and an ordered list of edits. YAML
// and TOML are accepted; the format follows the file extension.
//
//	name: club court
//	width: 10
//	length: 15
//	end_height: 3
//	side_height: 3
//	ops:
//	  - op: toggle_gate
//	    wall: side1
//	    index: 2
//	  - op: set_wall_height
//	    wall: end2
//	    height: 4
//
// The same design in TOML:
//
//	name = "club court"
//	width = 10
//	length = 15
//	end_height = 3
//	side_height = 3
//
//	[[ops]]
//	op = "toggle_gate"
//	wall = "side1"
//	index = 2
//
// [Design.Build] generates the court and applies each op in turn. An op the
// edit engine rejects leaves the court unchanged, exactly as it would in the
// interactive editor; Build reports it in [Result.Rejected] instead of
// failing, so a design stays loadable after the generator rules change.
package design
