// Package pkg provides the core libraries for Arena, the games enclosure
// layout tool.
//
// # Overview
//
// Arena turns the dimensions of a multi-use games area into a wall-by-wall
// layout of panels, goals and corners, lets callers edit that layout under a
// set of construction constraints, and aggregates the parts list. The pkg
// directory is organized into three areas:
//
//  1. Domain: [court], [edit], [bom]
//  2. Formats: [io], [design], [render], [render/plan]
//  3. Infrastructure: [pipeline], [cache], [config], [observability],
//     [errors], [httputil], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	width, length, heights (or a design file)
//	         ↓
//	    [court] package (generate the four walls)
//	         ↓
//	    [edit] package (apply ops, reject invalid ones)
//	         ↓
//	    [bom] package (aggregate parts)
//	         ↓
//	    [render/plan] package (Graphviz drawing) → SVG/PDF/PNG
//
// # Quick Start
//
//	c, err := court.Generate(10, 15, 3, 3)
//	if err != nil {
//	    return err
//	}
//	c, ok := edit.ToggleGateResult(c, court.Side1, 3)
//	items := bom.Calculate(c)
//	fmt.Println(bom.Qty(items, bom.Post(3)))
//
// # Main Packages
//
// [court] - The court model: a closed set of section kinds (panel, goal,
// curved corner, mini goal, gate, chicane), the wall generator and the
// structural validator.
//
// [edit] - Clone-on-write mutations with their constraints (height caps next
// to a goal, chicane clearance, standalone appends) and the serializable [edit.Op].
//
// [bom] - Bill of materials aggregation plus CSV, JSON, XLSX and HTML chart
// exports.
//
// [io] - Court JSON encoding. [design] - YAML/TOML design files.
//
// [pipeline] - The cached generate → edit → BOM → render pipeline used by
// the CLI and the HTTP API.
//
// [cache] - File, Redis and null cache backends with content-derived keys.
//
// # Testing
//
//	go test ./pkg/...
//
// [court]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/court
// [edit]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/edit
// [edit.Op]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/edit#Op
// [bom]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/bom
// [io]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/io
// [design]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/design
// [render]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/render
// [render/plan]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/render/plan
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/arena/pkg/buildinfo
package pkg
