package court

import (
	"fmt"
	"strings"

	"github.com/matzehuels/arena/pkg/errors"
)

// Dimensional constants, in meters.
const (
	GoalWidth       = 3.0
	GoalHeight      = 3
	CornerWidth     = 0.5
	CornerAllowance = 2 * CornerWidth // both corners of one wall
	GoalAdjacentMax = 3               // no plain panel touching a goal rises above the frame
	MiniGoalHeight  = 1

	MinHeight    = errors.MinHeight
	MaxHeight    = errors.MaxHeight
	MinWidthEven = errors.MinWidthEven
	MinWidthOdd  = errors.MinWidthOdd
	MinLength    = errors.MinLength
)

// CornerType is the corner style of a court. It is derived from the width.
type CornerType string

const (
	CornerNone       CornerType = "none"
	CornerCurved     CornerType = "curved"
	CornerRightAngle CornerType = "right-angle"
)

// Allowance returns the span consumed by corner pieces on one wall.
func (c CornerType) Allowance() float64 {
	if c == CornerCurved {
		return CornerAllowance
	}
	return 0
}

// WallID names one of the four walls.
type WallID string

const (
	End1  WallID = "end1"
	End2  WallID = "end2"
	Side1 WallID = "side1"
	Side2 WallID = "side2"
)

// allWalls is the canonical wall order.
var allWalls = []WallID{End1, End2, Side1, Side2}

// IsEnd reports whether w is an end wall (one that carries a goal).
func (w WallID) IsEnd() bool { return w == End1 || w == End2 }

// Label returns a human-readable wall name.
func (w WallID) Label() string {
	switch w {
	case End1:
		return "End Wall 1"
	case End2:
		return "End Wall 2"
	case Side1:
		return "Side Wall 1"
	case Side2:
		return "Side Wall 2"
	}
	return string(w)
}

// ParseWallID converts a wall name to a WallID.
func ParseWallID(s string) (WallID, error) {
	for _, w := range allWalls {
		if string(w) == s {
			return w, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown wall %q (want end1, end2, side1 or side2)", s)
}

// Wall is an ordered run of sections, left to right.
type Wall []Section

// Span returns the sum of section widths.
func (w Wall) Span() float64 {
	var sum float64
	for _, s := range w {
		sum += s.Width()
	}
	return sum
}

// String renders the wall compactly, e.g. "CC/3 P2/3 P1/3 G P2/3 P1/3 CC/3".
func (w Wall) String() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// GoalIndex returns the index of the first Goal in w, or -1.
func (w Wall) GoalIndex() int {
	for i, s := range w {
		if IsGoal(s) {
			return i
		}
	}
	return -1
}

// Court is an immutable snapshot of an enclosure layout. Nothing in this
// module mutates a Court after construction; package edit returns copies.
type Court struct {
	Width      float64
	Length     float64 // 0 for a standalone end wall
	Corner     CornerType
	EndHeight  int // shared end wall height; follows edit.SetWallHeight
	SideHeight int
	Standalone bool
	Walls      map[WallID]Wall
}

// WallIDs returns the IDs of the walls present in c in the order
// end1, end2, side1, side2.
func (c *Court) WallIDs() []WallID {
	ids := make([]WallID, 0, len(c.Walls))
	for _, id := range allWalls {
		if _, ok := c.Walls[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Sections returns the sections of wall id, or nil if the wall does not exist.
// The returned slice must not be modified.
func (c *Court) Sections(id WallID) Wall {
	return c.Walls[id]
}

// Section returns the section at index i of wall id.
func (c *Court) Section(id WallID, i int) (Section, bool) {
	w, ok := c.Walls[id]
	if !ok || i < 0 || i >= len(w) {
		return nil, false
	}
	return w[i], true
}

// GoalCount returns the number of Goal sections across all walls.
func (c *Court) GoalCount() int {
	n := 0
	for _, w := range c.Walls {
		for _, s := range w {
			if IsGoal(s) {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of c.
func (c *Court) Clone() *Court {
	out := *c
	out.Walls = make(map[WallID]Wall, len(c.Walls))
	for id, w := range c.Walls {
		cp := make(Wall, len(w))
		for i, s := range w {
			cp[i] = cloneSection(s)
		}
		out.Walls[id] = cp
	}
	return &out
}

// String renders a compact one-line summary, e.g. "10x15 curved end=3 side=3".
func (c *Court) String() string {
	if c.Standalone {
		return fmt.Sprintf("standalone end wall %gm", c.Width)
	}
	return fmt.Sprintf("%gx%g %s end=%d side=%d", c.Width, c.Length, c.Corner, c.EndHeight, c.SideHeight)
}
