package court

import (
	"fmt"
	"math"

	"github.com/matzehuels/arena/pkg/errors"
)

// Tile fills span meters with width-2 panels followed by at most one width-1
// panel, all at the given height. A remainder below 1m is dropped: the span is
// rounded down to whole meters of panel coverage.
func Tile(span float64, height int) []Section {
	if span <= 0 {
		return nil
	}
	twos := int(math.Floor(span / 2))
	out := make([]Section, 0, twos+1)
	for i := 0; i < twos; i++ {
		out = append(out, Panel{W: 2, H: height})
	}
	if span-float64(2*twos) >= 1 {
		out = append(out, Panel{W: 1, H: height})
	}
	return out
}

// EndWall generates one end wall: corners (when curved), a panel run, the
// goal, and a mirrored panel run. The panel touching the goal on each side
// gets the transition treatment described on transition.
func EndWall(width float64, endHeight, sideHeight int, corner CornerType) Wall {
	panelSpace := (width - GoalWidth - corner.Allowance()) / 2

	left := Tile(panelSpace, endHeight)
	if n := len(left); n > 0 {
		left[n-1] = transition(left[n-1], endHeight, SideRight)
	}
	right := Tile(panelSpace, endHeight)
	if len(right) > 0 {
		right[0] = transition(right[0], endHeight, SideLeft)
	}

	wall := make(Wall, 0, len(left)+len(right)+3)
	if corner == CornerCurved {
		wall = append(wall, CurvedCorner{H: max(endHeight, sideHeight)})
	}
	wall = append(wall, left...)
	wall = append(wall, Goal{})
	wall = append(wall, right...)
	if corner == CornerCurved {
		wall = append(wall, CurvedCorner{H: max(endHeight, sideHeight)})
	}
	return wall
}

// transition adjusts the panel touching a goal. goalSide is the side of the
// panel that faces the goal.
//
// Width-1 panels are left exactly as tiled, even above 3m.
func transition(s Section, endHeight int, goalSide Side) Section {
	p, ok := s.(Panel)
	if !ok || p.W != 2 {
		return s
	}
	switch {
	case endHeight == 2:
		p.Arch = &ArchInfo{BaseLevel: 1, GoalHeight: 2, OuterHeight: 1, GoalSide: goalSide}
	case endHeight == 4:
		p.H = 4
		p.Arch = &ArchInfo{BaseLevel: 2, GoalHeight: 1, OuterHeight: 2, GoalSide: goalSide}
	case endHeight > GoalAdjacentMax:
		p.H = GoalAdjacentMax
	}
	return p
}

// SideWall generates one side wall: a plain panel run over the length minus
// the corner allowance.
func SideWall(length float64, sideHeight int, corner CornerType) Wall {
	return Wall(Tile(length-corner.Allowance(), sideHeight))
}

// CornerFor returns the corner style for a court width: curved when even,
// right-angle when odd.
func CornerFor(width int) CornerType {
	if width%2 == 0 {
		return CornerCurved
	}
	return CornerRightAngle
}

// Generate builds a full four-wall court. Width and length are whole meters,
// heights are whole meters in 1..4. Invalid input yields a validation error
// (see errors.IsValidation) and no court.
func Generate(width, length, endHeight, sideHeight int) (*Court, error) {
	if err := errors.ValidateWidth(width); err != nil {
		return nil, err
	}
	if err := errors.ValidateLength(length); err != nil {
		return nil, err
	}
	if err := errors.ValidateHeight("end wall height", endHeight); err != nil {
		return nil, err
	}
	if err := errors.ValidateHeight("side wall height", sideHeight); err != nil {
		return nil, err
	}

	corner := CornerFor(width)
	w, l := float64(width), float64(length)
	return &Court{
		Width:      w,
		Length:     l,
		Corner:     corner,
		EndHeight:  endHeight,
		SideHeight: sideHeight,
		Walls: map[WallID]Wall{
			End1:  EndWall(w, endHeight, sideHeight, corner),
			End2:  EndWall(w, endHeight, sideHeight, corner),
			Side1: SideWall(l, sideHeight, corner),
			Side2: SideWall(l, sideHeight, corner),
		},
	}, nil
}

// SizeWarnings lists the reasons a valid court size is unusually large,
// or nil. Large courts are still generated.
func SizeWarnings(width, length int) []string {
	var out []string
	if width > errors.LargeWidth {
		out = append(out, fmt.Sprintf("width %dm is above %dm, check the site plan", width, errors.LargeWidth))
	}
	if length > errors.LargeLength {
		out = append(out, fmt.Sprintf("length %dm is above %dm, check the site plan", length, errors.LargeLength))
	}
	return out
}

// GenerateStandalone returns the starting point for building a single end
// wall by hand: one wall holding only a goal.
func GenerateStandalone() *Court {
	return &Court{
		Width:      GoalWidth,
		Length:     0,
		Corner:     CornerNone,
		EndHeight:  GoalHeight,
		SideHeight: 0,
		Standalone: true,
		Walls: map[WallID]Wall{
			End1: {Goal{}},
		},
	}
}
