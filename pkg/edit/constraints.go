package edit

import (
	"math"

	"github.com/matzehuels/arena/pkg/court"
)

// MinChicaneClearance is the minimum run of wall, in meters, between a
// chicane and the nearest goal in the same wall.
const MinChicaneClearance = 2.0

// AdjacentToGoal reports whether the section at index i sits directly next
// to a Goal.
func AdjacentToGoal(w court.Wall, i int) bool {
	if i > 0 && court.IsGoal(w[i-1]) {
		return true
	}
	return i+1 < len(w) && court.IsGoal(w[i+1])
}

// HeightCap returns the tallest height allowed for the section at index i.
func HeightCap(w court.Wall, i int) int {
	if AdjacentToGoal(w, i) {
		return court.GoalAdjacentMax
	}
	return court.MaxHeight
}

// DistanceToGoal returns the run of wall between the section at index i and
// the nearest Goal in the same wall, summing the widths of the sections in
// between. It returns +Inf when the wall holds no goal on either side.
func DistanceToGoal(w court.Wall, i int) float64 {
	left, foundLeft := 0.0, false
	for j := i - 1; j >= 0; j-- {
		if court.IsGoal(w[j]) {
			foundLeft = true
			break
		}
		left += w[j].Width()
	}
	right, foundRight := 0.0, false
	for j := i + 1; j < len(w); j++ {
		if court.IsGoal(w[j]) {
			foundRight = true
			break
		}
		right += w[j].Width()
	}
	switch {
	case foundLeft && foundRight:
		return math.Min(left, right)
	case foundLeft:
		return left
	case foundRight:
		return right
	}
	return math.Inf(1)
}

// SelectionValid reports whether a (wall, index) selection still refers to a
// section of c. Callers holding a selection across edits that change the
// section count must clear it when this returns false.
func SelectionValid(c *court.Court, wall court.WallID, index int) bool {
	_, ok := c.Section(wall, index)
	return ok
}

// Capabilities describes which edits are legal for one selected section.
// Interactive editors use it to offer only actions that will take effect.
type Capabilities struct {
	Kind           court.Kind
	AdjacentToGoal bool
	DistanceToGoal float64
	MaxHeight      int  // 0 when the height is fixed
	CanSetHeight   bool
	CanToggleGate  bool
	CanChicane     bool
	CanMiniGoal    bool
	HasArch        bool
}

// Inspect reports the capabilities of the section at (wall, index). The
// zero Capabilities is returned for an invalid selection.
func Inspect(c *court.Court, wall court.WallID, index int) Capabilities {
	s, ok := c.Section(wall, index)
	if !ok {
		return Capabilities{}
	}
	w := c.Sections(wall)
	caps := Capabilities{
		Kind:           s.Kind(),
		AdjacentToGoal: AdjacentToGoal(w, index),
		DistanceToGoal: DistanceToGoal(w, index),
		HasArch:        court.ArchOf(s) != nil,
	}
	caps.CanSetHeight = checkSetSectionHeight(c, wall, index, court.MinHeight) == nil
	if caps.CanSetHeight {
		caps.MaxHeight = HeightCap(w, index)
	}
	caps.CanToggleGate = checkToggleGate(c, wall, index) == nil
	caps.CanChicane = checkToggleChicane(c, wall, index) == nil
	caps.CanMiniGoal = checkToggleMiniGoal(c, wall, index) == nil
	return caps
}
