package edit

import (
	"github.com/matzehuels/arena/pkg/court"
)

// =============================================================================
// Whole-wall edits
// =============================================================================

// SetWallHeight applies h to every section of a wall except goals and arched
// panels. Sections next to a goal are capped at 3m. A MiniGoal stays 1m high
// but remembers h (capped) as the height it reverts to. Once both end walls
// (or both side walls) stand at h, the court's EndHeight (or SideHeight)
// becomes h.
func SetWallHeight(c *court.Court, wall court.WallID, h int) *court.Court {
	out, _ := SetWallHeightResult(c, wall, h)
	return out
}

// SetWallHeightResult is SetWallHeight that also reports whether the edit
// took effect.
func SetWallHeightResult(c *court.Court, wall court.WallID, h int) (*court.Court, bool) {
	if checkSetWallHeight(c, wall, h) != nil {
		return c, false
	}
	out := c.Clone()
	w := out.Walls[wall]
	for i, s := range w {
		capped := min(h, HeightCap(w, i))
		switch v := s.(type) {
		case court.Goal:
		case court.MiniGoal:
			v.Prev = capped
			w[i] = v
		case court.Panel:
			if v.Arch == nil {
				v.H = capped
				w[i] = v
			}
		default:
			w[i] = withHeight(s, capped)
		}
	}
	syncCourtHeights(out, wall, h)
	return out, true
}

// syncCourtHeights updates Court.EndHeight or Court.SideHeight to h once
// every wall of the edited kind stands at h.
func syncCourtHeights(c *court.Court, edited court.WallID, h int) {
	for _, id := range c.WallIDs() {
		if id.IsEnd() != edited.IsEnd() {
			continue
		}
		if !wallAt(c.Walls[id], h) {
			return
		}
	}
	if edited.IsEnd() {
		c.EndHeight = h
	} else {
		c.SideHeight = h
	}
}

// wallAt reports whether every adjustable section of w has the height
// SetWallHeight would give it for h.
func wallAt(w court.Wall, h int) bool {
	for i, s := range w {
		switch v := s.(type) {
		case court.Goal, court.MiniGoal:
			continue
		case court.Panel:
			if v.Arch != nil {
				continue
			}
		}
		if s.Height() != min(h, HeightCap(w, i)) {
			return false
		}
	}
	return true
}

// AppendSection adds a panel of the given width (1 or 2) and height to the
// left or right end of a standalone end wall and recomputes the court width.
// It is rejected on a full court, on an end that already finishes with a
// curved corner, and above 3m when the new panel would touch the goal.
func AppendSection(c *court.Court, side court.Side, width, height int) *court.Court {
	out, _ := AppendSectionResult(c, side, width, height)
	return out
}

// AppendSectionResult is AppendSection that also reports whether the edit
// took effect.
func AppendSectionResult(c *court.Court, side court.Side, width, height int) (*court.Court, bool) {
	if checkAppendSection(c, side, width, height) != nil {
		return c, false
	}
	return appendAt(c, side, court.Panel{W: width, H: height}), true
}

// AppendCurvedCorner finishes one end of a standalone end wall with a curved
// corner. It is rejected when that end already has a corner or is the goal
// itself.
func AppendCurvedCorner(c *court.Court, side court.Side, height int) *court.Court {
	out, _ := AppendCurvedCornerResult(c, side, height)
	return out
}

// AppendCurvedCornerResult is AppendCurvedCorner that also reports whether the
// edit took effect.
func AppendCurvedCornerResult(c *court.Court, side court.Side, height int) (*court.Court, bool) {
	if checkAppendCurvedCorner(c, side, height) != nil {
		return c, false
	}
	return appendAt(c, side, court.CurvedCorner{H: height}), true
}

// EndState describes one end of a standalone end wall for a builder UI.
type EndState struct {
	HasCorner      bool
	AdjacentToGoal bool
	MaxHeight      int // tallest panel that may be appended
}

// Ends reports the left and right end state of a standalone end wall.
func Ends(c *court.Court) (left, right EndState) {
	return endState(c, court.SideLeft), endState(c, court.SideRight)
}

func endState(c *court.Court, side court.Side) EndState {
	s := endSection(c, side)
	st := EndState{MaxHeight: court.MaxHeight}
	if s == nil {
		return st
	}
	_, st.HasCorner = s.(court.CurvedCorner)
	st.AdjacentToGoal = court.IsGoal(s)
	if st.AdjacentToGoal {
		st.MaxHeight = court.GoalAdjacentMax
	}
	return st
}

// endSection returns the outermost section at side of the standalone wall.
func endSection(c *court.Court, side court.Side) court.Section {
	w := c.Sections(court.End1)
	if len(w) == 0 {
		return nil
	}
	if side == court.SideLeft {
		return w[0]
	}
	return w[len(w)-1]
}

func appendAt(c *court.Court, side court.Side, s court.Section) *court.Court {
	out := c.Clone()
	w := out.Walls[court.End1]
	if side == court.SideLeft {
		w = append(court.Wall{s}, w...)
	} else {
		w = append(w, s)
	}
	out.Walls[court.End1] = w
	out.Width = w.Span()
	return out
}

// =============================================================================
// Checks
// =============================================================================

func checkSetWallHeight(c *court.Court, wall court.WallID, h int) error {
	if c == nil {
		return rejectf("no court")
	}
	if _, ok := c.Walls[wall]; !ok {
		return rejectf("no wall %s", wall)
	}
	if h < court.MinHeight || h > court.MaxHeight {
		return rejectf("height %dm outside %d-%dm", h, court.MinHeight, court.MaxHeight)
	}
	return nil
}

func checkAppendEnd(c *court.Court, side court.Side) (EndState, error) {
	if c == nil || !c.Standalone {
		return EndState{}, rejectf("sections can only be appended to a standalone end wall")
	}
	if !side.Valid() {
		return EndState{}, rejectf("side %q is not left or right", side)
	}
	st := endState(c, side)
	if st.HasCorner {
		return st, rejectf("%s end already finishes with a curved corner", side)
	}
	return st, nil
}

func checkAppendSection(c *court.Court, side court.Side, width, height int) error {
	st, err := checkAppendEnd(c, side)
	if err != nil {
		return err
	}
	if width != 1 && width != 2 {
		return rejectf("panel width %dm is not 1 or 2", width)
	}
	if height < court.MinHeight || height > court.MaxHeight {
		return rejectf("height %dm outside %d-%dm", height, court.MinHeight, court.MaxHeight)
	}
	if height > st.MaxHeight {
		return rejectf("height %dm exceeds %dm next to a goal", height, st.MaxHeight)
	}
	return nil
}

func checkAppendCurvedCorner(c *court.Court, side court.Side, height int) error {
	st, err := checkAppendEnd(c, side)
	if err != nil {
		return err
	}
	if st.AdjacentToGoal {
		return rejectf("a curved corner cannot touch the goal")
	}
	if height < court.MinHeight || height > court.MaxHeight {
		return rejectf("height %dm outside %d-%dm", height, court.MinHeight, court.MaxHeight)
	}
	return nil
}
