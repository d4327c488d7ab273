package edit

import (
	"fmt"
	"strings"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/errors"
)

// =============================================================================
// Per-section edits
// =============================================================================

// SetSectionHeight sets the height of one section. It returns c unchanged when
// the section is a Goal, a MiniGoal or an arched Panel, when h is outside
// 1..4, or when h exceeds the cap next to a goal (3m).
func SetSectionHeight(c *court.Court, wall court.WallID, index, h int) *court.Court {
	out, _ := SetSectionHeightResult(c, wall, index, h)
	return out
}

// SetSectionHeightResult is SetSectionHeight that also reports whether the
// edit took effect.
func SetSectionHeightResult(c *court.Court, wall court.WallID, index, h int) (*court.Court, bool) {
	if checkSetSectionHeight(c, wall, index, h) != nil {
		return c, false
	}
	out := c.Clone()
	out.Walls[wall][index] = withHeight(out.Walls[wall][index], h)
	return out, true
}

// ToggleGate converts a plain width-2 Panel into a Gate of the same height,
// or a Gate back into a Panel.
func ToggleGate(c *court.Court, wall court.WallID, index int) *court.Court {
	out, _ := ToggleGateResult(c, wall, index)
	return out
}

// ToggleGateResult is ToggleGate that also reports whether the edit took effect.
func ToggleGateResult(c *court.Court, wall court.WallID, index int) (*court.Court, bool) {
	if checkToggleGate(c, wall, index) != nil {
		return c, false
	}
	out := c.Clone()
	switch s := out.Walls[wall][index].(type) {
	case court.Gate:
		out.Walls[wall][index] = court.Panel{W: 2, H: s.H}
	case court.Panel:
		out.Walls[wall][index] = court.Gate{H: s.H}
	}
	return out, true
}

// ToggleChicane converts a plain width-2 Panel at least 2m from the nearest
// goal into a Chicane, or a Chicane back into a Panel.
func ToggleChicane(c *court.Court, wall court.WallID, index int) *court.Court {
	out, _ := ToggleChicaneResult(c, wall, index)
	return out
}

// ToggleChicaneResult is ToggleChicane that also reports whether the edit
// took effect.
func ToggleChicaneResult(c *court.Court, wall court.WallID, index int) (*court.Court, bool) {
	if checkToggleChicane(c, wall, index) != nil {
		return c, false
	}
	out := c.Clone()
	switch s := out.Walls[wall][index].(type) {
	case court.Chicane:
		out.Walls[wall][index] = court.Panel{W: 2, H: s.H}
	case court.Panel:
		out.Walls[wall][index] = court.Chicane{H: s.H}
	}
	return out, true
}

// ToggleMiniGoal replaces a plain width-2 Panel with a MiniGoal, or reverts a
// MiniGoal to a Panel at the height it replaced (at least 1m).
func ToggleMiniGoal(c *court.Court, wall court.WallID, index int) *court.Court {
	out, _ := ToggleMiniGoalResult(c, wall, index)
	return out
}

// ToggleMiniGoalResult is ToggleMiniGoal that also reports whether the edit
// took effect.
func ToggleMiniGoalResult(c *court.Court, wall court.WallID, index int) (*court.Court, bool) {
	if checkToggleMiniGoal(c, wall, index) != nil {
		return c, false
	}
	out := c.Clone()
	switch s := out.Walls[wall][index].(type) {
	case court.MiniGoal:
		out.Walls[wall][index] = court.Panel{W: 2, H: max(s.Prev, court.MinHeight)}
	case court.Panel:
		out.Walls[wall][index] = court.MiniGoal{Prev: s.H}
	}
	return out, true
}

// =============================================================================
// Checks
// =============================================================================

func lookup(c *court.Court, wall court.WallID, index int) (court.Section, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidMutation, "no court")
	}
	s, ok := c.Section(wall, index)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidMutation, "no section at %s[%d]", wall, index)
	}
	return s, nil
}

func rejectf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidMutation, format, args...)
}

func checkSetSectionHeight(c *court.Court, wall court.WallID, index, h int) error {
	s, err := lookup(c, wall, index)
	if err != nil {
		return err
	}
	switch v := s.(type) {
	case court.Goal:
		return rejectf("goal height is fixed at %dm", court.GoalHeight)
	case court.MiniGoal:
		return rejectf("mini goal height is fixed at %dm", court.MiniGoalHeight)
	case court.Panel:
		if v.Arch != nil {
			return rejectf("arched panel height is fixed")
		}
	}
	if h < court.MinHeight || h > court.MaxHeight {
		return rejectf("height %dm outside %d-%dm", h, court.MinHeight, court.MaxHeight)
	}
	if limit := HeightCap(c.Sections(wall), index); h > limit {
		return rejectf("height %dm exceeds %dm next to a goal", h, limit)
	}
	return nil
}

// plainPanel reports whether s is a width-2 Panel without an arch.
func plainPanel(s court.Section) bool {
	p, ok := s.(court.Panel)
	return ok && p.W == 2 && p.Arch == nil
}

func checkToggleGate(c *court.Court, wall court.WallID, index int) error {
	s, err := lookup(c, wall, index)
	if err != nil {
		return err
	}
	if _, ok := s.(court.Gate); ok || plainPanel(s) {
		return nil
	}
	return rejectf("%s at %s[%d] cannot become a gate", describe(s), wall, index)
}

func checkToggleChicane(c *court.Court, wall court.WallID, index int) error {
	s, err := lookup(c, wall, index)
	if err != nil {
		return err
	}
	if _, ok := s.(court.Chicane); ok {
		return nil
	}
	if !plainPanel(s) {
		return rejectf("%s at %s[%d] cannot become a chicane", describe(s), wall, index)
	}
	if d := DistanceToGoal(c.Sections(wall), index); d < MinChicaneClearance {
		return rejectf("chicane at %s[%d] is %gm from the goal, needs %gm", wall, index, d, MinChicaneClearance)
	}
	return nil
}

func checkToggleMiniGoal(c *court.Court, wall court.WallID, index int) error {
	s, err := lookup(c, wall, index)
	if err != nil {
		return err
	}
	if _, ok := s.(court.MiniGoal); ok || plainPanel(s) {
		return nil
	}
	return rejectf("%s at %s[%d] cannot become a mini goal", describe(s), wall, index)
}

// describe names a section for rejection messages.
func describe(s court.Section) string {
	if p, ok := s.(court.Panel); ok {
		if p.Arch != nil {
			return "arched panel"
		}
		return fmt.Sprintf("%dm panel", p.W)
	}
	return strings.ToLower(s.Kind().Label())
}

// withHeight returns s at height h. Goals and mini goals are returned as is.
func withHeight(s court.Section, h int) court.Section {
	switch v := s.(type) {
	case court.Panel:
		v.H = h
		return v
	case court.CurvedCorner:
		v.H = h
		return v
	case court.Gate:
		v.H = h
		return v
	case court.Chicane:
		v.H = h
		return v
	}
	return s
}
