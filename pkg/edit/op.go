package edit

import (
	"fmt"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/errors"
)

// OpKind names an edit operation.
type OpKind string

const (
	OpSetSectionHeight   OpKind = "set_section_height"
	OpToggleGate         OpKind = "toggle_gate"
	OpToggleChicane      OpKind = "toggle_chicane"
	OpToggleMiniGoal     OpKind = "toggle_mini_goal"
	OpSetWallHeight      OpKind = "set_wall_height"
	OpAppendSection      OpKind = "append_section"
	OpAppendCurvedCorner OpKind = "append_curved_corner"
)

// OpKinds lists every operation kind.
var OpKinds = []OpKind{
	OpSetSectionHeight,
	OpToggleGate,
	OpToggleChicane,
	OpToggleMiniGoal,
	OpSetWallHeight,
	OpAppendSection,
	OpAppendCurvedCorner,
}

// Op is a serializable edit request. Only the fields the kind uses are read:
//
//	set_section_height    wall, index, height
//	toggle_gate           wall, index
//	toggle_chicane        wall, index
//	toggle_mini_goal      wall, index
//	set_wall_height       wall, height
//	append_section        side, width, height
//	append_curved_corner  side, height
type Op struct {
	Kind   OpKind       `json:"op" yaml:"op" toml:"op"`
	Wall   court.WallID `json:"wall,omitempty" yaml:"wall,omitempty" toml:"wall,omitempty"`
	Index  int          `json:"index,omitempty" yaml:"index,omitempty" toml:"index,omitempty"`
	Side   court.Side   `json:"side,omitempty" yaml:"side,omitempty" toml:"side,omitempty"`
	Width  int          `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height int          `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
}

// Apply runs the edit against c. It returns c unchanged and false when the
// edit is rejected, including when the kind is unknown.
func (o Op) Apply(c *court.Court) (*court.Court, bool) {
	switch o.Kind {
	case OpSetSectionHeight:
		return SetSectionHeightResult(c, o.Wall, o.Index, o.Height)
	case OpToggleGate:
		return ToggleGateResult(c, o.Wall, o.Index)
	case OpToggleChicane:
		return ToggleChicaneResult(c, o.Wall, o.Index)
	case OpToggleMiniGoal:
		return ToggleMiniGoalResult(c, o.Wall, o.Index)
	case OpSetWallHeight:
		return SetWallHeightResult(c, o.Wall, o.Height)
	case OpAppendSection:
		return AppendSectionResult(c, o.Side, o.Width, o.Height)
	case OpAppendCurvedCorner:
		return AppendCurvedCornerResult(c, o.Side, o.Height)
	}
	return c, false
}

// Check explains why Apply would reject the edit. It returns nil when the
// edit would take effect, and an INVALID_MUTATION error otherwise.
func (o Op) Check(c *court.Court) error {
	switch o.Kind {
	case OpSetSectionHeight:
		return checkSetSectionHeight(c, o.Wall, o.Index, o.Height)
	case OpToggleGate:
		return checkToggleGate(c, o.Wall, o.Index)
	case OpToggleChicane:
		return checkToggleChicane(c, o.Wall, o.Index)
	case OpToggleMiniGoal:
		return checkToggleMiniGoal(c, o.Wall, o.Index)
	case OpSetWallHeight:
		return checkSetWallHeight(c, o.Wall, o.Height)
	case OpAppendSection:
		return checkAppendSection(c, o.Side, o.Width, o.Height)
	case OpAppendCurvedCorner:
		return checkAppendCurvedCorner(c, o.Side, o.Height)
	}
	return errors.New(errors.ErrCodeInvalidMutation, "unknown operation %q", o.Kind)
}

// String formats the op for logs, e.g. "toggle_gate end1[2]".
func (o Op) String() string {
	switch o.Kind {
	case OpSetSectionHeight:
		return fmt.Sprintf("%s %s[%d]=%dm", o.Kind, o.Wall, o.Index, o.Height)
	case OpToggleGate, OpToggleChicane, OpToggleMiniGoal:
		return fmt.Sprintf("%s %s[%d]", o.Kind, o.Wall, o.Index)
	case OpSetWallHeight:
		return fmt.Sprintf("%s %s=%dm", o.Kind, o.Wall, o.Height)
	case OpAppendSection:
		return fmt.Sprintf("%s %s %dm/%dm", o.Kind, o.Side, o.Width, o.Height)
	case OpAppendCurvedCorner:
		return fmt.Sprintf("%s %s %dm", o.Kind, o.Side, o.Height)
	}
	return string(o.Kind)
}

// ApplyAll applies ops in order, each to the result of the previous one.
// applied[i] reports whether ops[i] took effect.
func ApplyAll(c *court.Court, ops []Op) (out *court.Court, applied []bool) {
	out = c
	applied = make([]bool, len(ops))
	for i, op := range ops {
		out, applied[i] = op.Apply(out)
	}
	return out, applied
}

// ParseOpKind converts a name to an OpKind.
func ParseOpKind(s string) (OpKind, error) {
	for _, k := range OpKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown operation %q", s)
}
