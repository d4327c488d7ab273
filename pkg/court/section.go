package court

import "fmt"

// Kind identifies a Section variant.
type Kind string

// Section kinds. The string values are the wire names used by package io.
const (
	KindPanel        Kind = "panel"
	KindGoal         Kind = "goal"
	KindCurvedCorner Kind = "curved_corner"
	KindMiniGoal     Kind = "mini_goal"
	KindGate         Kind = "gate"
	KindChicane      Kind = "chicane"
)

// Kinds lists every section kind in a stable order.
var Kinds = []Kind{KindPanel, KindGoal, KindCurvedCorner, KindMiniGoal, KindGate, KindChicane}

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindPanel:
		return "Panel"
	case KindGoal:
		return "Goal"
	case KindCurvedCorner:
		return "Curved Corner"
	case KindMiniGoal:
		return "Mini Goal"
	case KindGate:
		return "Gate"
	case KindChicane:
		return "Chicane"
	}
	return string(k)
}

// Section is one discrete unit of wall. The set of implementations is closed:
// Panel, Goal, CurvedCorner, MiniGoal, Gate and Chicane.
type Section interface {
	Kind() Kind
	Width() float64
	Height() int
	String() string

	section()
}

// Side names one end of a wall, or the side of a panel that faces the goal.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is left or right.
func (s Side) Valid() bool { return s == SideLeft || s == SideRight }

// ArchInfo describes the curved transition on a width-2 panel that touches a
// Goal. Levels are counted in whole meters from the ground.
type ArchInfo struct {
	BaseLevel   int  `json:"base_level" yaml:"base_level"`     // topmost straight level before the curve begins
	GoalHeight  int  `json:"goal_height" yaml:"goal_height"`   // curve height on the goal side
	OuterHeight int  `json:"outer_height" yaml:"outer_height"` // curve height on the side away from the goal
	GoalSide    Side `json:"goal_side" yaml:"goal_side"`       // which side of the panel faces the goal
}

// Panel is a standard bar panel with mesh above it.
type Panel struct {
	W    int // 1 or 2
	H    int
	Arch *ArchInfo
}

func (p Panel) Kind() Kind { return KindPanel }
func (p Panel) Width() float64 { return float64(p.W) }
func (p Panel) Height() int { return p.H }
func (p Panel) HasArch() bool { return p.Arch != nil }
func (p Panel) section() {}
func (p Panel) String() string {
	if p.Arch != nil {
		return fmt.Sprintf("P%d/%d(arch %s)", p.W, p.H, p.Arch.GoalSide)
	}
	return fmt.Sprintf("P%d/%d", p.W, p.H)
}

// Goal is the fixed goal-and-hoop frame. Exactly one sits in each end wall.
type Goal struct{}

func (Goal) Kind() Kind { return KindGoal }
func (Goal) Width() float64 { return GoalWidth }
func (Goal) Height() int { return GoalHeight }
func (Goal) section() {}
func (Goal) String() string { return "G" }

// CurvedCorner is the 0.5m corner piece used when the court has curved corners.
type CurvedCorner struct {
	H int
}

func (c CurvedCorner) Kind() Kind { return KindCurvedCorner }
func (c CurvedCorner) Width() float64 { return CornerWidth }
func (c CurvedCorner) Height() int { return c.H }
func (c CurvedCorner) section() {}
func (c CurvedCorner) String() string { return fmt.Sprintf("CC/%d", c.H) }

// MiniGoal replaces a width-2 panel with a 1m high goal. Prev holds the height
// of the panel it replaced so that reverting restores it.
type MiniGoal struct {
	Prev int
}

func (m MiniGoal) Kind() Kind { return KindMiniGoal }
func (m MiniGoal) Width() float64 { return 2 }
func (m MiniGoal) Height() int { return MiniGoalHeight }
func (m MiniGoal) section() {}
func (m MiniGoal) String() string { return "MG" }

// Gate is a 2m access gate with mesh above the gate leaf.
type Gate struct {
	H int
}

func (g Gate) Kind() Kind { return KindGate }
func (g Gate) Width() float64 { return 2 }
func (g Gate) Height() int { return g.H }
func (g Gate) section() {}
func (g Gate) String() string { return fmt.Sprintf("GT/%d", g.H) }

// Chicane is a 2m opening with two offset rebound panels. The rebound panels
// are not stored; the BOM and the renderers synthesize them.
type Chicane struct {
	H int
}

func (c Chicane) Kind() Kind { return KindChicane }
func (c Chicane) Width() float64 { return 2 }
func (c Chicane) Height() int { return c.H }
func (c Chicane) section() {}
func (c Chicane) String() string { return fmt.Sprintf("CH/%d", c.H) }

// IsGoal reports whether s is a Goal.
func IsGoal(s Section) bool {
	_, ok := s.(Goal)
	return ok
}

// ArchOf returns the arch carried by s, or nil if s is not an arched Panel.
func ArchOf(s Section) *ArchInfo {
	if p, ok := s.(Panel); ok {
		return p.Arch
	}
	return nil
}

// cloneSection returns a copy of s that shares no memory with it.
func cloneSection(s Section) Section {
	if p, ok := s.(Panel); ok && p.Arch != nil {
		a := *p.Arch
		p.Arch = &a
		return p
	}
	return s
}
