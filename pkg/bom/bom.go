package bom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/arena/pkg/court"
)

// Part names that do not depend on a section's size.
const (
	PartGoalFrame       = "Goal Frame"
	PartBasketballHoop  = "Basketball Hoop"
	PartArchPanel       = "Arch Panel 2m"
	PartMiniGoal        = "Mini Goal 2m"
	PartChicaneFrame    = "Chicane Frame 2m"
	PartCornerBarPanel  = "Curved Corner Bar Panel"
	PartCornerMeshPanel = "Curved Corner Mesh Panel"
)

const (
	cornerPostPrefix     = "Corner Post"
	chicaneReboundPanels = 2
	postsPerRebound      = 2
	maxInfillHeight      = 2 // gate leaves and chicane posts stop at 2m
)

// Item is one line of a bill of materials.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// BarPanel returns the bar panel part name for a panel width.
func BarPanel(width int) string { return fmt.Sprintf("Bar Panel %dm", width) }

// MeshPanel returns the mesh panel part name for a panel width.
func MeshPanel(width int) string { return fmt.Sprintf("Mesh Panel %dm", width) }

// Post returns the intermediate post part name for a height.
func Post(h int) string { return fmt.Sprintf("Post %dm", h) }

// CornerPost returns the right-angle corner post part name for a height.
func CornerPost(h int) string { return fmt.Sprintf("%s %dm", cornerPostPrefix, h) }

// Gate returns the gate leaf part name for a height (already capped at 2m).
func Gate(h int) string { return fmt.Sprintf("Gate %dm (in 2m frame)", h) }

// tally accumulates quantities in half units, preserving first-seen order.
type tally struct {
	halves map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{halves: make(map[string]int)}
}

func (t *tally) add(name string, qty int) { t.addHalves(name, 2*qty) }

func (t *tally) addHalves(name string, halves int) {
	if halves <= 0 {
		return
	}
	if _, ok := t.halves[name]; !ok {
		t.order = append(t.order, name)
	}
	t.halves[name] += halves
}

// items converts the tally to whole quantities. Corner posts are rounded up
// once, after all walls; other parts are always whole.
func (t *tally) items() []Item {
	out := make([]Item, 0, len(t.order))
	for _, name := range t.order {
		h := t.halves[name]
		qty := h / 2
		if strings.HasPrefix(name, cornerPostPrefix) {
			qty = (h + 1) / 2
		}
		if qty > 0 {
			out = append(out, Item{Name: name, Qty: qty})
		}
	}
	return out
}

// Calculate derives the bill of materials for c. Items appear in the order
// their part was first encountered; use Sorted for a stable name order.
// Every returned quantity is positive.
func Calculate(c *court.Court) []Item {
	t := newTally()
	goals := c.GoalCount()
	t.add(PartGoalFrame, goals)
	t.add(PartBasketballHoop, goals)

	ids := c.WallIDs()
	for _, id := range ids {
		for _, s := range c.Sections(id) {
			sectionParts(t, s)
		}
	}
	for _, id := range ids {
		posts(t, c, c.Sections(id))
	}
	return t.items()
}

// sectionParts adds the parts that make up one section, excluding posts.
func sectionParts(t *tally, s court.Section) {
	switch v := s.(type) {
	case court.Panel:
		t.add(BarPanel(v.W), 1)
		if v.Arch != nil {
			t.add(MeshPanel(v.W), v.Arch.BaseLevel-1)
			t.add(PartArchPanel, 1)
		} else {
			t.add(MeshPanel(v.W), v.H-1)
		}
	case court.MiniGoal:
		t.add(PartMiniGoal, 1)
	case court.Gate:
		gateH := min(v.H, maxInfillHeight)
		t.add(Gate(gateH), 1)
		t.add(MeshPanel(2), v.H-gateH)
	case court.Chicane:
		chicH := min(v.H, maxInfillHeight)
		t.add(PartChicaneFrame, 1)
		t.add(BarPanel(2), chicaneReboundPanels)
		t.add(Post(chicH), chicaneReboundPanels*postsPerRebound)
		t.add(MeshPanel(2), v.H-chicH)
	case court.CurvedCorner:
		t.add(PartCornerBarPanel, 1)
		t.add(PartCornerMeshPanel, v.H-1)
	}
}

// posts adds a post at every boundary of a wall, including both ends.
// Boundaries touching a goal are skipped: the goal frame has its own posts.
// A right-angle court shares each corner post between two walls, so each
// wall contributes half a post there.
func posts(t *tally, c *court.Court, w court.Wall) {
	n := len(w)
	for i := 0; i <= n; i++ {
		var left, right court.Section
		if i > 0 {
			left = w[i-1]
		}
		if i < n {
			right = w[i]
		}
		if isGoal(left) || isGoal(right) {
			continue
		}
		h := max(height(left), height(right))
		if h <= 0 {
			continue
		}
		end := i == 0 || i == n
		switch {
		case end && !c.Standalone && c.Corner == court.CornerRightAngle:
			t.addHalves(CornerPost(h), 1)
		case !end:
			t.add(Post(h), 1)
		case isCorner(left) && i == n, isCorner(right) && i == 0:
			// The curved corner carries its own end.
		default:
			t.add(Post(h), 1)
		}
	}
}

func isGoal(s court.Section) bool { return s != nil && court.IsGoal(s) }

func isCorner(s court.Section) bool {
	_, ok := s.(court.CurvedCorner)
	return ok
}

func height(s court.Section) int {
	if s == nil {
		return 0
	}
	return s.Height()
}

// Sorted returns a copy of items ordered by part name.
func Sorted(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Total returns the sum of all quantities.
func Total(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Qty
	}
	return n
}

// Qty returns the quantity of the named part, or 0.
func Qty(items []Item, name string) int {
	for _, it := range items {
		if it.Name == name {
			return it.Qty
		}
	}
	return 0
}
