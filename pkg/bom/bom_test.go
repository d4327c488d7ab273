package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
)

func asMap(items []Item) map[string]int {
	m := make(map[string]int, len(items))
	for _, it := range items {
		m[it.Name] = it.Qty
	}
	return m
}

func TestCalculateScenarioA(t *testing.T) {
	c, err := court.Generate(10, 15, 3, 3)
	require.NoError(t, err)

	want := map[string]int{
		"Goal Frame":               2,
		"Basketball Hoop":          2,
		"Curved Corner Bar Panel":  4,
		"Curved Corner Mesh Panel": 8,
		"Bar Panel 2m":             18,
		"Mesh Panel 2m":            36,
		"Bar Panel 1m":             4,
		"Mesh Panel 1m":            8,
		"Post 3m":                  24,
	}
	assert.Equal(t, want, asMap(Calculate(c)))
}

func TestCalculateScenarioB(t *testing.T) {
	items := Calculate(court.GenerateStandalone())
	assert.Equal(t, []Item{{Name: "Goal Frame", Qty: 1}, {Name: "Basketball Hoop", Qty: 1}}, items)
}

func TestCalculateScenarioC(t *testing.T) {
	c, err := court.Generate(7, 5, 3, 3)
	require.NoError(t, err)

	want := map[string]int{
		"Goal Frame":      2,
		"Basketball Hoop": 2,
		"Bar Panel 2m":    8,
		"Mesh Panel 2m":   16,
		"Bar Panel 1m":    2,
		"Mesh Panel 1m":   4,
		"Corner Post 3m":  4,
		"Post 3m":         4,
	}
	assert.Equal(t, want, asMap(Calculate(c)))
}

func TestCalculateScenarioD(t *testing.T) {
	c := &court.Court{
		Width:      5,
		Corner:     court.CornerNone,
		EndHeight:  2,
		Standalone: true,
		Walls: map[court.WallID]court.Wall{
			court.End1: {
				court.Goal{},
				court.Panel{W: 2, H: 2, Arch: &court.ArchInfo{BaseLevel: 1, GoalHeight: 2, OuterHeight: 1, GoalSide: court.SideLeft}},
			},
		},
	}

	got := asMap(Calculate(c))
	assert.Equal(t, 1, got["Arch Panel 2m"])
	assert.Equal(t, 1, got["Bar Panel 2m"])
	assert.NotContains(t, got, "Mesh Panel 2m")
	assert.Equal(t, 1, got["Post 2m"])

	full, err := court.Generate(10, 15, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, Qty(Calculate(full), PartArchPanel))
}

func TestCalculateInfill(t *testing.T) {
	base := court.GenerateStandalone()
	base = edit.AppendSection(base, court.SideRight, 2, 2)
	base = edit.AppendSection(base, court.SideRight, 2, 3)
	require.Equal(t, "G P2/2 P2/3", base.Sections(court.End1).String())

	tests := []struct {
		name string
		c    *court.Court
		want map[string]int
	}{
		{
			name: "gate",
			c:    edit.ToggleGate(base, court.End1, 2),
			want: map[string]int{
				"Goal Frame": 1, "Basketball Hoop": 1,
				"Bar Panel 2m": 1, "Mesh Panel 2m": 2,
				"Gate 2m (in 2m frame)": 1,
				"Post 3m":               2,
			},
		},
		{
			name: "chicane",
			c:    edit.ToggleChicane(base, court.End1, 2),
			want: map[string]int{
				"Goal Frame": 1, "Basketball Hoop": 1,
				"Bar Panel 2m": 3, "Mesh Panel 2m": 2,
				"Chicane Frame 2m": 1,
				"Post 2m":          4,
				"Post 3m":          2,
			},
		},
		{
			name: "mini goal",
			c:    edit.ToggleMiniGoal(base, court.End1, 2),
			want: map[string]int{
				"Goal Frame": 1, "Basketball Hoop": 1,
				"Bar Panel 2m": 1, "Mesh Panel 2m": 1,
				"Mini Goal 2m": 1,
				"Post 2m":      1,
				"Post 1m":      1,
			},
		},
		{
			name: "low gate",
			c:    edit.ToggleGate(edit.SetSectionHeight(base, court.End1, 2, 1), court.End1, 2),
			want: map[string]int{
				"Goal Frame": 1, "Basketball Hoop": 1,
				"Bar Panel 2m": 1, "Mesh Panel 2m": 1,
				"Gate 1m (in 2m frame)": 1,
				"Post 2m":               1,
				"Post 1m":               1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotSame(t, base, tt.c)
			assert.Equal(t, tt.want, asMap(Calculate(tt.c)))
		})
	}
}

func TestCalculateCornerPostsRoundUp(t *testing.T) {
	c, err := court.Generate(7, 5, 3, 2)
	require.NoError(t, err)
	// side1 = P2/2 P2/2 P1/3 contributes half a 2m and half a 3m corner post.
	c.Walls[court.Side1][2] = court.Panel{W: 1, H: 3}
	c.Walls[court.Side2] = court.Wall{}

	got := asMap(Calculate(c))
	// Both end walls give four 3m halves; with side1's half that is 2.5 -> 3.
	assert.Equal(t, 3, got["Corner Post 3m"])
	assert.Equal(t, 1, got["Corner Post 2m"])
}

func TestCalculateQuantitiesPositive(t *testing.T) {
	for width := 5; width <= 16; width++ {
		for h := court.MinHeight; h <= court.MaxHeight; h++ {
			c, err := court.Generate(width, 9, h, court.MaxHeight+1-h)
			if err != nil {
				continue
			}
			c = edit.ToggleGate(c, court.Side1, 0)
			c = edit.ToggleChicane(c, court.Side2, 1)
			c = edit.ToggleMiniGoal(c, court.Side1, 2)
			c = edit.SetWallHeight(c, court.End2, h)

			items := Calculate(c)
			require.NotEmpty(t, items)
			seen := map[string]bool{}
			for _, it := range items {
				assert.Positive(t, it.Qty, "%s in %s", it.Name, c)
				assert.False(t, seen[it.Name], "duplicate %s", it.Name)
				seen[it.Name] = true
			}
		}
	}
}

func TestCalculateDoesNotModifyCourt(t *testing.T) {
	c, err := court.Generate(12, 20, 4, 2)
	require.NoError(t, err)
	before := c.Clone()
	_ = Calculate(c)
	assert.Equal(t, before, c)
}

func TestSortedAndTotal(t *testing.T) {
	items := []Item{{"Post 3m", 4}, {"Bar Panel 2m", 6}, {"Goal Frame", 2}}
	sorted := Sorted(items)
	assert.Equal(t, []Item{{"Bar Panel 2m", 6}, {"Goal Frame", 2}, {"Post 3m", 4}}, sorted)
	assert.Equal(t, "Post 3m", items[0].Name, "input order kept")
	assert.Equal(t, 12, Total(items))
	assert.Equal(t, 6, Qty(items, "Bar Panel 2m"))
	assert.Equal(t, 0, Qty(items, "Gate 2m (in 2m frame)"))
}
