package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arena/pkg/bom"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
)

// Editor styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	cellSelectedStyle = cellStyle.
				BorderForeground(colorCyan).
				Foreground(colorCyan).
				Bold(true)
)

var kindStyles = map[court.Kind]lipgloss.Style{
	court.KindGoal:         lipgloss.NewStyle().Foreground(colorRed),
	court.KindCurvedCorner: lipgloss.NewStyle().Foreground(colorBlue),
	court.KindMiniGoal:     lipgloss.NewStyle().Foreground(colorYellow),
	court.KindGate:         lipgloss.NewStyle().Foreground(colorGreen),
	court.KindChicane:      lipgloss.NewStyle().Foreground(colorYellow),
}

// appendHeight is the height of sections appended to a standalone end wall.
const appendHeight = court.GoalAdjacentMax

// =============================================================================
// EditorModel - Interactive court editor
// =============================================================================

// EditorModel is the bubbletea model for interactive court editing. Every
// edit goes through package edit, so rejected edits leave the court as is and
// the status line explains why.
type EditorModel struct {
	Court   *court.Court
	Wall    int // index into Court.WallIDs()
	Index   int // selected section on that wall
	Message string
	IsError bool
	Dirty   bool
	Save    bool // set when the user quit with w

	history  []*court.Court
	wallMode bool // next digit sets the whole wall height
}

// NewEditorModel creates an editor for c.
func NewEditorModel(c *court.Court) EditorModel {
	return EditorModel{Court: c}
}

// wallID returns the selected wall.
func (m EditorModel) wallID() court.WallID {
	ids := m.Court.WallIDs()
	if len(ids) == 0 {
		return court.End1
	}
	return ids[m.Wall%len(ids)]
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	k := key.String()

	if m.wallMode {
		m.wallMode = false
		if h, ok := digit(k); ok {
			return m.apply(edit.Op{Kind: edit.OpSetWallHeight, Wall: m.wallID(), Height: h}), nil
		}
		m.setInfo("wall height cancelled")
		return m, nil
	}

	switch k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "w":
		m.Save = true
		return m, tea.Quit
	case "tab", "down", "j":
		m.Wall = (m.Wall + 1) % len(m.Court.WallIDs())
		m.clampIndex()
	case "shift+tab", "up", "k":
		n := len(m.Court.WallIDs())
		m.Wall = (m.Wall + n - 1) % n
		m.clampIndex()
	case "left", "h":
		if m.Index > 0 {
			m.Index--
		}
	case "right", "l":
		if m.Index < len(m.Court.Sections(m.wallID()))-1 {
			m.Index++
		}
	case "1", "2", "3", "4":
		h, _ := digit(k)
		return m.apply(edit.Op{Kind: edit.OpSetSectionHeight, Wall: m.wallID(), Index: m.Index, Height: h}), nil
	case "g":
		return m.apply(edit.Op{Kind: edit.OpToggleGate, Wall: m.wallID(), Index: m.Index}), nil
	case "c":
		return m.apply(edit.Op{Kind: edit.OpToggleChicane, Wall: m.wallID(), Index: m.Index}), nil
	case "m":
		return m.apply(edit.Op{Kind: edit.OpToggleMiniGoal, Wall: m.wallID(), Index: m.Index}), nil
	case "H":
		m.wallMode = true
		m.setInfo("wall height: press 1-4")
	case "[":
		return m.apply(edit.Op{Kind: edit.OpAppendSection, Side: court.SideLeft, Width: 2, Height: appendHeight}), nil
	case "]":
		return m.apply(edit.Op{Kind: edit.OpAppendSection, Side: court.SideRight, Width: 2, Height: appendHeight}), nil
	case "{":
		return m.apply(edit.Op{Kind: edit.OpAppendCurvedCorner, Side: court.SideLeft, Height: appendHeight}), nil
	case "}":
		return m.apply(edit.Op{Kind: edit.OpAppendCurvedCorner, Side: court.SideRight, Height: appendHeight}), nil
	case "u":
		m.undo()
	}
	return m, nil
}

// apply runs op and records the outcome.
func (m EditorModel) apply(op edit.Op) EditorModel {
	reason := op.Check(m.Court)
	next, ok := op.Apply(m.Court)
	if !ok {
		msg := "not allowed"
		if reason != nil {
			msg = errors.UserMessage(reason)
		}
		m.setError(msg)
		return m
	}

	m.history = append(m.history, m.Court)
	m.Court = next
	m.Dirty = true
	if op.Kind == edit.OpAppendSection || op.Kind == edit.OpAppendCurvedCorner {
		if op.Side == court.SideLeft {
			m.Index++
		}
	}
	m.clampIndex()
	m.setInfo(op.String())
	return m
}

func (m *EditorModel) undo() {
	n := len(m.history)
	if n == 0 {
		m.setInfo("nothing to undo")
		return
	}
	m.Court = m.history[n-1]
	m.history = m.history[:n-1]
	m.Dirty = n > 1
	m.clampIndex()
	m.setInfo("undone")
}

// clampIndex keeps the selection on an existing section after edits that
// change the section count or a wall switch.
func (m *EditorModel) clampIndex() {
	if edit.SelectionValid(m.Court, m.wallID(), m.Index) {
		return
	}
	n := len(m.Court.Sections(m.wallID()))
	m.Index = max(0, min(m.Index, n-1))
}

func (m *EditorModel) setInfo(msg string) {
	m.Message, m.IsError = msg, false
}

func (m *EditorModel) setError(msg string) {
	m.Message, m.IsError = msg, true
}

func digit(k string) (int, bool) {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '4' {
		return int(k[0] - '0'), true
	}
	return 0, false
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Court Editor"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.Court.String()))
	b.WriteString("\n\n")

	selected := m.wallID()
	for _, id := range m.Court.WallIDs() {
		label := fmt.Sprintf("%-12s", id.Label())
		if id == selected {
			b.WriteString(listSelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(listNormalStyle.Render("  " + label))
		}
		b.WriteString("\n")
		b.WriteString(m.wallView(id, id == selected))
		b.WriteString("\n")
	}

	b.WriteString(m.detailView())
	b.WriteString("\n")

	if m.Message != "" {
		if m.IsError {
			b.WriteString(styleIconError.Render(iconError) + " " + StyleWarning.Render(m.Message))
		} else {
			b.WriteString(styleIconInfo.Render(iconInfo) + " " + m.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("tab wall  ←/→ section  1-4 height  H wall height  g gate  c chicane  m mini goal"))
	b.WriteString("\n")
	if m.Court.Standalone {
		b.WriteString(listDimStyle.Render("[ ] add panel  { } add curved corner  "))
	}
	b.WriteString(listDimStyle.Render("u undo  w save & quit  q quit"))

	return b.String()
}

func (m EditorModel) wallView(id court.WallID, active bool) string {
	sections := m.Court.Sections(id)
	cells := make([]string, len(sections))
	for i, s := range sections {
		text := s.String()
		if st, ok := kindStyles[s.Kind()]; ok && !(active && i == m.Index) {
			text = st.Render(text)
		}
		style := cellStyle
		if active && i == m.Index {
			style = cellSelectedStyle
		}
		cells[i] = style.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m EditorModel) detailView() string {
	s, ok := m.Court.Section(m.wallID(), m.Index)
	if !ok {
		return listDimStyle.Render("  (empty wall)")
	}
	caps := edit.Inspect(m.Court, m.wallID(), m.Index)

	var parts []string
	parts = append(parts, fmt.Sprintf("%s %gm × %dm", caps.Kind.Label(), s.Width(), s.Height()))
	if caps.HasArch {
		parts = append(parts, "arched")
	}
	if caps.AdjacentToGoal {
		parts = append(parts, "next to goal")
	}
	if caps.CanSetHeight {
		parts = append(parts, fmt.Sprintf("height 1-%d", caps.MaxHeight))
	}
	var allowed []string
	if caps.CanToggleGate {
		allowed = append(allowed, "gate")
	}
	if caps.CanChicane {
		allowed = append(allowed, "chicane")
	}
	if caps.CanMiniGoal {
		allowed = append(allowed, "mini goal")
	}
	if len(allowed) > 0 {
		parts = append(parts, "allows "+strings.Join(allowed, ", "))
	}

	items := bom.Calculate(m.Court)
	line := "  " + strings.Join(parts, StyleDim.Render(" · "))
	line += "\n  " + StyleDim.Render(fmt.Sprintf("%d parts in %d lines", bom.Total(items), len(items)))
	return line
}
