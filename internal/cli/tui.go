package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TypePickerModel - Interactive node type selection
// =============================================================================

// TypePickerModel is the bubbletea model for picking a conversion type.
// The node's current type is shown but cannot be picked.
type TypePickerModel struct {
	Node     string
	Current  sbgn.Type
	Types    []sbgn.Type
	Cursor   int
	Selected *sbgn.Type
	Height   int
	Offset   int
}

// NewTypePickerModel creates a picker over types with the cursor on the
// first type other than current.
func NewTypePickerModel(node string, current sbgn.Type, types []sbgn.Type) TypePickerModel {
	m := TypePickerModel{Node: node, Current: current, Types: types, Height: 12}
	for i, t := range types {
		if t != current {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m TypePickerModel) Init() tea.Cmd {
	return nil
}

func (m TypePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Types)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Types) == 0 || m.Types[m.Cursor] == m.Current {
				return m, nil
			}
			t := m.Types[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TypePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Convert " + m.Node))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Types))
	for i := m.Offset; i < end; i++ {
		t := m.Types[i]
		name := t.String()
		switch {
		case t == m.Current:
			name = listDimStyle.Render(name + " (current)")
		case i == m.Cursor:
			name = listSelectedStyle.Render(name)
		default:
			name = listNormalStyle.Render(name)
		}
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		b.WriteString(cursor + name + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Types))))
	return b.String()
}

// pickType runs the picker and returns the chosen type, or false when the
// user quit without choosing.
func pickType(node string, current sbgn.Type, types []sbgn.Type) (sbgn.Type, bool, error) {
	final, err := tea.NewProgram(NewTypePickerModel(node, current, types)).Run()
	if err != nil {
		return sbgn.NoType, false, err
	}
	m := final.(TypePickerModel)
	if m.Selected == nil {
		return sbgn.NoType, false, nil
	}
	return *m.Selected, true, nil
}
