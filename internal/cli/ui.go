package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconNone    = "—"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Tables
// =============================================================================

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...)
}

// violationTable renders audit findings, one row per violation.
func violationTable(vs []constraint.Violation) string {
	rows := make([][]string, len(vs))
	for i, v := range vs {
		rows[i] = []string{v.Severity.String(), v.Kind.String(), violationElement(v), v.Message}
	}
	return newTable("Severity", "Kind", "Element", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col != 0 || row >= len(vs) {
				return lipgloss.NewStyle()
			}
			switch vs[row].Severity {
			case constraint.Error:
				return StyleError
			case constraint.Warning:
				return StyleWarning
			}
			return StyleDim
		}).
		Render()
}

func violationElement(v constraint.Violation) string {
	switch {
	case v.Label != "":
		return "label " + string(v.Label)
	case v.Port != "":
		return "port " + string(v.Port)
	case v.Edge != "":
		return "edge " + string(v.Edge)
	case v.Node != "":
		return "node " + string(v.Node)
	}
	return iconNone
}

// hintRow is one line of the hints table: an arc type, its direction and
// the preferred type of the node at the other end.
type hintRow struct {
	hint  constraint.Hint
	other sbgn.Type
}

// hintTable renders edge hints. Node hints read as outgoing or incoming
// arcs; edge hints as keeping or swapping the edge's ends.
func hintTable(rows []hintRow, forEdge bool) string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		dir := direction(r.hint.Reversed, forEdge)
		other := iconNone
		if r.other != sbgn.NoType {
			other = r.other.String()
		}
		out[i] = []string{r.hint.Type.String(), dir, other}
	}
	return newTable("Arc", "Direction", "Other end").
		Rows(out...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func direction(reversed, forEdge bool) string {
	switch {
	case forEdge && reversed:
		return "reversed"
	case forEdge:
		return "as drawn"
	case reversed:
		return "incoming"
	}
	return "outgoing"
}

// typeList joins types for a one-line listing.
func typeList(ts []sbgn.Type) string {
	if len(ts) == 0 {
		return iconNone
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
