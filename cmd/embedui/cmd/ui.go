package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/embedui/pkg/widgets"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
	iconFocus   = "●"
)

// stateStyle colors a button state: pressed states stand out, toggled
// states read as "on", inactive is muted.
func stateStyle(s widgets.State) lipgloss.Style {
	switch s {
	case widgets.StatePressed, widgets.StateToggledPressed:
		return styleHighlight
	case widgets.StateToggledReleased:
		return styleSuccess
	case widgets.StateInactive:
		return styleDim
	default:
		return styleValue
	}
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}
