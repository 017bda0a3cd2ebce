package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	tab       lipgloss.Style
	tabActive lipgloss.Style
	panel     lipgloss.Style
	label     lipgloss.Style
	note      lipgloss.Style
	status    lipgloss.Style
	land      lipgloss.Style
	water     lipgloss.Style
	extent    lipgloss.Style
}

// newStyles builds the style set from the configured colors, falling
// back to defaults chosen for the detected terminal background.
func newStyles(accent, highlight string) styles {
	if accent == "" {
		accent = "4" // blue
		if termenv.HasDarkBackground() {
			accent = "12"
		}
	}
	if highlight == "" {
		highlight = "2" // green
		if termenv.HasDarkBackground() {
			highlight = "10"
		}
	}

	ac := lipgloss.Color(accent)
	hl := lipgloss.Color(highlight)

	return styles{
		tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "247"}),
		tabActive: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ac).
			Bold(true).
			Underline(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"}),
		label: lipgloss.NewStyle().
			Foreground(hl).
			Bold(true),
		note: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Italic(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")),
		land: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"}),
		water: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "252", Dark: "237"}),
		extent: lipgloss.NewStyle().
			Foreground(hl).
			Bold(true),
	}
}
