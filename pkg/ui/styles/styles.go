// Package styles holds the shared lipgloss palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

const (
	Ellipsis = "…"
)

// Colors.
var (
	Cream      = lipgloss.AdaptiveColor{Light: "#FFFDF5", Dark: "#FFFDF5"}
	Gray       = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	MidGray    = lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"}
	BrightGray = lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"}
	Fuchsia    = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	DimFuchsia = lipgloss.AdaptiveColor{Light: "#F1A8FF", Dark: "#99519E"}
	Green      = lipgloss.Color("#04B575")
	ChromaKey  = lipgloss.Color("#00FF00")
	Red        = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	Subtle     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	StatusBarFg = lipgloss.AdaptiveColor{Light: "#656565", Dark: "#7D7D7D"}
	StatusBarBg = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#242424"}
)

// Styles.
var (
	TextStyle     = lipgloss.NewStyle()
	SubtleStyle   = lipgloss.NewStyle().Foreground(Subtle)
	SelectedStyle = lipgloss.NewStyle().Foreground(Fuchsia)
	HelpStyle     = lipgloss.NewStyle().Foreground(Gray)

	LogoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ECFD65")).
			Background(Fuchsia).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFg).
			Background(StatusBarBg)

	StatusBarSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#89F0CB")).
				Background(lipgloss.Color("#1C8760"))

	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(Cream).
				Background(Red)

	ErrorTitleStyle = lipgloss.NewStyle().Foreground(Cream).Background(Red).Padding(0, 1)
)

// Fit truncates s with an [Ellipsis] when it is wider than width, and pads it
// on the right with spaces when it is narrower.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if ansi.PrintableRuneWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), Ellipsis) //nolint:gosec // Checked above.
	}

	return padding.String(s, uint(width)) //nolint:gosec // Checked above.
}
