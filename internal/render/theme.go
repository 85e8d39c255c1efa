package render

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorSky      lipgloss.Color = "#89dceb"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Styles are applied after cells have been fitted, so they never change the
// layout.
type Styles struct {
	Header      lipgloss.Style
	HeaderFocus lipgloss.Style
	Label       lipgloss.Style
	LabelFocus  lipgloss.Style
	Cell        lipgloss.Style
	Selected    lipgloss.Style
	Error       lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles is the interactive color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Header:      lipgloss.NewStyle().Background(colorSky).Foreground(colorBase),
		HeaderFocus: lipgloss.NewStyle().Background(colorBlue).Foreground(colorBase).Bold(true),
		Label:       lipgloss.NewStyle().Background(colorSky).Foreground(colorBase),
		LabelFocus:  lipgloss.NewStyle().Background(colorBlue).Foreground(colorBase).Bold(true),
		Cell:        lipgloss.NewStyle().Foreground(colorText),
		Selected:    lipgloss.NewStyle().Background(colorSky).Foreground(colorBase),
		Error:       lipgloss.NewStyle().Foreground(colorRed),
		Empty:       lipgloss.NewStyle().Foreground(colorOverlay1),
	}
}

// Faint is used for the entry line prompt and status text.
var Faint = lipgloss.NewStyle().Foreground(colorOverlay1).Background(colorSurface0)
