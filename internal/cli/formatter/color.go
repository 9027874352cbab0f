package formatter

import (
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassStyle returns the row style for a candidate display class.
func ClassStyle(c domain.DisplayClass) lipgloss.Style {
	switch c {
	case domain.DisplayErr:
		return StyleRed
	case domain.DisplayWarn:
		return StyleYellow
	case domain.DisplayOk:
		return StyleGreen
	default:
		return StyleFg
	}
}

// ClassName returns the CSS class used for a display class in HTML output.
func ClassName(c domain.DisplayClass) string {
	switch c {
	case domain.DisplayErr:
		return "status-err"
	case domain.DisplayWarn:
		return "status-warn"
	case domain.DisplayOk:
		return "status-ok"
	default:
		return ""
	}
}
