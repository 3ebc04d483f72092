package formatter

import (
	"github.com/alexanderramin/bell/internal/domain"
	"github.com/alexanderramin/bell/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen     = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleGreenBold = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleYellow    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg        = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold      = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BlockStyle returns the row style for a classified block. The strictly
// containing block is emphasised over one that is only in progress at a
// boundary.
func BlockStyle(cb scheduler.ClassifiedBlock) lipgloss.Style {
	switch {
	case cb.Current:
		return StyleGreenBold
	case cb.Order == domain.OrderInProgress:
		return StyleGreen
	case cb.Next:
		return StyleYellow
	case cb.Order == domain.OrderFinished:
		return StyleDim
	default:
		return StyleFg
	}
}

// BlockIndicator returns the plain status label for a classified block.
func BlockIndicator(cb scheduler.ClassifiedBlock) string {
	switch {
	case cb.Current:
		return "● now"
	case cb.Order == domain.OrderInProgress:
		return "● in progress"
	case cb.Next:
		return "○ next"
	case cb.Order == domain.OrderFinished:
		return "✔ done"
	default:
		return "· later"
	}
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
