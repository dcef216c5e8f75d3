package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#b8bb26")
	ColorAmber  = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleAmber  = lipgloss.NewStyle().Foreground(ColorAmber)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor makes every style render plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ToneStyle returns the style for an estimate tone: amber for normal, green
// for good, red for bad.
func ToneStyle(tone domain.Tone) lipgloss.Style {
	switch tone {
	case domain.ToneGood:
		return StyleGreen
	case domain.ToneBad:
		return StyleRed
	case domain.ToneNormal:
		return StyleAmber
	default:
		return StyleFg
	}
}

var priorityIcons = map[domain.Priority]string{
	domain.PriorityFlagged:       "!",
	domain.PriorityHighest:       "⇈",
	domain.PriorityHigh:          "↑",
	domain.PriorityMedium:        "=",
	domain.PriorityLow:           "↓",
	domain.PriorityLowest:        "⇊",
	domain.PriorityUnprioritized: "·",
}

// PriorityIcon returns the glyph shown next to a tier. Unknown tiers get "?".
func PriorityIcon(p domain.Priority) string {
	if icon, ok := priorityIcons[p]; ok {
		return icon
	}
	return "?"
}

// PriorityIconStyled returns PriorityIcon colored by urgency.
func PriorityIconStyled(p domain.Priority) string {
	icon := PriorityIcon(p)
	switch p {
	case domain.PriorityFlagged, domain.PriorityHighest, domain.PriorityHigh:
		return StyleRed.Render(icon)
	case domain.PriorityMedium:
		return StyleAmber.Render(icon)
	case domain.PriorityLow, domain.PriorityLowest:
		return StyleGreen.Render(icon)
	default:
		return StyleDim.Render(icon)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
