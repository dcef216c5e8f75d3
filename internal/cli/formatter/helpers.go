package formatter

import (
	"strings"

	"github.com/alexanderramin/sprintsum/internal/contract"
)

// EstimateCell renders an estimate cell in its tone color.
func EstimateCell(c contract.EstimateCell) string {
	return ToneStyle(c.Tone).Render(c.Text)
}

// Badges renders summary badges as parenthesized, tone-colored notes
// separated by spaces. Returns "" when there are none.
func Badges(badges []contract.Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, ToneStyle(b.Tone).Render("("+b.Text+")"))
	}
	return strings.Join(parts, " ")
}

// SummaryLine renders a summary headline in its tone followed by its badges.
func SummaryLine(s contract.Summary) string {
	line := ToneStyle(s.Tone).Render(s.Headline)
	if badges := Badges(s.Badges); badges != "" {
		line += " " + badges
	}
	return line
}
