package formatter

import (
	"strconv"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// FormatTiers renders the priority ranking used to order tier summaries.
func FormatTiers() string {
	rows := make([][]string, 0, len(domain.PriorityOrder))
	for i, p := range domain.PriorityOrder {
		rows = append(rows, []string{strconv.Itoa(i + 1), PriorityIconStyled(p), string(p)})
	}
	table := RenderTableAligned([]string{"RANK", "ICON", "TIER"}, rows, []Align{AlignRight})
	return table + Dim("Other labels sort after these, in order of first appearance.") + "\n"
}

// ParseResult is one estimate text with its parsed hours.
type ParseResult struct {
	Text  string
	Hours *int
}

// FormatParseResults renders estimate texts alongside the hours they parse
// to and their day/hour form. Unparseable texts show "-".
func FormatParseResults(results []ParseResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		hours := Dim("-")
		if r.Hours != nil {
			hours = strconv.Itoa(*r.Hours)
		}
		rows = append(rows, []string{strconv.Quote(r.Text), hours, domain.FormatEstimate(r.Hours)})
	}
	return RenderTableAligned([]string{"INPUT", "HOURS", "NORMALIZED"}, rows, []Align{AlignLeft, AlignRight})
}
