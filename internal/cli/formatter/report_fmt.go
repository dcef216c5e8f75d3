package formatter

import (
	"strings"

	"github.com/alexanderramin/sprintsum/internal/contract"
)

// ReportOptions controls the text rendering of a report.
type ReportOptions struct {
	// Collapsed prints section headlines without their card lines.
	Collapsed bool
}

// FormatReport renders a report as terminal text: every section headline
// with its cards as a tree, then the overall headline followed by one line
// per priority tier.
func FormatReport(resp *contract.ReportResponse, opts ReportOptions) string {
	var b strings.Builder

	b.WriteString(Header("Sections") + "\n")
	if len(resp.Sections) == 0 {
		b.WriteString(Dim("No sections on this board.") + "\n")
	}
	for _, s := range resp.Sections {
		b.WriteString(SummaryLine(s.Summary) + "\n")
		if !opts.Collapsed {
			b.WriteString(RenderTree(SectionTree(s)))
		}
	}

	b.WriteString("\n" + Header("Overall") + "\n")
	b.WriteString(SummaryLine(resp.Overall) + "\n")
	for _, p := range resp.Priorities {
		b.WriteString(PriorityIconStyled(p.Tier) + " " + SummaryLine(p.Summary) + "\n")
	}

	return b.String()
}

// SectionTree converts a section's cards into first-level tree items.
func SectionTree(s contract.SectionView) []TreeItem {
	items := make([]TreeItem, 0, len(s.Items))
	for i, it := range s.Items {
		items = append(items, TreeItem{
			Title:  it.Title,
			Icon:   PriorityIconStyled(it.Priority),
			Level:  1,
			IsLast: i == len(s.Items)-1,
			Detail: it.Cell.Text,
			Tone:   it.Cell.Tone,
		})
	}
	return items
}
