package rollup

import (
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// EstimateCell is a rendered estimate value with its tone.
type EstimateCell struct {
	Text string      `json:"text"`
	Tone domain.Tone `json:"tone"`
}

// Badge is an extra annotation appended to a summary headline.
type Badge struct {
	Text string      `json:"text"`
	Tone domain.Tone `json:"tone"`
}

// SectionSummary is the presentation record of a group of work items.
type SectionSummary struct {
	Label    string       `json:"label"`
	Count    int          `json:"count"`
	Cell     EstimateCell `json:"cell"`
	Headline string       `json:"headline"`
	Tone     domain.Tone  `json:"tone"`
	Badges   []Badge      `json:"badges"`
	Stats    SectionStats `json:"stats"`
}

// FormatEstimateCell renders a remaining/original pair:
//
//	original missing            -> "[-]"       bad
//	remaining missing or equal  -> "[Oh]"      normal
//	remaining below original    -> "[Rh/Oh]"   good
//	remaining above original    -> "[Rh/Oh]"   bad
func FormatEstimateCell(remaining, original *int) EstimateCell {
	if original == nil {
		return EstimateCell{Text: "[-]", Tone: domain.ToneBad}
	}
	if remaining == nil || *remaining == *original {
		return EstimateCell{Text: fmt.Sprintf("[%dh]", *original), Tone: domain.ToneNormal}
	}
	tone := domain.ToneBad
	if *remaining < *original {
		tone = domain.ToneGood
	}
	return EstimateCell{Text: fmt.Sprintf("[%dh/%dh]", *remaining, *original), Tone: tone}
}

// ItemCell renders the estimate cell of a single work item.
func ItemCell(w *domain.WorkItem) EstimateCell {
	return FormatEstimateCell(w.RemainingEstimate(), w.OriginalEstimate())
}

// FormatSectionSummary builds the summary record of items under label. The
// estimate cell is computed from the aggregated totals, and badges for
// unestimated and over-estimated items are added only when nonzero.
func FormatSectionSummary(label string, items []*domain.WorkItem) SectionSummary {
	return summarize(label, len(items), Aggregate(items))
}

func summarize(label string, count int, stats SectionStats) SectionSummary {
	remaining, original := stats.RemainingTotal, stats.OriginalTotal
	cell := FormatEstimateCell(&remaining, &original)

	badges := []Badge{}
	if stats.UnestimatedCount > 0 {
		badges = append(badges, Badge{
			Text: fmt.Sprintf("%d unestimated", stats.UnestimatedCount),
			Tone: domain.ToneBad,
		})
	}
	if stats.OverEstimatedCount > 0 {
		badges = append(badges, Badge{
			Text: fmt.Sprintf("%d overestimated", stats.OverEstimatedCount),
			Tone: domain.ToneBad,
		})
	}

	return SectionSummary{
		Label:    label,
		Count:    count,
		Cell:     cell,
		Headline: fmt.Sprintf("%s %s: %d issues", cell.Text, label, count),
		Tone:     cell.Tone,
		Badges:   badges,
		Stats:    stats,
	}
}
