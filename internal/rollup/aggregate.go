// Package rollup folds normalized work items into the statistics and
// summary records consumed by the presentation layer. Everything here is a
// pure function of its inputs.
package rollup

import "github.com/alexanderramin/sprintsum/internal/domain"

// SectionStats holds the estimate totals and warning counts of a group of
// work items.
type SectionStats struct {
	RemainingTotal     int `json:"remaining_total"`
	OriginalTotal      int `json:"original_total"`
	UnestimatedCount   int `json:"unestimated_count"`
	OverEstimatedCount int `json:"overestimated_count"`
}

// Add returns the element-wise sum of two stats. It is commutative and
// associative, so partial aggregates can be merged in any order.
func (s SectionStats) Add(o SectionStats) SectionStats {
	return SectionStats{
		RemainingTotal:     s.RemainingTotal + o.RemainingTotal,
		OriginalTotal:      s.OriginalTotal + o.OriginalTotal,
		UnestimatedCount:   s.UnestimatedCount + o.UnestimatedCount,
		OverEstimatedCount: s.OverEstimatedCount + o.OverEstimatedCount,
	}
}

// StatsOf returns the contribution of a single work item.
func StatsOf(w *domain.WorkItem) SectionStats {
	var s SectionStats
	s.RemainingTotal = domain.IntFromPtrWithDefault(0, w.RemainingEstimate())
	s.OriginalTotal = domain.IntFromPtrWithDefault(0, w.OriginalEstimate())
	if w.IsUnestimated() {
		s.UnestimatedCount = 1
	}
	if w.IsOverEstimated() {
		s.OverEstimatedCount = 1
	}
	return s
}

// Aggregate folds items into SectionStats. Missing estimates count as zero
// hours in the totals. An empty slice yields zero stats.
func Aggregate(items []*domain.WorkItem) SectionStats {
	var total SectionStats
	for _, w := range items {
		total = total.Add(StatsOf(w))
	}
	return total
}
