package contract

import (
	"time"

	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/rollup"
)

type EstimateCell = rollup.EstimateCell

type Badge = rollup.Badge

type SectionStats = rollup.SectionStats

type Summary = rollup.SectionSummary

// ItemView is one card line in a section listing.
type ItemView struct {
	Title             string          `json:"title"`
	Priority          domain.Priority `json:"priority"`
	OriginalEstimate  *int            `json:"original_estimate_hours"`
	RemainingEstimate *int            `json:"remaining_estimate_hours"`
	Cell              EstimateCell    `json:"cell"`
}

// SectionView is a section summary with its card lines.
type SectionView struct {
	Summary Summary    `json:"summary"`
	Items   []ItemView `json:"items"`
}

// PriorityView is the summary of one tier. IconKey selects the icon the
// renderer shows next to the label.
type PriorityView struct {
	Tier    domain.Priority `json:"tier"`
	IconKey string          `json:"icon_key"`
	Summary Summary         `json:"summary"`
}

// ReportRequest selects the board snapshot to summarize.
type ReportRequest struct {
	// Source names the snapshot for logging, typically a file path.
	Source string
	// Now overrides the generation timestamp; nil means time.Now.
	Now *time.Time
}

// ReportResponse is the structured report handed to renderers.
type ReportResponse struct {
	RunID       string         `json:"run_id"`
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Sections    []SectionView  `json:"sections"`
	Overall     Summary        `json:"overall"`
	Priorities  []PriorityView `json:"priorities"`
}

// FromReport flattens a rollup report into the response handed to renderers.
func FromReport(runID, source string, now time.Time, r *rollup.Report) *ReportResponse {
	resp := &ReportResponse{
		RunID:       runID,
		Source:      source,
		GeneratedAt: now,
		Sections:    make([]SectionView, 0, len(r.Sections)),
		Overall:     r.Overall,
		Priorities:  make([]PriorityView, 0, len(r.Tiers)),
	}

	for _, sec := range r.Sections {
		view := SectionView{
			Summary: sec.Summary,
			Items:   make([]ItemView, 0, len(sec.Items)),
		}
		for _, w := range sec.Items {
			view.Items = append(view.Items, ItemView{
				Title:             w.Title(),
				Priority:          w.Priority(),
				OriginalEstimate:  w.OriginalEstimate(),
				RemainingEstimate: w.RemainingEstimate(),
				Cell:              rollup.ItemCell(w),
			})
		}
		resp.Sections = append(resp.Sections, view)
	}

	for _, tier := range r.Tiers {
		resp.Priorities = append(resp.Priorities, PriorityView{
			Tier:    tier.Tier,
			IconKey: tier.IconKey,
			Summary: tier.Summary,
		})
	}

	return resp
}
