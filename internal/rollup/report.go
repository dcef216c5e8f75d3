package rollup

import "github.com/alexanderramin/sprintsum/internal/domain"

// OverallLabel labels the summary spanning every section.
const OverallLabel = "Overall"

// SectionReport pairs a section summary with the section's work items.
type SectionReport struct {
	Summary SectionSummary
	Items   []*domain.WorkItem
}

// TierReport is the summary of one priority tier. IconKey names the icon
// resource the presentation layer should show next to it.
type TierReport struct {
	Tier    domain.Priority
	IconKey string
	Summary SectionSummary
	Items   []*domain.WorkItem
}

// Report is the full result of one run over a board snapshot.
type Report struct {
	Sections []SectionReport
	Overall  SectionSummary
	Tiers    []TierReport
}

// TierLabel is the indented label used for tier summaries.
func TierLabel(p domain.Priority) string {
	return "  " + string(p)
}

// BuildReport normalizes every section and produces the per-section,
// overall and per-tier summaries. It fails on the first invalid record. A
// board without sections yields an all-zero overall summary.
func BuildReport(sections []domain.Section) (*Report, error) {
	report := &Report{
		Sections: make([]SectionReport, 0, len(sections)),
		Tiers:    []TierReport{},
	}

	var all []*domain.WorkItem
	for _, s := range sections {
		items, err := domain.NewWorkItems(s)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		report.Sections = append(report.Sections, SectionReport{
			Summary: FormatSectionSummary(s.Label, items),
			Items:   items,
		})
	}

	report.Overall = FormatSectionSummary(OverallLabel, all)

	for _, g := range Classify(all) {
		report.Tiers = append(report.Tiers, TierReport{
			Tier:    g.Tier,
			IconKey: string(g.Tier),
			Summary: FormatSectionSummary(TierLabel(g.Tier), g.Items),
			Items:   g.Items,
		})
	}

	return report, nil
}
