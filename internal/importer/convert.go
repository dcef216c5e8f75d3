package importer

import "github.com/alexanderramin/sprintsum/internal/domain"

// Convert transforms a board snapshot into sections of raw cards, dropping
// filtered cards. Call ValidateBoardSchema first; Convert copies fields as
// they are.
func Convert(schema *BoardSchema) []domain.Section {
	sections := make([]domain.Section, 0, len(schema.Sections))
	for _, s := range schema.Sections {
		items := make([]domain.RawItem, 0, len(s.Cards))
		for _, c := range s.Cards {
			if c.Filtered {
				continue
			}
			items = append(items, domain.RawItem{
				Title:                 c.Title,
				PriorityLabel:         c.Priority,
				OriginalEstimateText:  c.OriginalEstimate,
				RemainingEstimateText: c.RemainingEstimate,
			})
		}
		sections = append(sections, domain.Section{Label: s.Name, Items: items})
	}
	return sections
}
