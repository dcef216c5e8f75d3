package rollup

import (
	"sort"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// TierGroup is the set of work items sharing one priority tier.
type TierGroup struct {
	Tier  domain.Priority
	Items []*domain.WorkItem
}

// Classify buckets items by priority and orders the buckets by
// domain.PriorityOrder. Tiers outside the ranking follow all ranked tiers in
// order of first appearance. Tiers without items are never emitted, and
// items keep their input order within a tier.
func Classify(items []*domain.WorkItem) []TierGroup {
	index := make(map[domain.Priority]int)
	var groups []TierGroup

	for _, w := range items {
		p := w.Priority()
		i, ok := index[p]
		if !ok {
			i = len(groups)
			index[p] = i
			groups = append(groups, TierGroup{Tier: p})
		}
		groups[i].Items = append(groups[i].Items, w)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ri, _ := domain.PriorityRank(groups[i].Tier)
		rj, _ := domain.PriorityRank(groups[j].Tier)
		return ri < rj
	})
	return groups
}
