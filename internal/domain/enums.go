package domain

// Priority is the lower-cased priority tier of a work item.
type Priority string

const (
	PriorityFlagged       Priority = "flagged"
	PriorityHighest       Priority = "highest"
	PriorityHigh          Priority = "high"
	PriorityMedium        Priority = "medium"
	PriorityLow           Priority = "low"
	PriorityLowest        Priority = "lowest"
	PriorityUnprioritized Priority = "unprioritized"
)

// DefaultPriority is assigned when a card carries no priority marker.
const DefaultPriority = PriorityFlagged

// PriorityOrder is the canonical tier ranking, most urgent first.
var PriorityOrder = []Priority{
	PriorityFlagged,
	PriorityHighest,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
	PriorityLowest,
	PriorityUnprioritized,
}

// PriorityRank returns the position of p in PriorityOrder and whether p is
// a ranked tier at all.
func PriorityRank(p Priority) (int, bool) {
	for i, known := range PriorityOrder {
		if known == p {
			return i, true
		}
	}
	return len(PriorityOrder), false
}

// IsKnown reports whether p is one of the ranked tiers.
func (p Priority) IsKnown() bool {
	_, ok := PriorityRank(p)
	return ok
}

// Tone is the semantic treatment the presentation layer applies to a value.
type Tone string

const (
	ToneNormal Tone = "normal"
	ToneGood   Tone = "good"
	ToneBad    Tone = "bad"
)
