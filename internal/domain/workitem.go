package domain

import "strings"

// RawItem is a card as yielded by a board source, before normalization.
// A nil field means the source did not provide it at all; an empty string
// is a present-but-blank value.
type RawItem struct {
	Title                 *string
	PriorityLabel         *string
	OriginalEstimateText  *string
	RemainingEstimateText *string
}

// Section is a named group of raw cards, such as a sprint or the backlog.
type Section struct {
	Label string
	Items []RawItem
}

// WorkItem is a normalized card. It is immutable after construction.
type WorkItem struct {
	group     string
	title     string
	priority  Priority
	original  *int
	remaining *int
}

// NewWorkItem normalizes raw into a WorkItem belonging to group. Estimates
// that cannot be parsed become nil; a missing or blank priority label maps
// to DefaultPriority. A raw item missing its title or either estimate text
// is rejected with a *RecordError.
func NewWorkItem(group string, raw RawItem) (*WorkItem, error) {
	switch {
	case raw.Title == nil:
		return nil, &RecordError{Group: group, Field: "title"}
	case raw.OriginalEstimateText == nil:
		return nil, &RecordError{Group: group, Field: "original_estimate"}
	case raw.RemainingEstimateText == nil:
		return nil, &RecordError{Group: group, Field: "remaining_estimate"}
	}

	priority := DefaultPriority
	if raw.PriorityLabel != nil {
		if label := strings.ToLower(strings.TrimSpace(*raw.PriorityLabel)); label != "" {
			priority = Priority(label)
		}
	}

	return &WorkItem{
		group:     group,
		title:     *raw.Title,
		priority:  priority,
		original:  ParseEstimate(*raw.OriginalEstimateText),
		remaining: ParseEstimate(*raw.RemainingEstimateText),
	}, nil
}

// NewWorkItems normalizes every raw item of a section, stopping at the first
// invalid record.
func NewWorkItems(s Section) ([]*WorkItem, error) {
	items := make([]*WorkItem, 0, len(s.Items))
	for i, raw := range s.Items {
		w, err := NewWorkItem(s.Label, raw)
		if err != nil {
			if re, ok := err.(*RecordError); ok {
				re.Index = i
			}
			return nil, err
		}
		items = append(items, w)
	}
	return items, nil
}

func (w *WorkItem) Group() string      { return w.group }
func (w *WorkItem) Title() string      { return w.title }
func (w *WorkItem) Priority() Priority { return w.priority }

// OriginalEstimate returns a copy of the original estimate in hours, or nil.
func (w *WorkItem) OriginalEstimate() *int { return copyInt(w.original) }

// RemainingEstimate returns a copy of the remaining estimate in hours, or nil.
func (w *WorkItem) RemainingEstimate() *int { return copyInt(w.remaining) }

// IsUnestimated reports whether the card has no usable original estimate.
func (w *WorkItem) IsUnestimated() bool {
	return w.original == nil
}

// IsOverEstimated reports whether more work remains than was originally
// estimated. Cards missing either estimate are never over-estimated.
func (w *WorkItem) IsOverEstimated() bool {
	return w.original != nil && w.remaining != nil && *w.remaining > *w.original
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
