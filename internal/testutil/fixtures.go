package testutil

import (
	"context"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// Raw item options
type ItemOption func(*domain.RawItem)

func WithPriority(label string) ItemOption {
	return func(r *domain.RawItem) {
		r.PriorityLabel = &label
	}
}

func WithEstimates(original, remaining string) ItemOption {
	return func(r *domain.RawItem) {
		r.OriginalEstimateText = &original
		r.RemainingEstimateText = &remaining
	}
}

func WithoutTitle() ItemOption {
	return func(r *domain.RawItem) {
		r.Title = nil
	}
}

// NewRawItem returns a card with a title and empty estimate texts, so it
// parses as unestimated unless options say otherwise.
func NewRawItem(title string, opts ...ItemOption) domain.RawItem {
	empty := ""
	r := domain.RawItem{
		Title:                 &title,
		OriginalEstimateText:  &empty,
		RemainingEstimateText: &empty,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func NewSection(label string, items ...domain.RawItem) domain.Section {
	return domain.Section{Label: label, Items: items}
}

// SampleBoard is a small board touching every summary rule: an under-run
// sprint card, an over-run card, an unestimated card and a card without a
// priority marker.
func SampleBoard() []domain.Section {
	return []domain.Section{
		NewSection("Sprint 7",
			NewRawItem("Checkout flow", WithPriority("High"), WithEstimates("1 day, 4 hours", "1 day")),
			NewRawItem("Fix flaky test", WithEstimates("2h", "3h")),
		),
		NewSection("Backlog",
			NewRawItem("Dark mode", WithPriority("Low")),
			NewRawItem("Audit logs", WithPriority("High"), WithEstimates("1d", "1d")),
		),
	}
}

// StaticSource is a BoardSource over fixed sections.
type StaticSource struct {
	Sections []domain.Section
	Err      error
	Calls    int
}

func (s *StaticSource) LoadSections(context.Context) ([]domain.Section, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Sections, nil
}
