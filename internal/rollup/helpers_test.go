package rollup

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/stretchr/testify/require"
)

// item builds a work item from estimate texts; an empty priority leaves the
// marker absent.
func item(t *testing.T, group, title, priority, original, remaining string) *domain.WorkItem {
	t.Helper()
	raw := domain.RawItem{
		Title:                 domain.StrPtr(title),
		OriginalEstimateText:  domain.StrPtr(original),
		RemainingEstimateText: domain.StrPtr(remaining),
	}
	if priority != "" {
		raw.PriorityLabel = domain.StrPtr(priority)
	}
	w, err := domain.NewWorkItem(group, raw)
	require.NoError(t, err)
	return w
}

// hoursText renders h as estimate text, treating negative values as an
// unparseable estimate.
func hoursText(h int) string {
	if h < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%dh", h)
}

func mustItem(group, priority string, original, remaining int) *domain.WorkItem {
	raw := domain.RawItem{
		Title:                 domain.StrPtr("card"),
		PriorityLabel:         domain.StrPtr(priority),
		OriginalEstimateText:  domain.StrPtr(hoursText(original)),
		RemainingEstimateText: domain.StrPtr(hoursText(remaining)),
	}
	w, err := domain.NewWorkItem(group, raw)
	if err != nil {
		panic(err)
	}
	return w
}
