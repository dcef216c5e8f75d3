package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/rollup"
)

// FixedTime is the generation timestamp used by report fixtures.
var FixedTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// NewReportResponse builds the response for the given sections with a fixed
// run ID and timestamp.
func NewReportResponse(t *testing.T, sections []domain.Section) *contract.ReportResponse {
	t.Helper()
	report, err := rollup.BuildReport(sections)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}
	return contract.FromReport("run-1", "board.json", FixedTime, report)
}

// SampleResponse is NewReportResponse over SampleBoard.
func SampleResponse(t *testing.T) *contract.ReportResponse {
	t.Helper()
	return NewReportResponse(t, SampleBoard())
}
