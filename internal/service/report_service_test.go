package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/logger"
	"github.com/alexanderramin/sprintsum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
	runIDs []string
}

func (o *recordingObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
	o.runIDs = append(o.runIDs, logger.GetRunID(ctx))
}

func newTestReportService(obs UseCaseObserver) *reportService {
	svc := NewReportService(obs).(*reportService)
	svc.newID = func() string { return "run-1" }
	return svc
}

func TestGenerate_BuildsSectionsOverallAndPriorities(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestReportService(obs)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	src := &testutil.StaticSource{Sections: testutil.SampleBoard()}

	resp, err := svc.Generate(context.Background(), src, contract.ReportRequest{Source: "board.json", Now: &now})
	require.NoError(t, err)

	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, "board.json", resp.Source)
	assert.Equal(t, now, resp.GeneratedAt)

	require.Len(t, resp.Sections, 2)
	sprint := resp.Sections[0]
	assert.Equal(t, "[11h/14h] Sprint 7: 2 issues", sprint.Summary.Headline)
	require.Len(t, sprint.Items, 2)
	assert.Equal(t, "Checkout flow", sprint.Items[0].Title)
	assert.Equal(t, domain.PriorityHigh, sprint.Items[0].Priority)
	assert.Equal(t, contract.EstimateCell{Text: "[8h/12h]", Tone: domain.ToneGood}, sprint.Items[0].Cell)
	assert.Equal(t, contract.EstimateCell{Text: "[3h/2h]", Tone: domain.ToneBad}, sprint.Items[1].Cell)
	assert.Equal(t, domain.PriorityFlagged, sprint.Items[1].Priority)

	backlog := resp.Sections[1]
	assert.Equal(t, contract.EstimateCell{Text: "[-]", Tone: domain.ToneBad}, backlog.Items[0].Cell)
	assert.Nil(t, backlog.Items[0].OriginalEstimate)

	assert.Equal(t, "[19h/22h] Overall: 4 issues", resp.Overall.Headline)

	var tiers []domain.Priority
	for _, p := range resp.Priorities {
		tiers = append(tiers, p.Tier)
		assert.Equal(t, string(p.Tier), p.IconKey)
	}
	assert.Equal(t, []domain.Priority{domain.PriorityFlagged, domain.PriorityHigh, domain.PriorityLow}, tiers)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "generate-report", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 2, ev.Fields["section_count"])
	assert.Equal(t, 4, ev.Fields["item_count"])
	assert.Equal(t, 3, ev.Fields["tier_count"])
	assert.Equal(t, []string{"run-1"}, obs.runIDs)
}

func TestGenerate_EmptyBoard(t *testing.T) {
	svc := newTestReportService(nil)

	resp, err := svc.Generate(context.Background(), &testutil.StaticSource{}, contract.ReportRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Sections)
	assert.Empty(t, resp.Priorities)
	assert.Equal(t, "[0h] Overall: 0 issues", resp.Overall.Headline)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestGenerate_SourceErrorIsWrapped(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestReportService(obs)
	boom := errors.New("disk on fire")

	_, err := svc.Generate(context.Background(), &testutil.StaticSource{Err: boom}, contract.ReportRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "loading board")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, err, obs.events[0].Err)
}

func TestGenerate_InvalidRecord(t *testing.T) {
	svc := newTestReportService(nil)
	src := &testutil.StaticSource{Sections: []domain.Section{
		testutil.NewSection("Sprint 1", testutil.NewRawItem("nameless", testutil.WithoutTitle())),
	}}

	_, err := svc.Generate(context.Background(), src, contract.ReportRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestLogUseCaseObserver_WritesZerologLine(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Init("info", true, &buf)
	obs := NewLogUseCaseObserver(l)

	ctx := logger.WithRunID(context.Background(), "run-9")
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "generate-report",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"item_count": 4},
	})

	out := buf.String()
	assert.Contains(t, out, `"use_case":"generate-report"`)
	assert.Contains(t, out, `"duration_ms":1500`)
	assert.Contains(t, out, `"item_count":4`)
	assert.Contains(t, out, `"run_id":"run-9"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Init("info", true, &buf)

	NewLogUseCaseObserver(l).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "generate-report",
		Err:  errors.New("bad board"),
	})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"bad board"`)
}
