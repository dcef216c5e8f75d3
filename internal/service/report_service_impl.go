package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/logger"
	"github.com/alexanderramin/sprintsum/internal/rollup"
	"github.com/google/uuid"
)

type reportService struct {
	observer UseCaseObserver
	newID    func() string
}

func NewReportService(observers ...UseCaseObserver) ReportService {
	return &reportService{
		observer: useCaseObserverOrNoop(observers),
		newID:    uuid.NewString,
	}
}

func (s *reportService) Generate(ctx context.Context, src BoardSource, req contract.ReportRequest) (resp *contract.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	runID := s.newID()
	ctx = logger.WithRunID(ctx, runID)
	fields := map[string]any{
		"source": req.Source,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	sections, err := src.LoadSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	fields["section_count"] = len(sections)
	logger.Get(ctx).Debug().Int("sections", len(sections)).Msg("board loaded")

	report, err := rollup.BuildReport(sections)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	fields["item_count"] = report.Overall.Count
	fields["tier_count"] = len(report.Tiers)

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	return contract.FromReport(runID, req.Source, now, report), nil
}
