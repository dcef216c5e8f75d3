package service

import (
	"context"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
)

// BoardSource yields the sections of a board snapshot.
type BoardSource interface {
	LoadSections(ctx context.Context) ([]domain.Section, error)
}

type ReportService interface {
	Generate(ctx context.Context, src BoardSource, req contract.ReportRequest) (*contract.ReportResponse, error)
}
