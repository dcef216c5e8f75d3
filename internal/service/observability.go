package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sprintsum/internal/logger"
	"github.com/rs/zerolog"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *zerolog.Logger
}

// NewLogUseCaseObserver writes use-case events through l. A nil logger
// resolves to the logger carried by each event's context.
func NewLogUseCaseObserver(l *zerolog.Logger) UseCaseObserver {
	return &logUseCaseObserver{logger: l}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	l := o.logger
	tagRun := true
	if l == nil {
		// The context logger already carries run_id.
		l = logger.Get(ctx)
		tagRun = false
	}

	var e *zerolog.Event
	if event.Err != nil {
		e = l.Error().Err(event.Err)
	} else {
		e = l.Info()
	}
	if runID := logger.GetRunID(ctx); tagRun && runID != "" {
		e = e.Str("run_id", runID)
	}
	e.Str("use_case", event.Name).
		Int64("duration_ms", event.Duration.Milliseconds()).
		Bool("success", event.Success).
		Fields(event.Fields).
		Msg("service_use_case")
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
