package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// StepEvent captures the outcome of one completion-pipeline step or
// a standalone recompute.
type StepEvent struct {
	Pipeline string
	Step     string
	EntityID string
	Duration time.Duration
	Err      error
}

// StepObserver receives pipeline step events. Failed steps on
// side-effect paths are reported here instead of being surfaced to
// the caller.
type StepObserver interface {
	ObserveStep(ctx context.Context, event StepEvent)
}

// NoopStepObserver ignores all events.
type NoopStepObserver struct{}

func (NoopStepObserver) ObserveStep(context.Context, StepEvent) {}

type logStepObserver struct {
	logger *slog.Logger
}

// NewLogStepObserver writes pipeline step events to the provided writer.
func NewLogStepObserver(w io.Writer) StepObserver {
	if w == nil {
		return NoopStepObserver{}
	}
	return &logStepObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logStepObserver) ObserveStep(ctx context.Context, event StepEvent) {
	attrs := []any{
		"pipeline", event.Pipeline,
		"step", event.Step,
		"entity_id", event.EntityID,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "pipeline_step", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "pipeline_step", attrs...)
}

func stepObserverOrNoop(observers []StepObserver) StepObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopStepObserver{}
}
