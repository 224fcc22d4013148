package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PredictionEvent captures lightweight telemetry for one prediction
// request.
type PredictionEvent struct {
	Duration time.Duration
	Success  bool
	Err      error
	Strength float64
	Band     string
	Warnings int
}

// PredictionObserver receives prediction telemetry events.
type PredictionObserver interface {
	ObservePrediction(ctx context.Context, event PredictionEvent)
}

// NoopPredictionObserver ignores all events.
type NoopPredictionObserver struct{}

func (NoopPredictionObserver) ObservePrediction(context.Context, PredictionEvent) {}

type logPredictionObserver struct {
	logger *slog.Logger
}

// NewLogPredictionObserver writes prediction events to the provided writer.
func NewLogPredictionObserver(w io.Writer) PredictionObserver {
	if w == nil {
		return NoopPredictionObserver{}
	}
	return &logPredictionObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logPredictionObserver) ObservePrediction(ctx context.Context, event PredictionEvent) {
	attrs := []any{
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
		"warnings", event.Warnings,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "prediction", attrs...)
		return
	}
	attrs = append(attrs, "strength_kg_cm2", event.Strength, "band", event.Band)
	o.logger.InfoContext(ctx, "prediction", attrs...)
}
