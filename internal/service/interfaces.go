package service

import (
	"context"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/engine"
)

// PredictOutcome is the result of one prediction request: the stored
// result plus any non-blocking range warnings from permissive validation.
type PredictOutcome struct {
	Result   *domain.PredictionResult
	Warnings []string
}

// ModelSummary is the read-only model information shown to the user.
type ModelSummary struct {
	Type        string
	Version     string
	TrainedAt   string
	R2Score     float64
	MAE         float64
	CVScoreMean float64
	Stability   float64
	Confidence  float64
	InputFields []string
	OutputField string
}

// FeatureImportance is one per-field model weight, mapped to its display
// name for presentation.
type FeatureImportance struct {
	Field       string
	DisplayName string
	Weight      float64
}

// FieldRange pairs a field with its valid range, in canonical feature
// order, for building input controls.
type FieldRange struct {
	Field string
	Range engine.Range
}

type PredictionService interface {
	// Predict validates, predicts and appends the result to the history.
	Predict(ctx context.Context, mix domain.MixDesign) (*PredictOutcome, error)
	// Validate checks a mix without predicting.
	Validate(ctx context.Context, mix domain.MixDesign) engine.ValidationResult
	// ValidateWith checks a mix under an explicit policy instead of the
	// configured one.
	ValidateWith(ctx context.Context, mix domain.MixDesign, policy domain.ValidationPolicy) engine.ValidationResult
	Summary() ModelSummary
	// Importances returns per-field weights sorted by descending weight,
	// or nil when the artifact does not record them.
	Importances() []FeatureImportance
	Ranges() []FieldRange
	Presets() []engine.Preset
}

type HistoryService interface {
	List(ctx context.Context, limit int) ([]*domain.PredictionResult, error)
	GetByID(ctx context.Context, id string) (*domain.PredictionResult, error)
	Count(ctx context.Context) (int, error)
	// Clear removes all history and returns how many records were dropped.
	Clear(ctx context.Context) (int, error)
	// Export writes the full history as CSV into dir and returns the
	// generated file path.
	Export(ctx context.Context, dir string) (string, error)
}
