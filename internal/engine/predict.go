package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/model"
)

// Per-call prediction failures. Both are recoverable: shared state is
// never touched, and the caller may re-submit with corrected input.
var (
	ErrInvalidNumericInput = errors.New("mix design contains an invalid numeric value")
	ErrPredictionInvalid   = errors.New("model produced an invalid prediction")
	ErrZeroCement          = errors.New("cement is zero, water/cement ratio is undefined")
)

// Engine runs the full prediction pipeline: validation, inference, the
// derived engineering ratios, NEC classification and confidence. It holds
// only read-only state and is safe for concurrent use.
type Engine struct {
	model  *model.Model
	ranges RangeTable
	bands  BandTable
	policy domain.ValidationPolicy
	log    *slog.Logger

	// now is swapped in tests for deterministic timestamps.
	now func() time.Time
}

// New builds an Engine over a loaded model. The band table invariant is
// checked here so a misconfigured table fails fast instead of silently
// misclassifying.
func New(m *model.Model, ranges RangeTable, bands BandTable, policy domain.ValidationPolicy, log *slog.Logger) (*Engine, error) {
	if err := bands.Validate(); err != nil {
		return nil, fmt.Errorf("band table: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		model:  m,
		ranges: ranges,
		bands:  bands,
		policy: policy,
		log:    log,
		now:    time.Now,
	}, nil
}

// Policy returns the validation policy the engine was built with.
func (e *Engine) Policy() domain.ValidationPolicy { return e.policy }

// Ranges returns the range table (callers use it to build input controls).
func (e *Engine) Ranges() RangeTable { return e.ranges }

// Bands returns the classification band table.
func (e *Engine) Bands() BandTable { return e.bands }

// Validate checks the mix under the engine's policy.
func (e *Engine) Validate(mix domain.MixDesign) ValidationResult {
	return e.ValidateWith(mix, e.policy)
}

// ValidateWith checks the mix under an explicit policy, regardless of the
// one the engine was built with. Callers use it to apply strict-range
// semantics on top of a permissive engine.
func (e *Engine) ValidateWith(mix domain.MixDesign, policy domain.ValidationPolicy) ValidationResult {
	return Validate(mix, e.model.FeatureNames(), e.ranges, policy)
}

// Predict produces a PredictionResult for the mix, or an error from the
// per-call taxonomy. The returned warnings are the non-blocking
// permissive-mode violations; under the strict policy any violation
// surfaces as a *ValidationError instead.
func (e *Engine) Predict(mix domain.MixDesign) (*domain.PredictionResult, []string, error) {
	validation := e.Validate(mix)
	if !validation.Valid {
		return nil, nil, &ValidationError{Violations: validation.Violations}
	}
	for _, v := range validation.Violations {
		e.log.Warn("mix outside recorded ranges", "violation", v)
	}

	// The vector order always comes from the metadata, matching the order
	// the artifact was trained with.
	features := e.model.FeatureNames()
	vector := make([]float64, len(features))
	for i, field := range features {
		v, _ := mix.Value(field)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, nil, fmt.Errorf("%w: %s = %g", ErrInvalidNumericInput, field, v)
		}
		vector[i] = v
	}

	strength := e.model.Predict(vector)
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrPredictionInvalid, strength)
	}

	// Policy decision, not bug masking: predicted strength is never
	// surfaced negative. Rare forest artifacts can extrapolate below zero;
	// the correction is explicit and logged.
	if strength < 0 {
		corrected := math.Abs(strength)
		e.log.Warn("negative prediction corrected", "raw", strength, "corrected", corrected)
		strength = corrected
	}

	if mix.Cement == 0 {
		return nil, nil, ErrZeroCement
	}

	result := &domain.PredictionResult{
		Mix:               mix,
		Strength:          strength,
		WaterCementRatio:  mix.Water / mix.Cement,
		CementitiousTotal: mix.Cement + mix.Slag + mix.FlyAsh,
		Confidence:        Confidence(e.model.Metadata().Metrics.Stability),
		AgeDays:           mix.AgeDays,
		CreatedAt:         e.now(),
	}

	band := e.bands.Classify(strength)
	result.Band = band.Label
	result.BandColor = band.Color
	result.BandDescription = band.Description

	return result, validation.Violations, nil
}
