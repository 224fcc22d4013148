package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/engine"
	"github.com/dparedes/hormigo/internal/model"
	"github.com/dparedes/hormigo/internal/repository"
	"github.com/google/uuid"
)

type predictionService struct {
	engine   *engine.Engine
	model    *model.Model
	history  repository.PredictionRepo
	observer PredictionObserver
}

// NewPredictionService wires the prediction pipeline to the history store.
func NewPredictionService(eng *engine.Engine, m *model.Model, history repository.PredictionRepo, observers ...PredictionObserver) PredictionService {
	var obs PredictionObserver = NoopPredictionObserver{}
	for _, o := range observers {
		if o != nil {
			obs = o
			break
		}
	}
	return &predictionService{engine: eng, model: m, history: history, observer: obs}
}

func (s *predictionService) Predict(ctx context.Context, mix domain.MixDesign) (*PredictOutcome, error) {
	started := time.Now()

	result, warnings, err := s.engine.Predict(mix)
	if err != nil {
		s.observer.ObservePrediction(ctx, PredictionEvent{
			Duration: time.Since(started),
			Err:      err,
		})
		return nil, err
	}

	result.ID = uuid.New().String()
	if err := s.history.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("recording prediction: %w", err)
	}

	s.observer.ObservePrediction(ctx, PredictionEvent{
		Duration: time.Since(started),
		Success:  true,
		Strength: result.Strength,
		Band:     result.Band,
		Warnings: len(warnings),
	})
	return &PredictOutcome{Result: result, Warnings: warnings}, nil
}

func (s *predictionService) Validate(ctx context.Context, mix domain.MixDesign) engine.ValidationResult {
	return s.engine.Validate(mix)
}

func (s *predictionService) ValidateWith(ctx context.Context, mix domain.MixDesign, policy domain.ValidationPolicy) engine.ValidationResult {
	return s.engine.ValidateWith(mix, policy)
}

func (s *predictionService) Summary() ModelSummary {
	meta := s.model.Metadata()
	return ModelSummary{
		Type:        meta.ModelInfo.Type,
		Version:     meta.ModelInfo.Version,
		TrainedAt:   meta.ModelInfo.TrainedAt,
		R2Score:     meta.Metrics.R2Score,
		MAE:         meta.Metrics.MAE,
		CVScoreMean: meta.Metrics.CVScoreMean,
		Stability:   meta.Metrics.Stability,
		Confidence:  engine.Confidence(meta.Metrics.Stability),
		InputFields: s.model.FeatureNames(),
		OutputField: meta.ModelInfo.OutputField,
	}
}

func (s *predictionService) Importances() []FeatureImportance {
	weights := s.model.FeatureImportances()
	if weights == nil {
		return nil
	}

	fields := s.model.FeatureNames()
	out := make([]FeatureImportance, 0, len(fields))
	for i, field := range fields {
		out = append(out, FeatureImportance{
			Field:       field,
			DisplayName: domain.DisplayName(field),
			Weight:      weights[i],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}

func (s *predictionService) Ranges() []FieldRange {
	ranges := s.engine.Ranges()
	out := make([]FieldRange, 0, len(ranges))
	for _, field := range s.model.FeatureNames() {
		if r, ok := ranges[field]; ok {
			out = append(out, FieldRange{Field: field, Range: r})
		}
	}
	return out
}

func (s *predictionService) Presets() []engine.Preset {
	return engine.Presets()
}
