package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/engine"
	"github.com/dparedes/hormigo/internal/model"
	"github.com/dparedes/hormigo/internal/repository"
	"github.com/dparedes/hormigo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureObserver records every event for assertions.
type captureObserver struct {
	events []PredictionEvent
}

func (o *captureObserver) ObservePrediction(_ context.Context, event PredictionEvent) {
	o.events = append(o.events, event)
}

func newTestServices(t *testing.T, policy domain.ValidationPolicy, observers ...PredictionObserver) (PredictionService, HistoryService) {
	t.Helper()
	m := testutil.NewTestModel(t)
	return newTestServicesWith(t, m, policy, observers...)
}

func newTestServicesWith(t *testing.T, m *model.Model, policy domain.ValidationPolicy, observers ...PredictionObserver) (PredictionService, HistoryService) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, err := engine.New(m, engine.DatasetRanges(), engine.NECBands(), policy, log)
	require.NoError(t, err)

	repo := repository.NewSQLitePredictionRepo(testutil.NewTestDB(t))
	return NewPredictionService(eng, m, repo, observers...), NewHistoryService(repo)
}

func TestPredictionService_PredictPersistsResult(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	outcome, err := predictions.Predict(ctx, testutil.ValidMix())
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.Result.ID)
	assert.Empty(t, outcome.Warnings)
	assert.InDelta(t, 225, outcome.Result.Strength, 1e-9)

	n, err := history.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := history.GetByID(ctx, outcome.Result.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.Result.Band, stored.Band)
}

func TestPredictionService_PredictSurfacesWarnings(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	mix := testutil.ValidMix()
	mix.Cement = 50
	outcome, err := predictions.Predict(ctx, mix)
	require.NoError(t, err)
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0], domain.FieldCement)

	// Warned predictions are still recorded.
	n, err := history.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPredictionService_FailedPredictionNotRecorded(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	mix := testutil.ValidMix()
	mix.Cement = 0
	_, err := predictions.Predict(ctx, mix)
	assert.ErrorIs(t, err, engine.ErrZeroCement)

	n, err := history.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPredictionService_ObserverSeesOutcomes(t *testing.T) {
	obs := &captureObserver{}
	predictions, _ := newTestServices(t, domain.PolicyPermissive, obs)
	ctx := context.Background()

	_, err := predictions.Predict(ctx, testutil.ValidMix())
	require.NoError(t, err)

	bad := testutil.ValidMix()
	bad.Cement = 0
	_, err = predictions.Predict(ctx, bad)
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "Resistencia Normal", obs.events[0].Band)
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, engine.ErrZeroCement)
}

func TestPredictionService_ValidateWithStrictPolicy(t *testing.T) {
	predictions, _ := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	mix := testutil.ValidMix()
	mix.Cement = 560 // within the widened range, above the raw maximum

	assert.Empty(t, predictions.Validate(ctx, mix).Violations)

	res := predictions.ValidateWith(ctx, mix, domain.PolicyStrict)
	assert.False(t, res.Valid)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], domain.FieldCement)
}

func TestPredictionService_Summary(t *testing.T) {
	predictions, _ := newTestServices(t, domain.PolicyPermissive)

	s := predictions.Summary()
	assert.Equal(t, "RandomForestRegressor", s.Type)
	assert.Equal(t, "1.1", s.Version)
	assert.InDelta(t, 0.9123, s.R2Score, 1e-9)
	assert.InDelta(t, 0.92, s.Confidence, 1e-9)
	assert.Len(t, s.InputFields, 8)
	assert.Equal(t, "Resistencia_Compresion_kg_cm2", s.OutputField)
}

func TestPredictionService_ImportancesSortedDescending(t *testing.T) {
	predictions, _ := newTestServices(t, domain.PolicyPermissive)

	imp := predictions.Importances()
	require.Len(t, imp, 8)
	assert.Equal(t, domain.FieldCement, imp[0].Field)
	assert.Equal(t, "Cemento", imp[0].DisplayName)
	for i := 1; i < len(imp); i++ {
		assert.GreaterOrEqual(t, imp[i-1].Weight, imp[i].Weight)
	}
}

func TestPredictionService_ImportancesNilWhenAbsent(t *testing.T) {
	m := testutil.NewTestModelWith(t, testutil.NegativeArtifactJSON, testutil.MetadataJSON(0.08))
	predictions, _ := newTestServicesWith(t, m, domain.PolicyPermissive)
	assert.Nil(t, predictions.Importances())
}

func TestPredictionService_RangesInCanonicalOrder(t *testing.T) {
	predictions, _ := newTestServices(t, domain.PolicyPermissive)

	ranges := predictions.Ranges()
	require.Len(t, ranges, 8)
	assert.Equal(t, domain.FieldCement, ranges[0].Field)
	assert.Equal(t, engine.Range{Min: 102, Max: 540}, ranges[0].Range)
	assert.Equal(t, domain.FieldAge, ranges[7].Field)
}
