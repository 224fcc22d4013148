package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/engine"
	"github.com/dparedes/hormigo/internal/repository"
	"github.com/dparedes/hormigo/internal/service"
	"github.com/dparedes/hormigo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an App over a permissive engine and an in-memory
// history store, stdin treated as non-interactive.
func newTestApp(t *testing.T) (*App, service.HistoryService) {
	t.Helper()
	m := testutil.NewTestModel(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, err := engine.New(m, engine.DatasetRanges(), engine.NECBands(), domain.PolicyPermissive, log)
	require.NoError(t, err)

	repo := repository.NewSQLitePredictionRepo(testutil.NewTestDB(t))
	history := service.NewHistoryService(repo)
	app := &App{
		Predictions:   service.NewPredictionService(eng, m, repo),
		History:       history,
		IsInteractive: func() bool { return false },
	}
	return app, history
}

func runCommand(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestPredictCmd_RecordsPrediction(t *testing.T) {
	app, history := newTestApp(t)

	err := runCommand(t, app, "predict", "--cement", "280", "--water", "175")
	require.NoError(t, err)

	n, err := history.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPredictCmd_StrictRejectsRawRangeViolation(t *testing.T) {
	app, history := newTestApp(t)

	// Cement 560 passes the permissive engine (widened max 583.8) but is
	// above the raw maximum of 540, so --strict must block it.
	err := runCommand(t, app, "predict", "--cement", "560", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict")

	n, err := history.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPredictCmd_WithoutStrictWidenedValuePredicts(t *testing.T) {
	app, history := newTestApp(t)

	err := runCommand(t, app, "predict", "--cement", "560")
	require.NoError(t, err)

	n, err := history.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPredictCmd_StrictAcceptsInRangeMix(t *testing.T) {
	app, history := newTestApp(t)

	err := runCommand(t, app, "predict", "--cement", "320", "--strict")
	require.NoError(t, err)

	n, err := history.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPredictCmd_UnknownPreset(t *testing.T) {
	app, _ := newTestApp(t)

	err := runCommand(t, app, "predict", "--preset", "C99 - Inexistente")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestPredictCmd_PresetFlagOverride(t *testing.T) {
	app, history := newTestApp(t)

	// The preset pre-fills the mix; an explicit flag wins over it.
	err := runCommand(t, app, "predict", "--preset", "C20 - Uso General", "--age", "90")
	require.NoError(t, err)

	list, err := history.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 90.0, list[0].Mix.AgeDays)
	assert.Equal(t, 280.0, list[0].Mix.Cement)
}
