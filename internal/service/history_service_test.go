package service

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_ListNewestFirst(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	first, err := predictions.Predict(ctx, testutil.ValidMix())
	require.NoError(t, err)
	second, err := predictions.Predict(ctx, testutil.ValidMix())
	require.NoError(t, err)

	list, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Same timestamp resolution can tie; both must be present.
	ids := []string{list[0].ID, list[1].ID}
	assert.Contains(t, ids, first.Result.ID)
	assert.Contains(t, ids, second.Result.ID)
}

func TestHistoryService_ClearReturnsDroppedCount(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := predictions.Predict(ctx, testutil.ValidMix())
		require.NoError(t, err)
	}

	n, err := history.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = history.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestHistoryService_ExportWritesCSV(t *testing.T) {
	predictions, history := newTestServices(t, domain.PolicyPermissive)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := predictions.Predict(ctx, testutil.ValidMix())
		require.NoError(t, err)
	}

	dir := t.TempDir()
	path, err := history.Export(ctx, dir)
	require.NoError(t, err)
	assert.Contains(t, path, "historial_predicciones_")
	assert.True(t, strings.HasSuffix(path, ".csv"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3) // header plus two records
	assert.True(t, strings.HasPrefix(lines[0], "timestamp,"))
	assert.Contains(t, lines[1], "Resistencia Normal")
}

func TestHistoryService_ExportEmptyHistory(t *testing.T) {
	_, history := newTestServices(t, domain.PolicyPermissive)

	_, err := history.Export(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to export")
}
