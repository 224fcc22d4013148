package engine

import (
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRange_ContainsInclusive(t *testing.T) {
	r := Range{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(15))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(20.01))
}

func TestRange_WidenedAddsMarginBothSides(t *testing.T) {
	r := Range{Min: 102, Max: 540}.Widened()
	assert.InDelta(t, 58.2, r.Min, 1e-9)
	assert.InDelta(t, 583.8, r.Max, 1e-9)
}

func TestRange_WidenedClampsAtZero(t *testing.T) {
	r := Range{Min: 0, Max: 359}.Widened()
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 394.9, r.Max, 1e-9)
}

func TestDatasetRanges_CoversAllFields(t *testing.T) {
	ranges := DatasetRanges()
	for _, field := range featureOrder {
		_, ok := ranges[field]
		assert.True(t, ok, "no range for %s", field)
	}
}

func TestDatasetRanges_ReturnsFreshCopy(t *testing.T) {
	first := DatasetRanges()
	first[domain.FieldCement] = Range{Min: -1, Max: -1}

	second := DatasetRanges()
	assert.Equal(t, Range{Min: 102, Max: 540}, second[domain.FieldCement])
}
