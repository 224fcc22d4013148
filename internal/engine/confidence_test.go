package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_MapsStability(t *testing.T) {
	assert.InDelta(t, 0.92, Confidence(0.08), 1e-9)
	assert.InDelta(t, 0.85, Confidence(0.15), 1e-9)
}

func TestConfidence_ClampsAtUpperBound(t *testing.T) {
	assert.Equal(t, 0.95, Confidence(0))
	assert.Equal(t, 0.95, Confidence(0.01))
}

func TestConfidence_ClampsAtLowerBound(t *testing.T) {
	assert.Equal(t, 0.70, Confidence(0.5))
	assert.Equal(t, 0.70, Confidence(10))
}

func TestConfidence_NaNStabilityUsesLowerBound(t *testing.T) {
	assert.Equal(t, 0.70, Confidence(math.NaN()))
}
