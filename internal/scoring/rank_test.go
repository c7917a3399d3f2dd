package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRanks_TiesGetMeanRank(t *testing.T) {
	ranks := averageRanks([]float64{30, 10, 10, 20})

	assert.InDelta(t, 4.0, ranks[0], 1e-9)
	assert.InDelta(t, 1.5, ranks[1], 1e-9)
	assert.InDelta(t, 1.5, ranks[2], 1e-9)
	assert.InDelta(t, 3.0, ranks[3], 1e-9)
}

func TestAverageRanks_MissingExcluded(t *testing.T) {
	ranks := averageRanks([]float64{30, math.NaN(), 10})

	assert.True(t, IsMissing(ranks[1]))
	assert.InDelta(t, 2.0, ranks[0], 1e-9)
	assert.InDelta(t, 1.0, ranks[2], 1e-9)
}

func TestQuantile_Interpolates(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 1.0, quantile(sorted, 0), 1e-9)
	assert.InDelta(t, 3.0, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 5.0, quantile(sorted, 1), 1e-9)
	assert.InDelta(t, 1.8, quantile(sorted, 0.2), 1e-9)
}

func TestDistinctCount_IgnoresMissing(t *testing.T) {
	assert.Equal(t, 2, distinctCount([]float64{1, 1, math.NaN(), 2}))
}
