package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{80}, 80},
		{"even count averages middle pair", []float64{60, 70, 80, 90}, 75.00},
		{"odd count takes middle", []float64{60, 70, 90}, 70},
		{"unsorted input", []float64{90, 60, 80, 70}, 75.00},
		{"rounds to 2dp", []float64{70.004, 70.011}, 70.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Median(tt.scores), 1e-9)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	scores := []float64{90, 60, 80}
	Median(scores)
	assert.Equal(t, []float64{90, 60, 80}, scores)
}

func TestSafeRound(t *testing.T) {
	assert.Equal(t, 1.23, SafeRound(1.2345, 2))
	assert.Equal(t, 1.0, SafeRound(0.5, 0))
	assert.Equal(t, 0.0, SafeRound(math.NaN(), 2))
	assert.Equal(t, 0.0, SafeRound(math.Inf(1), 2))
	assert.Equal(t, 0.0, SafeRound(math.Inf(-1), 0))
}

func TestToValidScore(t *testing.T) {
	assert.Equal(t, 0.0, ToValidScore(math.NaN()))
	assert.Equal(t, 0.0, ToValidScore(math.Inf(1)))
	assert.Equal(t, 0.0, ToValidScore(-5))
	assert.Equal(t, 100.0, ToValidScore(150))
	assert.Equal(t, 72.5, ToValidScore(72.5))
}

func TestStdDev(t *testing.T) {
	// population: mean 70, squared devs sum 1000 over n=4 → σ≈15.81
	scores := []float64{50, 90, 60, 80}
	assert.InDelta(t, 15.8114, StdDevPopulation(scores), 0.001)
	// sample divides by n-1
	assert.InDelta(t, 18.2574, StdDevSample(scores), 0.001)

	assert.Equal(t, 0.0, StdDevPopulation(nil))
	assert.Equal(t, 0.0, StdDevSample([]float64{80}))
}

func TestDistributionBins(t *testing.T) {
	bins := DistributionBins([]float64{55, 65, 75, 85, 95})
	require.Len(t, bins, 5)

	wantLabels := []string{"F (<60)", "D (60-69)", "C (70-79)", "B (80-89)", "A (90-100)"}
	wantAvgs := []float64{55, 65, 75, 85, 95}
	for i, b := range bins {
		assert.Equal(t, wantLabels[i], b.Label)
		assert.Equal(t, 1, b.Count)
		assert.Equal(t, wantAvgs[i], b.AvgScore)
	}
}

func TestDistributionBinsBoundaries(t *testing.T) {
	bins := DistributionBins([]float64{0, 59.99, 60, 69.99, 70, 79.99, 80, 89.99, 90, 100})
	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{2, 2, 2, 2, 2}, counts)
}

func TestDistributionBinsDropsInvalid(t *testing.T) {
	bins := DistributionBins([]float64{95, math.NaN(), -10, 120})
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 1, total)
}
