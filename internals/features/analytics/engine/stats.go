// file: internals/features/analytics/engine/stats.go
package engine

import (
	"math"
	"sort"
)

/*
=========================================================

	SHARED STATISTICAL HELPERS
	Single coercion gate for scores plus the usual
	mean/median/stddev primitives. Everything defensive:
	NaN/Inf never escapes, invalid scores become 0.

=========================================================
*/

// IsValidScore reports whether x is a usable percentage score.
func IsValidScore(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0 && x <= 100
}

// ToValidScore coerces x into [0,100]; anything unusable becomes 0.
// This is the single ingestion gate for every score the engine touches.
func ToValidScore(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return Clamp(x, 0, 100)
}

// SafeRound rounds x to the given number of decimals; NaN/Inf become 0.
func SafeRound(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mean of a score list; empty → 0.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median sorts ascending; even count averages the two middle values.
// Result rounded to 2 decimal places. Empty → 0.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := n / 2
	if n%2 == 0 {
		return SafeRound((sorted[mid-1]+sorted[mid])/2, 2)
	}
	return SafeRound(sorted[mid], 2)
}

// StdDevPopulation: population standard deviation; <1 value → 0.
func StdDevPopulation(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	return math.Sqrt(variance(xs, float64(n)))
}

// StdDevSample: sample standard deviation; <2 values → 0.
func StdDevSample(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	return math.Sqrt(variance(xs, float64(n-1)))
}

func variance(xs []float64, divisor float64) float64 {
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / divisor
}

/*
=========================================================

	GRADE DISTRIBUTION
	Fixed bins the overview dashboard renders:
	[0,60) F, [60,70) D, [70,80) C, [80,90) B, [90,100] A

=========================================================
*/

type GradeBin struct {
	Label    string  `json:"label"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"` // exclusive upper bound, except the top bin
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

// DistributionBins partitions scores into the fixed grade bins.
// Invalid scores are dropped, not binned.
func DistributionBins(scores []float64) []GradeBin {
	bins := []GradeBin{
		{Label: "F (<60)", Min: 0, Max: 60},
		{Label: "D (60-69)", Min: 60, Max: 70},
		{Label: "C (70-79)", Min: 70, Max: 80},
		{Label: "B (80-89)", Min: 80, Max: 90},
		{Label: "A (90-100)", Min: 90, Max: 101},
	}
	sums := make([]float64, len(bins))
	for _, s := range scores {
		if !IsValidScore(s) {
			continue
		}
		for i := range bins {
			if s >= bins[i].Min && s < bins[i].Max {
				bins[i].Count++
				sums[i] += s
				break
			}
		}
	}
	for i := range bins {
		if bins[i].Count > 0 {
			bins[i].AvgScore = SafeRound(sums[i]/float64(bins[i].Count), 2)
		}
	}
	return bins
}
