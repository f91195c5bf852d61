// file: internals/features/analytics/engine/config.go
package engine

/*
=========================================================

	ENGINE CONFIG
	Every threshold/weight the analysis uses lives here so
	tests can assert on them and tuning never touches logic.

=========================================================
*/

// ConfidenceWeights are the five factor weights of the composite
// confidence score. They sum to 1.0.
type ConfidenceWeights struct {
	Accuracy    float64
	Consistency float64
	Improvement float64
	TestCount   float64
	Difficulty  float64
}

// PriorityWeights rank weak topics for remediation.
type PriorityWeights struct {
	Confidence float64 // applied to (100 - confidence)
	Trend      float64 // applied to the negative portion of trend only
	TestCount  float64
}

type Config struct {
	// Strength bands by avg score, evaluated top-down, lower bound inclusive
	ExcellentMin int
	StrongMin    int
	AverageMin   int
	WeakMin      int

	// Exponential recency decay: weight = e^(-daysAgo/RecentDays)
	RecentDays float64

	// Canonical difficulty → numeric mapping
	DifficultyEasy    float64
	DifficultyMedium  float64
	DifficultyHard    float64
	DifficultyDefault float64

	// Trend normalization divisor for the confidence improvement factor
	TrendNormDivisor float64

	Confidence ConfidenceWeights
	Priority   PriorityWeights

	// Default number of learning priorities returned
	PriorityLimit int
}

// DefaultConfig matches the dashboard's published thresholds.
func DefaultConfig() Config {
	return Config{
		ExcellentMin: 85,
		StrongMin:    70,
		AverageMin:   55,
		WeakMin:      40,

		RecentDays: 30,

		DifficultyEasy:    30,
		DifficultyMedium:  60,
		DifficultyHard:    85,
		DifficultyDefault: 50,

		TrendNormDivisor: 30,

		Confidence: ConfidenceWeights{
			Accuracy:    0.45,
			Consistency: 0.25,
			Improvement: 0.15,
			TestCount:   0.10,
			Difficulty:  0.05,
		},
		Priority: PriorityWeights{
			Confidence: 0.4,
			Trend:      0.3,
			TestCount:  0.3,
		},

		PriorityLimit: 5,
	}
}
