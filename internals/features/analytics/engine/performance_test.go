package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return New().WithClock(func() time.Time { return testClock })
}

func daysAgo(d float64) time.Time {
	return testClock.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func TestMapDifficultyToNumeric(t *testing.T) {
	e := testEngine()
	tests := []struct {
		in   string
		want float64
	}{
		{"easy", 30},
		{"medium", 60},
		{"hard", 85},
		{"HARD", 85},
		{" Medium ", 60},
		{"", 50},
		{"brutal", 50},
		{"75", 75},
		{"150", 100},
		{"0", 1},
		{"-4", 1},
		{"42.5", 42.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, e.MapDifficultyToNumeric(tt.in))
		})
	}
}

func TestDifficultyAdjustedScore(t *testing.T) {
	e := testEngine()
	// hard boosts past the cap
	assert.Equal(t, 100.0, e.DifficultyAdjustedScore(80, "hard"))
	// easy: 50 * (1 + 0.15)
	assert.InDelta(t, 57.5, e.DifficultyAdjustedScore(50, "easy"), 1e-9)
	// default difficulty 50: 60 * 1.25
	assert.InDelta(t, 75.0, e.DifficultyAdjustedScore(60, ""), 1e-9)
	// garbage score coerced to 0
	assert.Equal(t, 0.0, e.DifficultyAdjustedScore(math.NaN(), "hard"))
}

func TestWeightedScoreRecencyDecay(t *testing.T) {
	e := testEngine()

	// equal weights when everything is "now"
	same := []TestAttempt{{Score: 60}, {Score: 80}}
	assert.InDelta(t, 70.0, e.WeightedScore(same), 1e-9)

	// a 30-day-old attempt carries weight e^-1
	decayed := []TestAttempt{
		{Score: 100, OccurredAt: testClock},
		{Score: 0, OccurredAt: daysAgo(30)},
	}
	assert.InDelta(t, 73.11, e.WeightedScore(decayed), 1e-9)

	// zero timestamp means no decay
	assert.InDelta(t, 80.0, e.WeightedScore([]TestAttempt{{Score: 80}}), 1e-9)

	// future timestamps are treated as now, never boosted
	future := []TestAttempt{
		{Score: 100, OccurredAt: testClock.Add(48 * time.Hour)},
		{Score: 0, OccurredAt: testClock},
	}
	assert.InDelta(t, 50.0, e.WeightedScore(future), 1e-9)

	assert.Equal(t, 0.0, e.WeightedScore(nil))
}

func TestConsistency(t *testing.T) {
	e := testEngine()

	assert.Equal(t, 100, e.Consistency(nil))
	assert.Equal(t, 100, e.Consistency([]float64{80}))
	assert.Equal(t, 100, e.Consistency([]float64{70, 70, 70, 70}))

	// σ ≈ 15.81 → 100 - 31.62 ≈ 68
	assert.Equal(t, 68, e.Consistency([]float64{50, 90, 60, 80}))

	// σ = 50 hits the floor
	assert.Equal(t, 0, e.Consistency([]float64{0, 100}))

	// invalid entries are filtered before the math
	assert.Equal(t, 100, e.Consistency([]float64{80, math.NaN(), -5}))
}

func TestConsistencyMonotonicity(t *testing.T) {
	e := testEngine()
	tight := e.Consistency([]float64{68, 70, 72, 70})
	spread := e.Consistency([]float64{50, 90, 60, 80})
	assert.Greater(t, tight, spread)
}

func TestImprovementTrend(t *testing.T) {
	e := testEngine()

	assert.Equal(t, 0, e.ImprovementTrend(nil))
	assert.Equal(t, 0, e.ImprovementTrend([]TestAttempt{{Score: 90}}))

	rising := []TestAttempt{
		{Score: 50, OccurredAt: daysAgo(30)},
		{Score: 50, OccurredAt: daysAgo(20)},
		{Score: 90, OccurredAt: daysAgo(10)},
		{Score: 90, OccurredAt: daysAgo(1)},
	}
	assert.Equal(t, 40, e.ImprovementTrend(rising))

	// order of the input slice must not matter
	shuffled := []TestAttempt{rising[2], rising[0], rising[3], rising[1]}
	assert.Equal(t, 40, e.ImprovementTrend(shuffled))

	// odd count: early half is floor(n/2)
	odd := []TestAttempt{
		{Score: 50, OccurredAt: daysAgo(3)},
		{Score: 60, OccurredAt: daysAgo(2)},
		{Score: 100, OccurredAt: daysAgo(1)},
	}
	assert.Equal(t, 30, e.ImprovementTrend(odd))

	falling := []TestAttempt{
		{Score: 90, OccurredAt: daysAgo(2)},
		{Score: 50, OccurredAt: daysAgo(1)},
	}
	assert.Equal(t, -40, e.ImprovementTrend(falling))
}

func TestConfidenceScore(t *testing.T) {
	e := testEngine()

	// every factor at its ceiling
	assert.Equal(t, 100, e.ConfidenceScore(ConfidenceParams{
		Accuracy:      100,
		Consistency:   100,
		Trend:         30,
		TestCount:     50,
		AvgDifficulty: 100,
	}))

	// floor: count factor bottoms at 0.3, difficulty factor at 0.505
	// 0 + 0 + 0 + 3 + 2.525 → 6
	assert.Equal(t, 6, e.ConfidenceScore(ConfidenceParams{
		Trend:         -30,
		AvgDifficulty: 1,
	}))

	// NaN inputs never escape
	got := e.ConfidenceScore(ConfidenceParams{
		Accuracy:      math.NaN(),
		Consistency:   math.Inf(1),
		Trend:         math.NaN(),
		TestCount:     -3,
		AvgDifficulty: math.NaN(),
	})
	assert.GreaterOrEqual(t, got, 0)
	assert.LessOrEqual(t, got, 100)

	// trend norm saturates at ±1
	big := e.ConfidenceScore(ConfidenceParams{Trend: 300, AvgDifficulty: 50})
	capped := e.ConfidenceScore(ConfidenceParams{Trend: 30, AvgDifficulty: 50})
	assert.Equal(t, capped, big)
}

func TestClassifyStrengthBands(t *testing.T) {
	e := testEngine()
	tests := []struct {
		score int
		want  Strength
	}{
		{100, StrengthExcellent},
		{85, StrengthExcellent},
		{84, StrengthStrong},
		{70, StrengthStrong},
		{69, StrengthAverage},
		{55, StrengthAverage},
		{54, StrengthWeak},
		{40, StrengthWeak},
		{39, StrengthCritical},
		{0, StrengthCritical},
	}
	for _, tt := range tests {
		ta := e.AnalyzeTopicPerformance("Algebra", []TestAttempt{{Score: float64(tt.score)}})
		assert.Equal(t, tt.want, ta.Strength, "score %d", tt.score)
		assert.Equal(t, strengthColors[tt.want], ta.Color)
	}
}

func TestAnalyzeTopicPerformance(t *testing.T) {
	e := testEngine()

	t.Run("no valid scores yields unknown", func(t *testing.T) {
		ta := e.AnalyzeTopicPerformance("Geometry", []TestAttempt{
			{Score: math.NaN()}, {Score: -10}, {Score: 140},
		})
		assert.Equal(t, StrengthUnknown, ta.Strength)
		assert.Equal(t, 0, ta.AvgScore)
		assert.Equal(t, 0, ta.Confidence)
		assert.Empty(t, ta.Scores)
	})

	t.Run("bounds hold for mixed input", func(t *testing.T) {
		attempts := []TestAttempt{
			{Score: 45, Difficulty: "hard", OccurredAt: daysAgo(20)},
			{Score: 105, Difficulty: "hard", OccurredAt: daysAgo(10)},
			{Score: 88, Difficulty: "hard", OccurredAt: daysAgo(1)},
		}
		ta := e.AnalyzeTopicPerformance("Physics", attempts)
		assert.GreaterOrEqual(t, ta.AvgScore, 0)
		assert.LessOrEqual(t, ta.AvgScore, 100)
		assert.GreaterOrEqual(t, ta.Confidence, 0)
		assert.LessOrEqual(t, ta.Confidence, 100)
		assert.GreaterOrEqual(t, ta.Consistency, 0)
		assert.LessOrEqual(t, ta.Consistency, 100)
		assert.Equal(t, 3, ta.TestCount)
		assert.Len(t, ta.Scores, 2) // the 105 is dropped
	})

	t.Run("idempotent", func(t *testing.T) {
		attempts := []TestAttempt{
			{Score: 72, Difficulty: "medium", OccurredAt: daysAgo(5)},
			{Score: 81, Difficulty: "medium", OccurredAt: daysAgo(2)},
		}
		first := e.AnalyzeTopicPerformance("Chemistry", attempts)
		second := e.AnalyzeTopicPerformance("Chemistry", attempts)
		assert.Equal(t, first, second)
	})
}

func TestBuildPerformanceMap(t *testing.T) {
	e := testEngine()

	t.Run("empty input", func(t *testing.T) {
		pm := e.BuildPerformanceMap(nil)
		assert.Empty(t, pm.TopicAnalysis)
		assert.Empty(t, pm.Strengths)
		assert.Empty(t, pm.Weaknesses)
		assert.Equal(t, 0, pm.OverallScore)
	})

	t.Run("partitions by strength band", func(t *testing.T) {
		pm := e.BuildPerformanceMap([]TestAttempt{
			{Topic: "Algebra", Score: 92},
			{Topic: "Geometry", Score: 60},
			{Topic: "Trigonometry", Score: 45},
			{Topic: "Calculus", Score: math.NaN()},
		})
		require.Len(t, pm.TopicAnalysis, 4)
		assert.Contains(t, pm.Strengths, "Algebra")
		assert.Contains(t, pm.Weaknesses, "Trigonometry")
		assert.NotContains(t, pm.Strengths, "Geometry")
		assert.NotContains(t, pm.Weaknesses, "Geometry")
		assert.NotContains(t, pm.Weaknesses, "Calculus")

		// unknown Calculus excluded: (92+60+45)/3 ≈ 66
		assert.Equal(t, 66, pm.OverallScore)
	})

	t.Run("blank topic becomes General", func(t *testing.T) {
		pm := e.BuildPerformanceMap([]TestAttempt{{Topic: "  ", Score: 75}})
		assert.Contains(t, pm.TopicAnalysis, "General")
	})
}

func TestLearningPriorities(t *testing.T) {
	e := testEngine()

	weak := func(conf, trend, count int) TopicAnalysis {
		return TopicAnalysis{Strength: StrengthWeak, Confidence: conf, Trend: trend, TestCount: count}
	}

	t.Run("ranking formula", func(t *testing.T) {
		pm := PerformanceMap{Weaknesses: map[string]TopicAnalysis{
			"Fractions": weak(30, -10, 5), // 28 + 3 + 1.5 = 32.5
			"Decimals":  weak(50, -20, 2), // 20 + 6 + 0.6 = 26.6
		}}
		got := e.LearningPriorities(pm, 0)
		require.Len(t, got, 2)
		assert.Equal(t, "Fractions", got[0].Topic)
		assert.Equal(t, 32.5, got[0].Priority)
		assert.Equal(t, "Decimals", got[1].Topic)
		assert.Equal(t, 26.6, got[1].Priority)
	})

	t.Run("positive trend contributes nothing", func(t *testing.T) {
		pm := PerformanceMap{Weaknesses: map[string]TopicAnalysis{
			"Ratios": weak(40, 15, 0),
		}}
		got := e.LearningPriorities(pm, 0)
		require.Len(t, got, 1)
		assert.Equal(t, 24.0, got[0].Priority) // (100-40)*0.4 only
	})

	t.Run("ties break on topic name", func(t *testing.T) {
		pm := PerformanceMap{Weaknesses: map[string]TopicAnalysis{
			"Beta":  weak(40, 0, 1),
			"Alpha": weak(40, 0, 1),
		}}
		got := e.LearningPriorities(pm, 0)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Topic)
	})

	t.Run("limit caps the list", func(t *testing.T) {
		pm := PerformanceMap{Weaknesses: map[string]TopicAnalysis{}}
		for _, topic := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			pm.Weaknesses[topic] = weak(40, 0, 1)
		}
		assert.Len(t, e.LearningPriorities(pm, 0), e.Config().PriorityLimit)
		assert.Len(t, e.LearningPriorities(pm, 2), 2)
	})
}
