// file: internals/features/analytics/engine/performance.go
package engine

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

/*
=========================================================

	PERFORMANCE ANALYSIS ENGINE
	Pure, stateless transformation of a student's attempt
	history into strength/weakness/confidence signals.
	No I/O, no persistence; safe for concurrent use.

=========================================================
*/

// TestAttempt is one completed test by one student.
type TestAttempt struct {
	Topic      string    `json:"topic"`
	Score      float64   `json:"score"` // percentage, 0–100
	Difficulty string    `json:"difficulty"`
	OccurredAt time.Time `json:"occurred_at"` // zero value → treated as now (no decay)
}

type Strength string

const (
	StrengthExcellent Strength = "excellent"
	StrengthStrong    Strength = "strong"
	StrengthAverage   Strength = "average"
	StrengthWeak      Strength = "weak"
	StrengthCritical  Strength = "critical"
	StrengthUnknown   Strength = "unknown"
)

// Presentation hint, 1:1 with the strength band.
var strengthColors = map[Strength]string{
	StrengthExcellent: "#22c55e",
	StrengthStrong:    "#84cc16",
	StrengthAverage:   "#eab308",
	StrengthWeak:      "#f97316",
	StrengthCritical:  "#ef4444",
	StrengthUnknown:   "#9ca3af",
}

// TopicAnalysis is the per-topic verdict for one student.
type TopicAnalysis struct {
	Topic       string    `json:"topic"`
	AvgScore    int       `json:"avg_score"`
	Strength    Strength  `json:"strength"`
	Confidence  int       `json:"confidence"`
	Trend       int       `json:"trend"` // signed percentage-point delta
	Consistency int       `json:"consistency"`
	Color       string    `json:"color"`
	TestCount   int       `json:"test_count"`
	Scores      []float64 `json:"scores"` // valid scores only
}

// PerformanceMap aggregates topic analyses for one student.
type PerformanceMap struct {
	TopicAnalysis map[string]TopicAnalysis `json:"topic_analysis"`
	Strengths     map[string]TopicAnalysis `json:"strengths"`
	Weaknesses    map[string]TopicAnalysis `json:"weaknesses"`
	OverallScore  int                      `json:"overall_score"`
}

// LearningPriority ranks a weak topic by urgency of remediation.
type LearningPriority struct {
	Topic      string  `json:"topic"`
	Score      int     `json:"score"`
	Confidence int     `json:"confidence"`
	Trend      int     `json:"trend"`
	Attempts   int     `json:"attempts"`
	Priority   float64 `json:"priority"`
}

// Engine evaluates attempt histories. The clock is injectable so
// recency weighting is deterministic under test.
type Engine struct {
	cfg Config
	now func() time.Time
}

func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

// WithClock returns a copy of the engine using the given clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	return &Engine{cfg: e.cfg, now: now}
}

func (e *Engine) Config() Config {
	return e.cfg
}

/* =========================================================
   Difficulty
========================================================= */

// MapDifficultyToNumeric is the single canonical difficulty mapping.
// Numeric strings pass through clamped to [1,100]; the easy/medium/hard
// enum maps to fixed values; anything else gets the default.
func (e *Engine) MapDifficultyToNumeric(difficulty string) float64 {
	d := strings.ToLower(strings.TrimSpace(difficulty))
	if d == "" {
		return e.cfg.DifficultyDefault
	}
	if n, err := strconv.ParseFloat(d, 64); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return e.cfg.DifficultyDefault
		}
		return Clamp(n, 1, 100)
	}
	switch d {
	case "easy":
		return e.cfg.DifficultyEasy
	case "medium":
		return e.cfg.DifficultyMedium
	case "hard":
		return e.cfg.DifficultyHard
	default:
		return e.cfg.DifficultyDefault
	}
}

// DifficultyAdjustedScore boosts a score by up to 50% of the
// difficulty fraction, capped at 100.
func (e *Engine) DifficultyAdjustedScore(score float64, difficulty string) float64 {
	d := e.MapDifficultyToNumeric(difficulty)
	adjusted := ToValidScore(score) * (1 + (d/100)*0.5)
	return math.Min(adjusted, 100)
}

/* =========================================================
   Core metrics
========================================================= */

// WeightedScore is the exponential-recency-weighted mean of the
// attempts' scores: weight = e^(-daysAgo/RecentDays). Attempts without
// a timestamp decay nothing. Empty input → 0. Rounded to 2dp.
func (e *Engine) WeightedScore(attempts []TestAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	now := e.now()
	var weightedSum, weightTotal float64
	for _, a := range attempts {
		daysAgo := 0.0
		if !a.OccurredAt.IsZero() {
			daysAgo = now.Sub(a.OccurredAt).Hours() / 24
			if daysAgo < 0 {
				daysAgo = 0
			}
		}
		w := math.Exp(-daysAgo / e.cfg.RecentDays)
		weightedSum += ToValidScore(a.Score) * w
		weightTotal += w
	}
	if weightTotal == 0 {
		return 0
	}
	return SafeRound(weightedSum/weightTotal, 2)
}

// Consistency is the inverse-variance measure in [0,100]:
// clamp(100 - (σ/50)*100, 0, 100) over the valid scores, where σ is the
// population standard deviation. Fewer than 2 valid scores → 100.
func (e *Engine) Consistency(scores []float64) int {
	valid := filterValid(scores)
	if len(valid) < 2 {
		return 100
	}
	sigma := StdDevPopulation(valid)
	return int(SafeRound(Clamp(100-(sigma/50)*100, 0, 100), 0))
}

// ImprovementTrend compares the recent half of the attempt history
// against the early half (chronological order, split at floor(n/2)).
// Fewer than 2 attempts → 0.
func (e *Engine) ImprovementTrend(attempts []TestAttempt) int {
	if len(attempts) < 2 {
		return 0
	}
	ordered := append([]TestAttempt(nil), attempts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
	})
	mid := len(ordered) / 2
	earlyAvg := meanOfScores(ordered[:mid])
	recentAvg := meanOfScores(ordered[mid:])
	return int(SafeRound(recentAvg-earlyAvg, 0))
}

// ConfidenceParams feed the composite confidence score.
type ConfidenceParams struct {
	Accuracy      float64 // weighted score, 0–100
	Consistency   float64 // 0–100
	Trend         float64 // signed percentage-point delta
	TestCount     int
	AvgDifficulty float64 // numeric difficulty, 1–100
}

// ConfidenceScore combines five independently clamped factors into a
// 0–100 integer. Any NaN intermediate collapses to 0.
func (e *Engine) ConfidenceScore(p ConfidenceParams) int {
	w := e.cfg.Confidence

	accuracy := ToValidScore(p.Accuracy)
	consistency := ToValidScore(p.Consistency)

	norm := Clamp(safeValue(p.Trend)/e.cfg.TrendNormDivisor, -1, 1)
	improvement := (norm + 1) * 50

	n := p.TestCount
	if n < 0 {
		n = 0
	}
	countFactor := math.Min(1, 0.3+math.Log(float64(n)+1)*0.2)

	difficultyFactor := 0.5 + Clamp(safeValue(p.AvgDifficulty), 1, 100)/200

	total := accuracy*w.Accuracy +
		consistency*w.Consistency +
		improvement*w.Improvement +
		countFactor*100*w.TestCount +
		difficultyFactor*100*w.Difficulty

	return int(SafeRound(Clamp(safeValue(total), 0, 100), 0))
}

/* =========================================================
   Topic / student analysis
========================================================= */

// AnalyzeTopicPerformance evaluates one topic's attempt history.
// No valid scores → the zeroed UNKNOWN analysis.
func (e *Engine) AnalyzeTopicPerformance(topic string, attempts []TestAttempt) TopicAnalysis {
	valid := make([]float64, 0, len(attempts))
	for _, a := range attempts {
		if IsValidScore(a.Score) {
			valid = append(valid, a.Score)
		}
	}
	if len(valid) == 0 {
		return TopicAnalysis{
			Topic:    topic,
			Strength: StrengthUnknown,
			Color:    strengthColors[StrengthUnknown],
			Scores:   []float64{},
		}
	}

	avgScore := int(SafeRound(Mean(valid), 0))
	consistency := e.Consistency(valid)
	weighted := e.WeightedScore(attempts)
	trend := e.ImprovementTrend(attempts)
	strength := e.classifyStrength(avgScore)

	confidence := e.ConfidenceScore(ConfidenceParams{
		Accuracy:      Clamp(weighted, 0, 100),
		Consistency:   float64(consistency),
		Trend:         float64(trend),
		TestCount:     len(attempts),
		AvgDifficulty: e.MapDifficultyToNumeric(attempts[0].Difficulty),
	})

	return TopicAnalysis{
		Topic:       topic,
		AvgScore:    avgScore,
		Strength:    strength,
		Confidence:  confidence,
		Trend:       trend,
		Consistency: consistency,
		Color:       strengthColors[strength],
		TestCount:   len(attempts),
		Scores:      valid,
	}
}

// classifyStrength bands by average score, top-down, lower bound inclusive.
func (e *Engine) classifyStrength(avgScore int) Strength {
	switch {
	case avgScore >= e.cfg.ExcellentMin:
		return StrengthExcellent
	case avgScore >= e.cfg.StrongMin:
		return StrengthStrong
	case avgScore >= e.cfg.AverageMin:
		return StrengthAverage
	case avgScore >= e.cfg.WeakMin:
		return StrengthWeak
	default:
		return StrengthCritical
	}
}

// BuildPerformanceMap groups attempts by topic, analyzes each group, and
// partitions the results. AVERAGE and UNKNOWN topics land in neither
// bucket; UNKNOWN topics are excluded from the overall score.
func (e *Engine) BuildPerformanceMap(attempts []TestAttempt) PerformanceMap {
	pm := PerformanceMap{
		TopicAnalysis: map[string]TopicAnalysis{},
		Strengths:     map[string]TopicAnalysis{},
		Weaknesses:    map[string]TopicAnalysis{},
	}

	groups := map[string][]TestAttempt{}
	for _, a := range attempts {
		topic := strings.TrimSpace(a.Topic)
		if topic == "" {
			topic = "General"
		}
		groups[topic] = append(groups[topic], a)
	}

	var avgSum float64
	var analyzed int
	for topic, group := range groups {
		ta := e.AnalyzeTopicPerformance(topic, group)
		pm.TopicAnalysis[topic] = ta
		switch ta.Strength {
		case StrengthExcellent, StrengthStrong:
			pm.Strengths[topic] = ta
		case StrengthWeak, StrengthCritical:
			pm.Weaknesses[topic] = ta
		}
		if ta.Strength != StrengthUnknown {
			avgSum += float64(ta.AvgScore)
			analyzed++
		}
	}
	if analyzed > 0 {
		pm.OverallScore = int(SafeRound(avgSum/float64(analyzed), 0))
	}
	return pm
}

// LearningPriorities ranks the weak topics by urgency. Only the negative
// portion of the trend contributes: improving topics get no trend boost.
func (e *Engine) LearningPriorities(pm PerformanceMap, limit int) []LearningPriority {
	if limit <= 0 {
		limit = e.cfg.PriorityLimit
	}
	w := e.cfg.Priority

	out := make([]LearningPriority, 0, len(pm.Weaknesses))
	for topic, ta := range pm.Weaknesses {
		priority := (100-float64(ta.Confidence))*w.Confidence +
			math.Max(0, -float64(ta.Trend))*w.Trend +
			float64(ta.TestCount)*w.TestCount
		out = append(out, LearningPriority{
			Topic:      topic,
			Score:      ta.AvgScore,
			Confidence: ta.Confidence,
			Trend:      ta.Trend,
			Attempts:   ta.TestCount,
			Priority:   SafeRound(priority, 2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Topic < out[j].Topic
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

/* =========================================================
   Small internals
========================================================= */

func filterValid(scores []float64) []float64 {
	out := make([]float64, 0, len(scores))
	for _, s := range scores {
		if IsValidScore(s) {
			out = append(out, s)
		}
	}
	return out
}

func meanOfScores(attempts []TestAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range attempts {
		sum += ToValidScore(a.Score)
	}
	return sum / float64(len(attempts))
}

func safeValue(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
