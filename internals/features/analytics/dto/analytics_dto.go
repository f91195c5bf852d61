// file: internals/features/analytics/dto/analytics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"bodhira_backend/internals/features/analytics/engine"
)

/* ===============================
   Classroom overview
=================================*/

type TrendPoint struct {
	TestID    uuid.UUID `json:"test_id"`
	AvgScore  float64   `json:"avg_score"`
	CreatedAt time.Time `json:"created_at"`
	Topic     string    `json:"topic"`
}

type TopicStat struct {
	Topic      string  `json:"topic"`
	AvgScore   float64 `json:"avg_score"`
	Attempts   int     `json:"attempts"`
	TestsCount int     `json:"tests_count"`
}

type OverviewResponse struct {
	AvgScore         float64           `json:"avg_score"`
	MinScore         float64           `json:"min_score"`
	MaxScore         float64           `json:"max_score"`
	MedianScore      float64           `json:"median_score"`
	TotalResults     int64             `json:"total_results"`
	Distribution     []engine.GradeBin `json:"distribution"`
	PerformanceTrend []TrendPoint      `json:"performance_trend"`
	TopicStats       []TopicStat       `json:"topic_stats"`
}

/* ===============================
   Per-student rollups
=================================*/

// TestResultItem is one raw attempt row — the direct input to the
// performance analysis engine.
type TestResultItem struct {
	Score      float64   `json:"score"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	TestCode   string    `json:"test_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type StudentOverview struct {
	StudentID        uuid.UUID        `json:"student_id"`
	Name             string           `json:"name"`
	AvgScore         float64          `json:"avg_score"`
	TestsTaken       int              `json:"tests_taken"`
	LastScore        float64          `json:"last_score"`
	ConsistencyScore float64          `json:"consistency_score"`
	ImprovementDelta *float64         `json:"improvement_delta"` // null when fewer than 4 attempts
	TestResults      []TestResultItem `json:"test_results"`
}

type HistoryItem struct {
	TestID   uuid.UUID `json:"test_id"`
	TestDate time.Time `json:"test_date"`
	Topic    string    `json:"topic"`
	Score    float64   `json:"score"`
}

/* ===============================
   Engine output over HTTP
=================================*/

type StudentPerformanceResponse struct {
	PerformanceMap     engine.PerformanceMap     `json:"performance_map"`
	LearningPriorities []engine.LearningPriority `json:"learning_priorities"`
}
