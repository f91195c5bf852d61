package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeClassPerformanceEmpty(t *testing.T) {
	e := testEngine()
	cp := e.AnalyzeClassPerformance(nil)
	assert.Equal(t, 0, cp.TotalStudents)
	assert.Equal(t, 0.0, cp.AvgScore)
	assert.Empty(t, cp.TopicRanking)
	assert.Empty(t, cp.StrongestTopic)
}

func TestAnalyzeClassPerformance(t *testing.T) {
	e := testEngine()

	alice := e.BuildPerformanceMap([]TestAttempt{
		{Topic: "Algebra", Score: 90},
		{Topic: "Geometry", Score: 60},
	})
	bob := e.BuildPerformanceMap([]TestAttempt{
		{Topic: "Algebra", Score: 70},
		{Topic: "Geometry", Score: 80},
	})

	cp := e.AnalyzeClassPerformance(map[string]PerformanceMap{
		"alice": alice,
		"bob":   bob,
	})

	assert.Equal(t, 2, cp.TotalStudents)
	// all four underlying scores: mean 75, median (70+80)/2
	assert.Equal(t, 75.0, cp.AvgScore)
	assert.Equal(t, 75.0, cp.MedianScore)

	require.Len(t, cp.TopicRanking, 2)
	assert.Equal(t, "Algebra", cp.TopicRanking[0].Topic) // (90+70)/2 = 80
	assert.Equal(t, 80.0, cp.TopicRanking[0].AvgScore)
	assert.Equal(t, 2, cp.TopicRanking[0].Students)
	assert.Equal(t, "Geometry", cp.TopicRanking[1].Topic) // (60+80)/2 = 70
	assert.Equal(t, 70.0, cp.TopicRanking[1].AvgScore)

	assert.Equal(t, "Algebra", cp.StrongestTopic)
	assert.Equal(t, "Geometry", cp.WeakestTopic)
}

func TestAnalyzeClassPerformanceSkipsUnknownTopics(t *testing.T) {
	e := testEngine()

	graded := e.BuildPerformanceMap([]TestAttempt{{Topic: "Algebra", Score: 80}})
	// a student whose only attempt has no usable score
	ungraded := e.BuildPerformanceMap([]TestAttempt{{Topic: "Algebra", Score: -1}})

	cp := e.AnalyzeClassPerformance(map[string]PerformanceMap{
		"graded":   graded,
		"ungraded": ungraded,
	})

	assert.Equal(t, 2, cp.TotalStudents)
	assert.Equal(t, 80.0, cp.AvgScore)
	require.Len(t, cp.TopicRanking, 1)
	assert.Equal(t, 1, cp.TopicRanking[0].Students)
}

func TestAnalyzeClassPerformanceRankingTiebreak(t *testing.T) {
	e := testEngine()
	pm := e.BuildPerformanceMap([]TestAttempt{
		{Topic: "Beta", Score: 70},
		{Topic: "Alpha", Score: 70},
	})
	cp := e.AnalyzeClassPerformance(map[string]PerformanceMap{"s": pm})
	require.Len(t, cp.TopicRanking, 2)
	assert.Equal(t, "Alpha", cp.TopicRanking[0].Topic)
	assert.Equal(t, "Beta", cp.WeakestTopic)
}
