// file: internals/features/analytics/engine/class.go
package engine

import "sort"

/*
=========================================================

	CLASS-WIDE ROLLUP
	Aggregates per-student performance maps into one
	class-level view: score statistics over every
	underlying attempt plus topics ranked by mean avg.

=========================================================
*/

type ClassTopicStat struct {
	Topic    string  `json:"topic"`
	AvgScore float64 `json:"avg_score"` // mean of students' topic averages, 2dp
	Students int     `json:"students"`
}

type ClassPerformance struct {
	TotalStudents int     `json:"total_students"`
	AvgScore      float64 `json:"avg_score"`
	MedianScore   float64 `json:"median_score"`
	StdDev        float64 `json:"std_dev"`

	// Sorted strongest first
	TopicRanking []ClassTopicStat `json:"topic_ranking"`

	StrongestTopic string `json:"strongest_topic,omitempty"`
	WeakestTopic   string `json:"weakest_topic,omitempty"`
}

// AnalyzeClassPerformance rolls up per-student maps. Students with no
// analyzed topics still count toward TotalStudents but contribute no
// scores.
func (e *Engine) AnalyzeClassPerformance(students map[string]PerformanceMap) ClassPerformance {
	cp := ClassPerformance{
		TotalStudents: len(students),
		TopicRanking:  []ClassTopicStat{},
	}

	var allScores []float64
	topicSums := map[string]float64{}
	topicCounts := map[string]int{}

	for _, pm := range students {
		for topic, ta := range pm.TopicAnalysis {
			if ta.Strength == StrengthUnknown {
				continue
			}
			allScores = append(allScores, ta.Scores...)
			topicSums[topic] += float64(ta.AvgScore)
			topicCounts[topic]++
		}
	}

	if len(allScores) > 0 {
		cp.AvgScore = SafeRound(Mean(allScores), 2)
		cp.MedianScore = Median(allScores)
		cp.StdDev = SafeRound(StdDevPopulation(allScores), 2)
	}

	for topic, sum := range topicSums {
		cp.TopicRanking = append(cp.TopicRanking, ClassTopicStat{
			Topic:    topic,
			AvgScore: SafeRound(sum/float64(topicCounts[topic]), 2),
			Students: topicCounts[topic],
		})
	}
	sort.SliceStable(cp.TopicRanking, func(i, j int) bool {
		if cp.TopicRanking[i].AvgScore != cp.TopicRanking[j].AvgScore {
			return cp.TopicRanking[i].AvgScore > cp.TopicRanking[j].AvgScore
		}
		return cp.TopicRanking[i].Topic < cp.TopicRanking[j].Topic
	})

	if len(cp.TopicRanking) > 0 {
		cp.StrongestTopic = cp.TopicRanking[0].Topic
		cp.WeakestTopic = cp.TopicRanking[len(cp.TopicRanking)-1].Topic
	}
	return cp
}
