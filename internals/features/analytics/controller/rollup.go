// file: internals/features/analytics/controller/rollup.go
package controller

import (
	"bodhira_backend/internals/features/analytics/engine"
)

// improvementDelta compares the average of the 3 most recent attempts
// against the average of the 3 before those (attempts 4–6). Input is
// most-recent-first. Needs at least one score in each window, i.e. 4
// total attempts; otherwise nil.
//
// Deliberately NOT the engine's ImprovementTrend (half-vs-half): the
// two metrics serve different views and use different windows.
func improvementDelta(scoresDesc []float64) *float64 {
	if len(scoresDesc) < 4 {
		return nil
	}
	recentEnd := 3
	if recentEnd > len(scoresDesc) {
		recentEnd = len(scoresDesc)
	}
	prevEnd := 6
	if prevEnd > len(scoresDesc) {
		prevEnd = len(scoresDesc)
	}
	recentAvg := engine.Mean(scoresDesc[:recentEnd])
	previousAvg := engine.Mean(scoresDesc[3:prevEnd])
	delta := engine.SafeRound(recentAvg-previousAvg, 2)
	return &delta
}
