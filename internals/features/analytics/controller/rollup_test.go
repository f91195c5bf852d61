package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprovementDelta(t *testing.T) {
	t.Run("needs 4 attempts", func(t *testing.T) {
		assert.Nil(t, improvementDelta(nil))
		assert.Nil(t, improvementDelta([]float64{80}))
		assert.Nil(t, improvementDelta([]float64{80, 70, 60}))
	})

	t.Run("4 attempts: previous window is a single score", func(t *testing.T) {
		// recent (90+80+70)/3 = 80 vs previous 60
		got := improvementDelta([]float64{90, 80, 70, 60})
		require.NotNil(t, got)
		assert.InDelta(t, 20.0, *got, 1e-9)
	})

	t.Run("6 attempts: full 3-vs-3 windows", func(t *testing.T) {
		got := improvementDelta([]float64{100, 90, 80, 70, 60, 50})
		require.NotNil(t, got)
		assert.InDelta(t, 30.0, *got, 1e-9)
	})

	t.Run("older than 6 attempts are ignored", func(t *testing.T) {
		with := improvementDelta([]float64{100, 90, 80, 70, 60, 50, 0, 0})
		without := improvementDelta([]float64{100, 90, 80, 70, 60, 50})
		require.NotNil(t, with)
		assert.Equal(t, *without, *with)
	})

	t.Run("decline is negative", func(t *testing.T) {
		got := improvementDelta([]float64{50, 50, 50, 90, 90, 90})
		require.NotNil(t, got)
		assert.InDelta(t, -40.0, *got, 1e-9)
	})
}
