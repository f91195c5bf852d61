package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 20)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := BuildPaginationFromPage(40, 2, 20)
		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNext)
	})

	t.Run("empty result set still has one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("bad inputs normalized", func(t *testing.T) {
		p := BuildPaginationFromPage(10, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(503))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
