package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todoboard/internal/dto"
	"todoboard/internal/utils"
)

func TestExtractDatePart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-02-19", utils.ExtractDatePart("2026-02-19T15:04:05Z"))
	assert.Equal(t, "", utils.ExtractDatePart(""))

	// Stable under repeated application.
	once := utils.ExtractDatePart("2026-02-19T00:00:00Z")
	assert.Equal(t, once, utils.ExtractDatePart(once))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "19 Feb 2026", utils.FormatDate(&d))
	assert.Equal(t, "", utils.FormatDate(nil))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsValidDate(""))
	assert.True(t, utils.IsValidDate("2026-02-19"))
	assert.True(t, utils.IsValidDate("2026-02-19T15:04:05Z"))
	assert.False(t, utils.IsValidDate("19/02/2026"))
}

func todosFixture() []dto.TodoResponse {
	return []dto.TodoResponse{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c", Completed: false},
		{ID: 4, Title: "d", Completed: false},
	}
}

func TestFilterByCompletedPartitions(t *testing.T) {
	t.Parallel()

	todos := todosFixture()
	active := utils.FilterByCompleted(todos, false)
	completed := utils.FilterByCompleted(todos, true)

	// active and completed partition the collection.
	assert.Len(t, active, 3)
	assert.Len(t, completed, 1)
	assert.Equal(t, len(todos), len(active)+len(completed))
	for _, todo := range active {
		assert.False(t, todo.Completed)
	}
	for _, todo := range completed {
		assert.True(t, todo.Completed)
	}
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	stats := utils.ComputeStats(todosFixture())
	assert.Equal(t, utils.Stats{Total: 4, Completed: 1, Active: 3, Progress: 25}, stats)
}

func TestComputeStatsEmpty(t *testing.T) {
	t.Parallel()

	stats := utils.ComputeStats(nil)
	assert.Equal(t, utils.Stats{}, stats)
}

func TestComputeStatsRounding(t *testing.T) {
	t.Parallel()

	todos := []dto.TodoResponse{
		{ID: 1, Completed: true},
		{ID: 2, Completed: true},
		{ID: 3, Completed: false},
	}
	assert.Equal(t, 67, utils.ComputeStats(todos).Progress)
}
