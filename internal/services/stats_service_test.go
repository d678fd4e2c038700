package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/steadfast/internal/models"
)

func TestBuildDashboardWithoutActiveHabits(t *testing.T) {
	store := newMemoryStore()
	store.addHabit(1, "Archived", 10, false)
	service := NewStatsService(memoryHabits{store}, memoryLogs{store})

	summary, err := service.BuildDashboard(1, models.NewDate(2026, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ActiveCount)
	assert.Equal(t, 0, summary.AvgProgressPercentage)
	assert.Equal(t, 0, summary.BestStreak)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
}

func TestBuildDashboardAggregatesActiveHabits(t *testing.T) {
	store := newMemoryStore()
	today := models.NewDate(2026, time.March, 10)

	run := store.addHabit(1, "Run", 2, true)
	store.addLog(run, today, models.StatusSuccess)
	store.addLog(run, today.AddDays(-1), models.StatusSuccess)

	read := store.addHabit(1, "Read", 4, true)
	store.addLog(read, today, models.StatusSuccess)
	store.addLog(read, today.AddDays(-1), models.StatusRelapse)

	archived := store.addHabit(1, "Archived", 1, false)
	store.addLog(archived, today, models.StatusSuccess)

	foreign := store.addHabit(2, "Other", 1, true)
	store.addLog(foreign, today, models.StatusSuccess)

	service := NewStatsService(memoryHabits{store}, memoryLogs{store})
	summary, err := service.BuildDashboard(1, today)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ActiveCount)
	assert.Equal(t, 3, summary.TotalSuccessDays)
	assert.Equal(t, 1, summary.TotalRelapseCount)
	assert.Equal(t, 2, summary.BestStreak)
	// (100 + 25) / 2 rounds half away from zero.
	assert.Equal(t, 63, summary.AvgProgressPercentage)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, "Run", summary.Items[0].Habit.Name)
	assert.Equal(t, 1, summary.Items[1].Stats.Streak)
}
