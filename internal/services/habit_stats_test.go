package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/steadfast/internal/models"
)

func statsLog(date models.Date, status string) models.DailyLog {
	return models.DailyLog{Date: date, Status: status}
}

func TestBuildHabitStatsWithoutLogsIsZero(t *testing.T) {
	today := models.NewDate(2026, time.March, 10)
	stats := BuildHabitStats(models.Habit{GoalDays: 30}, nil, today)

	assert.Equal(t, HabitStats{GoalDays: 30}, stats)
}

func TestBuildHabitStatsScenario(t *testing.T) {
	today := models.NewDate(2026, time.March, 10)
	logs := []models.DailyLog{
		statsLog(today.AddDays(-20), models.StatusRelapse),
		statsLog(today, models.StatusSuccess),
		statsLog(today.AddDays(-3), models.StatusSuccess),
		statsLog(today.AddDays(-1), models.StatusSuccess),
		statsLog(today.AddDays(-12), models.StatusRelapse),
		statsLog(today.AddDays(-4), models.StatusSuccess),
		statsLog(today.AddDays(-2), models.StatusSuccess),
	}

	stats := BuildHabitStats(models.Habit{GoalDays: 10}, logs, today)

	assert.Equal(t, HabitStats{
		Streak:             5,
		TotalSuccessDays:   5,
		TotalRelapseCount:  2,
		GoalDays:           10,
		ProgressPercentage: 50,
	}, stats)
}

func TestCurrentStreak(t *testing.T) {
	today := models.NewDate(2026, time.March, 10)

	tests := []struct {
		name   string
		anchor models.Date
		logs   []models.DailyLog
		want   int
	}{
		{
			name: "relapse today breaks streak",
			logs: []models.DailyLog{
				statsLog(today, models.StatusRelapse),
				statsLog(today.AddDays(-1), models.StatusSuccess),
			},
			want: 0,
		},
		{
			name: "no log today means no streak",
			logs: []models.DailyLog{
				statsLog(today.AddDays(-1), models.StatusSuccess),
				statsLog(today.AddDays(-2), models.StatusSuccess),
			},
			want: 0,
		},
		{
			name: "gap stops the walk",
			logs: []models.DailyLog{
				statsLog(today, models.StatusSuccess),
				statsLog(today.AddDays(-1), models.StatusSuccess),
				statsLog(today.AddDays(-3), models.StatusSuccess),
			},
			want: 2,
		},
		{
			name:   "crosses month boundary",
			anchor: models.NewDate(2026, time.March, 1),
			logs: []models.DailyLog{
				statsLog(models.NewDate(2026, time.March, 1), models.StatusSuccess),
				statsLog(models.NewDate(2026, time.February, 28), models.StatusSuccess),
				statsLog(models.NewDate(2026, time.February, 27), models.StatusSuccess),
			},
			want: 3,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			anchor := testCase.anchor
			if anchor.IsZero() {
				anchor = today
			}
			assert.Equal(t, testCase.want, CurrentStreak(testCase.logs, anchor))
		})
	}
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, ProgressPercentage(12, 0))
	assert.Equal(t, 0, ProgressPercentage(12, -4))
	assert.Equal(t, 0, ProgressPercentage(0, 30))
	assert.Equal(t, 100, ProgressPercentage(45, 30))
	assert.Equal(t, 33, ProgressPercentage(1, 3))
	assert.Equal(t, 67, ProgressPercentage(2, 3))
	assert.Equal(t, 3, ProgressPercentage(1, 40))

	for goal := 0; goal <= 60; goal++ {
		for successes := 0; successes <= 90; successes++ {
			progress := ProgressPercentage(successes, goal)
			require.GreaterOrEqual(t, progress, 0)
			require.LessOrEqual(t, progress, 100)
		}
	}
}

func TestStatsServiceComputeForUserHidesForeignHabits(t *testing.T) {
	store := newMemoryStore()
	habit := store.addHabit(1, "Run", 10, true)
	service := NewStatsService(memoryHabits{store}, memoryLogs{store})

	_, err := service.ComputeForUser(2, habit.ID, models.NewDate(2026, time.March, 10))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.ComputeForUser(1, 999, models.NewDate(2026, time.March, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsServiceComputeForUser(t *testing.T) {
	store := newMemoryStore()
	today := models.NewDate(2026, time.March, 10)
	habit := store.addHabit(1, "Run", 4, true)
	store.addLog(habit, today, models.StatusSuccess)
	store.addLog(habit, today.AddDays(-1), models.StatusSuccess)
	store.addLog(habit, today.AddDays(-2), models.StatusRelapse)
	service := NewStatsService(memoryHabits{store}, memoryLogs{store})

	stats, err := service.ComputeForUser(1, habit.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, 2, stats.TotalSuccessDays)
	assert.Equal(t, 1, stats.TotalRelapseCount)
	assert.Equal(t, 50, stats.ProgressPercentage)
}
