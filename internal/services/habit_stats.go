package services

import (
	"math"

	"github.com/terraincognita07/steadfast/internal/models"
)

type HabitStats struct {
	Streak             int `json:"streak"`
	TotalSuccessDays   int `json:"total_success_days"`
	TotalRelapseCount  int `json:"total_relapse_count"`
	GoalDays           int `json:"goal_days"`
	ProgressPercentage int `json:"progress_percentage"`
}

// BuildHabitStats derives the statistics of one habit from its logs.
// logs must all belong to habit; their order does not matter.
func BuildHabitStats(habit models.Habit, logs []models.DailyLog, today models.Date) HabitStats {
	successes, relapses := CountOutcomes(logs)
	return HabitStats{
		Streak:             CurrentStreak(logs, today),
		TotalSuccessDays:   successes,
		TotalRelapseCount:  relapses,
		GoalDays:           habit.GoalDays,
		ProgressPercentage: ProgressPercentage(successes, habit.GoalDays),
	}
}

// CurrentStreak counts consecutive calendar days with a success log, walking
// backward from today. A missing day or a relapse ends the streak.
func CurrentStreak(logs []models.DailyLog, today models.Date) int {
	if len(logs) == 0 || today.IsZero() {
		return 0
	}

	statusByDay := make(map[string]string, len(logs))
	for _, entry := range logs {
		statusByDay[entry.Date.String()] = entry.Status
	}

	streak := 0
	for day := today; statusByDay[day.String()] == models.StatusSuccess; day = day.AddDays(-1) {
		streak++
	}
	return streak
}

func CountOutcomes(logs []models.DailyLog) (successes int, relapses int) {
	for _, entry := range logs {
		switch entry.Status {
		case models.StatusSuccess:
			successes++
		case models.StatusRelapse:
			relapses++
		}
	}
	return successes, relapses
}

// ProgressPercentage is the share of goalDays covered by successDays, capped
// at 100 and rounded half away from zero.
func ProgressPercentage(successDays int, goalDays int) int {
	if goalDays <= 0 || successDays <= 0 {
		return 0
	}
	ratio := math.Min(100, 100*float64(successDays)/float64(goalDays))
	return int(math.Round(ratio))
}
