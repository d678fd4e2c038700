package services

import (
	"math"

	"github.com/terraincognita07/steadfast/internal/models"
)

type StatsHabitReader interface {
	FindByID(habitID uint) (models.Habit, error)
	ListActiveByUser(userID uint) ([]models.Habit, error)
}

type StatsLogReader interface {
	ListByUserAndHabit(userID uint, habitID uint) ([]models.DailyLog, error)
}

type StatsService struct {
	habits StatsHabitReader
	logs   StatsLogReader
}

type DashboardItem struct {
	Habit models.Habit `json:"habit"`
	Stats HabitStats   `json:"stats"`
}

type DashboardSummary struct {
	ActiveCount           int             `json:"active_count"`
	TotalSuccessDays      int             `json:"total_success_days"`
	TotalRelapseCount     int             `json:"total_relapse_count"`
	AvgProgressPercentage int             `json:"avg_progress_percentage"`
	BestStreak            int             `json:"best_streak"`
	Items                 []DashboardItem `json:"items"`
}

func NewStatsService(habits StatsHabitReader, logs StatsLogReader) *StatsService {
	return &StatsService{
		habits: habits,
		logs:   logs,
	}
}

// ComputeForUser returns the stats of a habit owned by userID. Habits that do
// not exist or belong to someone else yield ErrNotFound.
func (service *StatsService) ComputeForUser(userID uint, habitID uint, today models.Date) (HabitStats, error) {
	habit, err := loadOwnedHabit(service.habits, userID, habitID)
	if err != nil {
		return HabitStats{}, err
	}
	return service.statsFor(userID, habit, today)
}

func (service *StatsService) BuildDashboard(userID uint, today models.Date) (DashboardSummary, error) {
	habits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		ActiveCount: len(habits),
		Items:       make([]DashboardItem, 0, len(habits)),
	}
	progressSum := 0
	for _, habit := range habits {
		stats, err := service.statsFor(userID, habit, today)
		if err != nil {
			return DashboardSummary{}, err
		}

		summary.TotalSuccessDays += stats.TotalSuccessDays
		summary.TotalRelapseCount += stats.TotalRelapseCount
		progressSum += stats.ProgressPercentage
		if stats.Streak > summary.BestStreak {
			summary.BestStreak = stats.Streak
		}
		summary.Items = append(summary.Items, DashboardItem{Habit: habit, Stats: stats})
	}

	if len(habits) > 0 {
		summary.AvgProgressPercentage = int(math.Round(float64(progressSum) / float64(len(habits))))
	}
	return summary, nil
}

func (service *StatsService) statsFor(userID uint, habit models.Habit, today models.Date) (HabitStats, error) {
	logs, err := service.logs.ListByUserAndHabit(userID, habit.ID)
	if err != nil {
		return HabitStats{}, err
	}
	return BuildHabitStats(habit, logs, today), nil
}
