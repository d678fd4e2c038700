package api

import (
	"time"

	"github.com/terraincognita07/steadfast/internal/models"
)

// dailyLogView exposes the habit and trigger references under both their
// short and _id names.
type dailyLogView struct {
	ID        uint        `json:"id"`
	Habit     uint        `json:"habit"`
	HabitID   uint        `json:"habit_id"`
	Trigger   *uint       `json:"trigger"`
	TriggerID *uint       `json:"trigger_id"`
	Date      models.Date `json:"date"`
	Status    string      `json:"status"`
	Note      *string     `json:"note"`
	CreatedAt time.Time   `json:"created_at"`
}

func newDailyLogView(entry models.DailyLog) dailyLogView {
	return dailyLogView{
		ID:        entry.ID,
		Habit:     entry.HabitID,
		HabitID:   entry.HabitID,
		Trigger:   entry.TriggerID,
		TriggerID: entry.TriggerID,
		Date:      entry.Date,
		Status:    entry.Status,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}
}

func newDailyLogViews(entries []models.DailyLog) []dailyLogView {
	views := make([]dailyLogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newDailyLogView(entry))
	}
	return views
}
