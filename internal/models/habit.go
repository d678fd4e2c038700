package models

import "time"

const (
	DefaultGoalDays      = 30
	MaxHabitNameLength   = 200
	MaxTriggerNameLength = 200
)

type Habit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	StartDate Date      `gorm:"not null" json:"start_date"`
	GoalDays  int       `gorm:"not null;check:chk_habits_goal_days,goal_days >= 0" json:"goal_days"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (habit Habit) OwnerID() uint {
	return habit.UserID
}
