package models

import "time"

const (
	StatusSuccess = "success"
	StatusRelapse = "relapse"
)

// DailyLog records the outcome of one habit on one calendar day.
// (HabitID, Date) is unique. The association fields are never loaded; they
// only carry the foreign keys for AutoMigrate.
type DailyLog struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	HabitID   uint    `gorm:"not null;uniqueIndex:uidx_daily_logs_habit_date"`
	Date      Date    `gorm:"not null;uniqueIndex:uidx_daily_logs_habit_date"`
	Status    string  `gorm:"size:20;not null;check:chk_daily_logs_status,status IN ('success', 'relapse')"`
	Note      *string `gorm:"type:text"`
	TriggerID *uint   `gorm:"index"`
	CreatedAt time.Time

	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Habit   *Habit   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Trigger *Trigger `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (entry DailyLog) OwnerID() uint {
	return entry.UserID
}

func IsValidStatus(status string) bool {
	return status == StatusSuccess || status == StatusRelapse
}
