package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repositories groups the per-table repositories over one connection pool.
type Repositories struct {
	database *gorm.DB

	Users     *UserRepository
	Habits    *HabitRepository
	Triggers  *TriggerRepository
	DailyLogs *DailyLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database:  database,
		Users:     NewUserRepository(database),
		Habits:    NewHabitRepository(database),
		Triggers:  NewTriggerRepository(database),
		DailyLogs: NewDailyLogRepository(database),
	}
}

// Ping checks that the underlying connection is usable.
func (repos *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := repos.database.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
