package api

import (
	"github.com/terraincognita07/steadfast/internal/db"
	"github.com/terraincognita07/steadfast/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repos := handler.repositories

	if handler.authService == nil {
		handler.authService = services.NewAuthService(repos.Users)
	}
	if handler.habitService == nil {
		handler.habitService = services.NewHabitService(repos.Habits)
	}
	if handler.triggerService == nil {
		handler.triggerService = services.NewTriggerService(repos.Triggers)
	}
	if handler.logService == nil {
		handler.logService = services.NewDailyLogService(repos.DailyLogs, repos.Habits, repos.Triggers)
	}
	if handler.statsService == nil {
		handler.statsService = services.NewStatsService(repos.Habits, repos.DailyLogs)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(repos.DailyLogs, repos.Habits, repos.Triggers)
	}
}
