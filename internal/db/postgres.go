package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenPostgres connects to Postgres and reconciles the schema with AutoMigrate.
// The embedded SQL migrations are SQLite specific and are not applied here.
func OpenPostgres(dsn string, writer gormlogger.Writer) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}

	database, err := gorm.Open(postgres.Open(dsn), newGormConfig(writer))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.Trigger{},
		&models.DailyLog{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return database, nil
}
