package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

type Config struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	// Logger receives GORM warnings and slow query reports. Nil writes to stdout.
	Logger gormlogger.Writer
}

func Open(config Config) (*gorm.DB, error) {
	switch NormalizeDriver(config.Driver) {
	case DriverSQLite:
		return OpenSQLite(config.SQLitePath, config.Logger)
	case DriverPostgres:
		return OpenPostgres(config.PostgresDSN, config.Logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}
}

func NormalizeDriver(raw string) string {
	driver := strings.ToLower(strings.TrimSpace(raw))
	switch driver {
	case "", "sqlite3", DriverSQLite:
		return DriverSQLite
	case "postgresql", "pg", DriverPostgres:
		return DriverPostgres
	default:
		return driver
	}
}

func newGormConfig(writer gormlogger.Writer) *gorm.Config {
	if writer == nil {
		writer = log.New(os.Stdout, "\r\n", log.LstdFlags)
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			writer,
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
