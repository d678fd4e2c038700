package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Level  string
	Format string
	// File enables a rotating log file next to the console output.
	File string
}

// Output bundles the application logger with the writer it sends to, so that
// access logs and the database layer can share the same destination.
type Output struct {
	Logger *log.Logger
	Writer io.Writer
	closer io.Closer
}

func New(config Config, console io.Writer) (*Output, error) {
	if console == nil {
		console = os.Stderr
	}

	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := parseFormatter(config.Format)
	if err != nil {
		return nil, err
	}

	writer := console
	var closer io.Closer
	if path := strings.TrimSpace(config.File); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		writer = io.MultiWriter(console, file)
		closer = file
	}

	logger := log.NewWithOptions(writer, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "steadfast",
	})
	return &Output{Logger: logger, Writer: writer, closer: closer}, nil
}

// Close flushes the rotating file, if any.
func (output *Output) Close() error {
	if output == nil || output.closer == nil {
		return nil
	}
	return output.closer.Close()
}

// GormWriter forwards GORM's slow query and error reports to logger at warn level.
func GormWriter(logger *log.Logger) gormlogger.Writer {
	return logger.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel})
}

func ParseLevel(raw string) (log.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(trimmed)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

func parseFormatter(raw string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("invalid log format %q", raw)
	}
}
