package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/steadfast/internal/models"
)

func TodayAt(now time.Time, location *time.Location) models.Date {
	return models.DateIn(now, location)
}

// ResolveLocation loads an IANA zone name, returning fallback when the name
// is empty or unknown.
func ResolveLocation(name string, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fallback
	}
	location, err := time.LoadLocation(trimmed)
	if err != nil {
		return fallback
	}
	return location
}

func ParseOptionalDate(raw string) (*models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
