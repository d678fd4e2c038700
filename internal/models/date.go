package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day or zone. It is persisted as
// YYYY-MM-DD text and serialized the same way in JSON.
type Date struct {
	value time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of value as observed in its own location.
func DateOf(value time.Time) Date {
	year, month, day := value.Date()
	return NewDate(year, month, day)
}

// DateIn returns the calendar day of value as observed in location.
func DateIn(value time.Time, location *time.Location) Date {
	if location == nil {
		location = time.UTC
	}
	return DateOf(value.In(location))
}

func ParseDate(raw string) (Date, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, err
	}
	return DateOf(parsed), nil
}

func (date Date) IsZero() bool {
	return date.value.IsZero()
}

func (date Date) Time() time.Time {
	return date.value
}

func (date Date) AddDays(days int) Date {
	return Date{value: date.value.AddDate(0, 0, days)}
}

func (date Date) Before(other Date) bool {
	return date.value.Before(other.value)
}

func (date Date) After(other Date) bool {
	return date.value.After(other.value)
}

func (date Date) Equal(other Date) bool {
	return date.value.Equal(other.value)
}

func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.value.Format(DateLayout)
}

func (Date) GormDataType() string {
	return "date"
}

func (date Date) Value() (driver.Value, error) {
	if date.IsZero() {
		return nil, nil
	}
	return date.String(), nil
}

func (date *Date) Scan(src any) error {
	switch typed := src.(type) {
	case nil:
		*date = Date{}
		return nil
	case time.Time:
		*date = DateOf(typed)
		return nil
	case string:
		return date.scanText(typed)
	case []byte:
		return date.scanText(string(typed))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (date *Date) scanText(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > len(DateLayout) {
		trimmed = trimmed[:len(DateLayout)]
	}
	parsed, err := ParseDate(trimmed)
	if err != nil {
		return fmt.Errorf("scan date %q: %w", raw, err)
	}
	*date = parsed
	return nil
}

func (date Date) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(date.String())
}

func (date *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*date = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("date must use YYYY-MM-DD: %w", err)
	}
	*date = parsed
	return nil
}
