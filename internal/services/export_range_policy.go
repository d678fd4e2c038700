package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/terraincognita07/steadfast/internal/models"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
	ErrExportHabitInvalid    = errors.New("export invalid habit id")
)

// ExportFilter narrows an export. Nil fields are unbounded.
type ExportFilter struct {
	HabitID *uint
	From    *models.Date
	To      *models.Date
}

func ParseExportFilter(rawHabitID string, rawFrom string, rawTo string) (ExportFilter, error) {
	filter := ExportFilter{}

	if trimmed := strings.TrimSpace(rawHabitID); trimmed != "" {
		parsed, err := strconv.ParseUint(trimmed, 10, 64)
		if err != nil || parsed == 0 {
			return ExportFilter{}, ErrExportHabitInvalid
		}
		habitID := uint(parsed)
		filter.HabitID = &habitID
	}

	from, err := ParseOptionalDate(rawFrom)
	if err != nil {
		return ExportFilter{}, ErrExportFromDateInvalid
	}
	to, err := ParseOptionalDate(rawTo)
	if err != nil {
		return ExportFilter{}, ErrExportToDateInvalid
	}
	if from != nil && to != nil && to.Before(*from) {
		return ExportFilter{}, ErrExportRangeInvalid
	}

	filter.From = from
	filter.To = to
	return filter, nil
}
