package services

import (
	"github.com/terraincognita07/steadfast/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Habit",
	"Status",
	"Trigger",
	"Note",
}

type ExportLogReader interface {
	ListByUserRange(userID uint, habitID *uint, from *models.Date, to *models.Date) ([]models.DailyLog, error)
}

type ExportHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
}

type ExportTriggerReader interface {
	ListByUser(userID uint) ([]models.Trigger, error)
}

type ExportService struct {
	logs     ExportLogReader
	habits   ExportHabitReader
	triggers ExportTriggerReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportJSONEntry struct {
	Date      string  `json:"date"`
	HabitID   uint    `json:"habit_id"`
	Habit     string  `json:"habit"`
	Status    string  `json:"status"`
	TriggerID *uint   `json:"trigger_id"`
	Trigger   *string `json:"trigger"`
	Note      string  `json:"note"`
}

type ExportCSVRow struct {
	Date    string
	Habit   string
	Status  string
	Trigger string
	Note    string
}

func NewExportService(logs ExportLogReader, habits ExportHabitReader, triggers ExportTriggerReader) *ExportService {
	return &ExportService{
		logs:     logs,
		habits:   habits,
		triggers: triggers,
	}
}

type exportLookup struct {
	habitNames   map[uint]string
	triggerNames map[uint]string
}

func (service *ExportService) loadData(userID uint, filter ExportFilter) ([]models.DailyLog, exportLookup, error) {
	logs, err := service.logs.ListByUserRange(userID, filter.HabitID, filter.From, filter.To)
	if err != nil {
		return nil, exportLookup{}, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, exportLookup{}, err
	}
	triggers, err := service.triggers.ListByUser(userID)
	if err != nil {
		return nil, exportLookup{}, err
	}

	lookup := exportLookup{
		habitNames:   make(map[uint]string, len(habits)),
		triggerNames: make(map[uint]string, len(triggers)),
	}
	for _, habit := range habits {
		lookup.habitNames[habit.ID] = habit.Name
	}
	for _, trigger := range triggers {
		lookup.triggerNames[trigger.ID] = trigger.Name
	}
	return logs, lookup, nil
}

func (service *ExportService) BuildSummary(userID uint, filter ExportFilter) (ExportSummary, error) {
	logs, err := service.logs.ListByUserRange(userID, filter.HabitID, filter.From, filter.To)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(logs) == 0 {
		return ExportSummary{}, nil
	}

	first := logs[0].Date
	last := logs[0].Date
	for _, logEntry := range logs[1:] {
		if logEntry.Date.Before(first) {
			first = logEntry.Date
		}
		if logEntry.Date.After(last) {
			last = logEntry.Date
		}
	}

	return ExportSummary{
		TotalEntries: len(logs),
		HasData:      true,
		DateFrom:     first.String(),
		DateTo:       last.String(),
	}, nil
}

func (service *ExportService) BuildJSONEntries(userID uint, filter ExportFilter) ([]ExportJSONEntry, error) {
	logs, lookup, err := service.loadData(userID, filter)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(logs))
	for _, logEntry := range logs {
		entry := ExportJSONEntry{
			Date:      logEntry.Date.String(),
			HabitID:   logEntry.HabitID,
			Habit:     lookup.habitNames[logEntry.HabitID],
			Status:    logEntry.Status,
			TriggerID: logEntry.TriggerID,
			Note:      noteText(logEntry.Note),
		}
		if logEntry.TriggerID != nil {
			if name, ok := lookup.triggerNames[*logEntry.TriggerID]; ok {
				entry.Trigger = &name
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (service *ExportService) BuildCSVRows(userID uint, filter ExportFilter) ([]ExportCSVRow, error) {
	logs, lookup, err := service.loadData(userID, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(logs))
	for _, logEntry := range logs {
		row := ExportCSVRow{
			Date:   logEntry.Date.String(),
			Habit:  lookup.habitNames[logEntry.HabitID],
			Status: csvStatusLabel(logEntry.Status),
			Note:   noteText(logEntry.Note),
		}
		if logEntry.TriggerID != nil {
			row.Trigger = lookup.triggerNames[*logEntry.TriggerID]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		row.Habit,
		row.Status,
		row.Trigger,
		row.Note,
	}
}

func csvStatusLabel(status string) string {
	switch status {
	case models.StatusSuccess:
		return "Success"
	case models.StatusRelapse:
		return "Relapse"
	default:
		return status
	}
}

func noteText(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}
