package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository interface {
	ListByUser(userID uint, habitID *uint) ([]models.DailyLog, error)
	FindByID(logID uint) (models.DailyLog, error)
	ExistsForHabitDate(habitID uint, date models.Date, excludeID uint) (bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	Delete(entry *models.DailyLog) error
}

// DailyLogInput accepts both the short and the _id spelling of the habit and
// trigger references. A null trigger clears it.
type DailyLogInput struct {
	Habit     Optional[uint]   `json:"habit"`
	HabitID   Optional[uint]   `json:"habit_id"`
	Trigger   Optional[uint]   `json:"trigger"`
	TriggerID Optional[uint]   `json:"trigger_id"`
	Date      Optional[string] `json:"date"`
	Status    Optional[string] `json:"status"`
	Note      Optional[string] `json:"note"`
}

type DailyLogService struct {
	logs     DailyLogRepository
	habits   HabitFinder
	triggers TriggerFinder
}

func NewDailyLogService(logs DailyLogRepository, habits HabitFinder, triggers TriggerFinder) *DailyLogService {
	return &DailyLogService{
		logs:     logs,
		habits:   habits,
		triggers: triggers,
	}
}

func (service *DailyLogService) List(userID uint, habitID *uint) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID, habitID)
}

func (service *DailyLogService) Get(userID uint, logID uint) (models.DailyLog, error) {
	return service.loadOwned(userID, logID)
}

func (service *DailyLogService) Create(userID uint, input DailyLogInput) (models.DailyLog, error) {
	entry := models.DailyLog{UserID: userID}
	if err := service.applyInput(userID, &entry, input, true); err != nil {
		return models.DailyLog{}, err
	}
	if err := service.ensureSlotFree(entry); err != nil {
		return models.DailyLog{}, err
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, translateLogWriteError("create daily log", err)
	}
	return entry, nil
}

func (service *DailyLogService) Update(userID uint, logID uint, input DailyLogInput, partial bool) (models.DailyLog, error) {
	entry, err := service.loadOwned(userID, logID)
	if err != nil {
		return models.DailyLog{}, err
	}
	if err := service.applyInput(userID, &entry, input, !partial); err != nil {
		return models.DailyLog{}, err
	}
	if err := service.ensureSlotFree(entry); err != nil {
		return models.DailyLog{}, err
	}
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, translateLogWriteError("update daily log", err)
	}
	return entry, nil
}

func (service *DailyLogService) Delete(userID uint, logID uint) error {
	entry, err := service.loadOwned(userID, logID)
	if err != nil {
		return err
	}
	if err := service.logs.Delete(&entry); err != nil {
		return fmt.Errorf("delete daily log: %w", err)
	}
	return nil
}

// applyInput validates every field first, then checks that referenced
// records belong to userID. entry is modified only when both pass.
func (service *DailyLogService) applyInput(userID uint, entry *models.DailyLog, input DailyLogInput, requireAll bool) error {
	validation := newValidationError()
	updated := *entry

	var habit *models.Habit
	if habitID, ok := presentValue(validation, "habit", input.Habit.Or(input.HabitID), requireAll); ok {
		found, err := service.habits.FindByID(habitID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			validation.Add("habit", fmt.Sprintf(msgInvalidPK, habitID))
		case err != nil:
			return fmt.Errorf("load habit: %w", err)
		default:
			habit = &found
		}
	}

	var trigger *models.Trigger
	triggerRef := input.Trigger.Or(input.TriggerID)
	if triggerRef.Set && triggerRef.Value != nil {
		found, err := service.triggers.FindByID(*triggerRef.Value)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			validation.Add("trigger", fmt.Sprintf(msgInvalidPK, *triggerRef.Value))
		case err != nil:
			return fmt.Errorf("load trigger: %w", err)
		default:
			trigger = &found
		}
	}

	if date, ok := validateDate(validation, "date", input.Date, requireAll); ok {
		updated.Date = date
	}
	if status, ok := presentValue(validation, "status", input.Status, requireAll); ok {
		if models.IsValidStatus(status) {
			updated.Status = status
		} else {
			validation.Add("status", fmt.Sprintf(msgInvalidPick, status))
		}
	}
	if input.Note.Set {
		updated.Note = nil
		if input.Note.Value != nil {
			note := strings.TrimSpace(*input.Note.Value)
			updated.Note = &note
		}
	}

	if err := validation.Err(); err != nil {
		return err
	}

	if habit != nil {
		if !Owns(userID, *habit) {
			return ErrPermissionDenied
		}
		updated.HabitID = habit.ID
	}
	if triggerRef.Set {
		updated.TriggerID = nil
		if trigger != nil {
			if !Owns(userID, *trigger) {
				return ErrPermissionDenied
			}
			triggerID := trigger.ID
			updated.TriggerID = &triggerID
		}
	}

	*entry = updated
	return nil
}

func (service *DailyLogService) ensureSlotFree(entry models.DailyLog) error {
	taken, err := service.logs.ExistsForHabitDate(entry.HabitID, entry.Date, entry.ID)
	if err != nil {
		return fmt.Errorf("check daily log uniqueness: %w", err)
	}
	if taken {
		return ErrDuplicateHabitDate
	}
	return nil
}

func (service *DailyLogService) loadOwned(userID uint, logID uint) (models.DailyLog, error) {
	entry, err := service.logs.FindByID(logID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyLog{}, ErrNotFound
	}
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("load daily log: %w", err)
	}
	if !Owns(userID, entry) {
		return models.DailyLog{}, ErrNotFound
	}
	return entry, nil
}

// translateLogWriteError maps a unique index hit from a concurrent writer to
// the same conflict the pre-check reports.
func translateLogWriteError(action string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateHabitDate
	}
	return fmt.Errorf("%s: %w", action, err)
}
