package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

type HabitFinder interface {
	FindByID(habitID uint) (models.Habit, error)
}

type HabitRepository interface {
	HabitFinder
	ListByUser(userID uint) ([]models.Habit, error)
	ListActiveByUser(userID uint) ([]models.Habit, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	DeleteWithLogs(habit *models.Habit) error
}

// HabitInput is the decoded request body for habit writes. Absent keys are
// left untouched on partial updates.
type HabitInput struct {
	Name      Optional[string] `json:"name"`
	StartDate Optional[string] `json:"start_date"`
	GoalDays  Optional[int]    `json:"goal_days"`
	IsActive  Optional[bool]   `json:"is_active"`
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) List(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) ListActive(userID uint) ([]models.Habit, error) {
	return service.habits.ListActiveByUser(userID)
}

func (service *HabitService) Get(userID uint, habitID uint) (models.Habit, error) {
	return loadOwnedHabit(service.habits, userID, habitID)
}

func (service *HabitService) Create(userID uint, input HabitInput) (models.Habit, error) {
	habit := models.Habit{
		UserID:   userID,
		GoalDays: models.DefaultGoalDays,
	}
	if err := input.applyTo(&habit, true); err != nil {
		return models.Habit{}, err
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, fmt.Errorf("create habit: %w", err)
	}
	return habit, nil
}

// Update replaces the habit's fields from input. With partial unset, name
// and start_date must be present.
func (service *HabitService) Update(userID uint, habitID uint, input HabitInput, partial bool) (models.Habit, error) {
	habit, err := loadOwnedHabit(service.habits, userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if err := input.applyTo(&habit, !partial); err != nil {
		return models.Habit{}, err
	}
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, fmt.Errorf("update habit: %w", err)
	}
	return habit, nil
}

func (service *HabitService) Delete(userID uint, habitID uint) error {
	habit, err := loadOwnedHabit(service.habits, userID, habitID)
	if err != nil {
		return err
	}
	if err := service.habits.DeleteWithLogs(&habit); err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}

func (input HabitInput) applyTo(habit *models.Habit, requireAll bool) error {
	validation := newValidationError()
	updated := *habit

	if name, ok := validateName(validation, "name", input.Name, requireAll, models.MaxHabitNameLength); ok {
		updated.Name = name
	}
	if startDate, ok := validateDate(validation, "start_date", input.StartDate, requireAll); ok {
		updated.StartDate = startDate
	}
	if goalDays, ok := presentValue(validation, "goal_days", input.GoalDays, false); ok {
		if goalDays < 0 {
			validation.Add("goal_days", msgNonNegative)
		} else {
			updated.GoalDays = goalDays
		}
	}
	if isActive, ok := presentValue(validation, "is_active", input.IsActive, false); ok {
		updated.IsActive = isActive
	}

	if err := validation.Err(); err != nil {
		return err
	}
	*habit = updated
	return nil
}

// loadOwnedHabit hides habits of other users behind ErrNotFound.
func loadOwnedHabit(habits HabitFinder, userID uint, habitID uint) (models.Habit, error) {
	habit, err := habits.FindByID(habitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("load habit: %w", err)
	}
	if !Owns(userID, habit) {
		return models.Habit{}, ErrNotFound
	}
	return habit, nil
}
