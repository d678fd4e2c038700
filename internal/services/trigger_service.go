package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

type TriggerFinder interface {
	FindByID(triggerID uint) (models.Trigger, error)
}

type TriggerRepository interface {
	TriggerFinder
	ListByUser(userID uint) ([]models.Trigger, error)
	Create(trigger *models.Trigger) error
	Save(trigger *models.Trigger) error
	DeleteAndUnlinkLogs(trigger *models.Trigger) error
}

type TriggerInput struct {
	Name Optional[string] `json:"name"`
}

type TriggerService struct {
	triggers TriggerRepository
}

func NewTriggerService(triggers TriggerRepository) *TriggerService {
	return &TriggerService{triggers: triggers}
}

func (service *TriggerService) List(userID uint) ([]models.Trigger, error) {
	return service.triggers.ListByUser(userID)
}

func (service *TriggerService) Get(userID uint, triggerID uint) (models.Trigger, error) {
	return service.loadOwned(userID, triggerID)
}

func (service *TriggerService) Create(userID uint, input TriggerInput) (models.Trigger, error) {
	validation := newValidationError()
	name, _ := validateName(validation, "name", input.Name, true, models.MaxTriggerNameLength)
	if err := validation.Err(); err != nil {
		return models.Trigger{}, err
	}

	trigger := models.Trigger{UserID: userID, Name: name}
	if err := service.triggers.Create(&trigger); err != nil {
		return models.Trigger{}, fmt.Errorf("create trigger: %w", err)
	}
	return trigger, nil
}

func (service *TriggerService) Update(userID uint, triggerID uint, input TriggerInput, partial bool) (models.Trigger, error) {
	trigger, err := service.loadOwned(userID, triggerID)
	if err != nil {
		return models.Trigger{}, err
	}

	validation := newValidationError()
	if name, ok := validateName(validation, "name", input.Name, !partial, models.MaxTriggerNameLength); ok {
		trigger.Name = name
	}
	if err := validation.Err(); err != nil {
		return models.Trigger{}, err
	}

	if err := service.triggers.Save(&trigger); err != nil {
		return models.Trigger{}, fmt.Errorf("update trigger: %w", err)
	}
	return trigger, nil
}

// Delete removes the trigger; logs that referenced it keep existing with no
// trigger.
func (service *TriggerService) Delete(userID uint, triggerID uint) error {
	trigger, err := service.loadOwned(userID, triggerID)
	if err != nil {
		return err
	}
	if err := service.triggers.DeleteAndUnlinkLogs(&trigger); err != nil {
		return fmt.Errorf("delete trigger: %w", err)
	}
	return nil
}

func (service *TriggerService) loadOwned(userID uint, triggerID uint) (models.Trigger, error) {
	trigger, err := service.triggers.FindByID(triggerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Trigger{}, ErrNotFound
	}
	if err != nil {
		return models.Trigger{}, fmt.Errorf("load trigger: %w", err)
	}
	if !Owns(userID, trigger) {
		return models.Trigger{}, ErrNotFound
	}
	return trigger, nil
}
