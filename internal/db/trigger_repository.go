package db

import (
	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

type TriggerRepository struct {
	database *gorm.DB
}

func NewTriggerRepository(database *gorm.DB) *TriggerRepository {
	return &TriggerRepository{database: database}
}

func (repo *TriggerRepository) ListByUser(userID uint) ([]models.Trigger, error) {
	triggers := make([]models.Trigger, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id DESC").Find(&triggers).Error; err != nil {
		return nil, err
	}
	return triggers, nil
}

func (repo *TriggerRepository) FindByID(triggerID uint) (models.Trigger, error) {
	var trigger models.Trigger
	if err := repo.database.First(&trigger, triggerID).Error; err != nil {
		return models.Trigger{}, err
	}
	return trigger, nil
}

func (repo *TriggerRepository) Create(trigger *models.Trigger) error {
	return repo.database.Create(trigger).Error
}

func (repo *TriggerRepository) Save(trigger *models.Trigger) error {
	return repo.database.Save(trigger).Error
}

// DeleteAndUnlinkLogs clears the trigger reference on daily logs before
// removing the trigger. The logs themselves are kept.
func (repo *TriggerRepository) DeleteAndUnlinkLogs(trigger *models.Trigger) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DailyLog{}).
			Where("trigger_id = ?", trigger.ID).
			Update("trigger_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(trigger).Error
	})
}
