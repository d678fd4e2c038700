package db

import (
	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

// ListByUser returns the user's logs newest first, optionally narrowed to one habit.
func (repo *DailyLogRepository) ListByUser(userID uint, habitID *uint) ([]models.DailyLog, error) {
	query := repo.database.Where("user_id = ?", userID)
	if habitID != nil {
		query = query.Where("habit_id = ?", *habitID)
	}

	logs := make([]models.DailyLog, 0)
	if err := query.Order("date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListByUserAndHabit(userID uint, habitID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Select("id", "user_id", "habit_id", "date", "status").
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListByUserRange(userID uint, habitID *uint, from *models.Date, to *models.Date) ([]models.DailyLog, error) {
	query := repo.database.Model(&models.DailyLog{}).Where("user_id = ?", userID)
	if habitID != nil {
		query = query.Where("habit_id = ?", *habitID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	logs := make([]models.DailyLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByID(logID uint) (models.DailyLog, error) {
	var entry models.DailyLog
	if err := repo.database.First(&entry, logID).Error; err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

// ExistsForHabitDate reports whether another log already occupies the
// (habit, date) slot. excludeID skips the log being updated.
func (repo *DailyLogRepository) ExistsForHabitDate(habitID uint, date models.Date, excludeID uint) (bool, error) {
	query := repo.database.Model(&models.DailyLog{}).Where("habit_id = ? AND date = ?", habitID, date)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return normalizeWriteError(repo.database.Create(entry).Error)
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return normalizeWriteError(repo.database.Save(entry).Error)
}

func (repo *DailyLogRepository) Delete(entry *models.DailyLog) error {
	return repo.database.Delete(entry).Error
}
