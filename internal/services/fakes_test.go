package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/steadfast/internal/models"
	"gorm.io/gorm"
)

// memoryStore backs every repository interface with plain slices so service
// rules can be tested without a database.
type memoryStore struct {
	nextID   uint
	users    []models.User
	habits   []models.Habit
	triggers []models.Trigger
	logs     []models.DailyLog
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (store *memoryStore) id() uint {
	store.nextID++
	return store.nextID
}

type memoryHabits struct{ store *memoryStore }
type memoryTriggers struct{ store *memoryStore }
type memoryLogs struct{ store *memoryStore }
type memoryUsers struct{ store *memoryStore }

func (repo memoryHabits) FindByID(habitID uint) (models.Habit, error) {
	for _, habit := range repo.store.habits {
		if habit.ID == habitID {
			return habit, nil
		}
	}
	return models.Habit{}, gorm.ErrRecordNotFound
}

func (repo memoryHabits) ListByUser(userID uint) ([]models.Habit, error) {
	result := make([]models.Habit, 0)
	for _, habit := range repo.store.habits {
		if habit.UserID == userID {
			result = append(result, habit)
		}
	}
	return result, nil
}

func (repo memoryHabits) ListActiveByUser(userID uint) ([]models.Habit, error) {
	result := make([]models.Habit, 0)
	for _, habit := range repo.store.habits {
		if habit.UserID == userID && habit.IsActive {
			result = append(result, habit)
		}
	}
	return result, nil
}

func (repo memoryHabits) Create(habit *models.Habit) error {
	habit.ID = repo.store.id()
	habit.CreatedAt = time.Now()
	repo.store.habits = append(repo.store.habits, *habit)
	return nil
}

func (repo memoryHabits) Save(habit *models.Habit) error {
	for index := range repo.store.habits {
		if repo.store.habits[index].ID == habit.ID {
			repo.store.habits[index] = *habit
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (repo memoryHabits) DeleteWithLogs(habit *models.Habit) error {
	kept := repo.store.logs[:0]
	for _, entry := range repo.store.logs {
		if entry.HabitID != habit.ID {
			kept = append(kept, entry)
		}
	}
	repo.store.logs = kept

	habits := repo.store.habits[:0]
	for _, existing := range repo.store.habits {
		if existing.ID != habit.ID {
			habits = append(habits, existing)
		}
	}
	repo.store.habits = habits
	return nil
}

func (repo memoryTriggers) FindByID(triggerID uint) (models.Trigger, error) {
	for _, trigger := range repo.store.triggers {
		if trigger.ID == triggerID {
			return trigger, nil
		}
	}
	return models.Trigger{}, gorm.ErrRecordNotFound
}

func (repo memoryTriggers) ListByUser(userID uint) ([]models.Trigger, error) {
	result := make([]models.Trigger, 0)
	for _, trigger := range repo.store.triggers {
		if trigger.UserID == userID {
			result = append(result, trigger)
		}
	}
	return result, nil
}

func (repo memoryTriggers) Create(trigger *models.Trigger) error {
	trigger.ID = repo.store.id()
	repo.store.triggers = append(repo.store.triggers, *trigger)
	return nil
}

func (repo memoryTriggers) Save(trigger *models.Trigger) error {
	for index := range repo.store.triggers {
		if repo.store.triggers[index].ID == trigger.ID {
			repo.store.triggers[index] = *trigger
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (repo memoryTriggers) DeleteAndUnlinkLogs(trigger *models.Trigger) error {
	for index := range repo.store.logs {
		if linked := repo.store.logs[index].TriggerID; linked != nil && *linked == trigger.ID {
			repo.store.logs[index].TriggerID = nil
		}
	}
	kept := repo.store.triggers[:0]
	for _, existing := range repo.store.triggers {
		if existing.ID != trigger.ID {
			kept = append(kept, existing)
		}
	}
	repo.store.triggers = kept
	return nil
}

func (repo memoryLogs) ListByUser(userID uint, habitID *uint) ([]models.DailyLog, error) {
	result := make([]models.DailyLog, 0)
	for _, entry := range repo.store.logs {
		if entry.UserID != userID {
			continue
		}
		if habitID != nil && entry.HabitID != *habitID {
			continue
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (repo memoryLogs) ListByUserAndHabit(userID uint, habitID uint) ([]models.DailyLog, error) {
	return repo.ListByUser(userID, &habitID)
}

func (repo memoryLogs) ListByUserRange(userID uint, habitID *uint, from *models.Date, to *models.Date) ([]models.DailyLog, error) {
	all, _ := repo.ListByUser(userID, habitID)
	result := make([]models.DailyLog, 0, len(all))
	for index := len(all) - 1; index >= 0; index-- {
		entry := all[index]
		if from != nil && entry.Date.Before(*from) {
			continue
		}
		if to != nil && entry.Date.After(*to) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (repo memoryLogs) FindByID(logID uint) (models.DailyLog, error) {
	for _, entry := range repo.store.logs {
		if entry.ID == logID {
			return entry, nil
		}
	}
	return models.DailyLog{}, gorm.ErrRecordNotFound
}

func (repo memoryLogs) ExistsForHabitDate(habitID uint, date models.Date, excludeID uint) (bool, error) {
	for _, entry := range repo.store.logs {
		if entry.HabitID == habitID && entry.Date.Equal(date) && entry.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (repo memoryLogs) Create(entry *models.DailyLog) error {
	entry.ID = repo.store.id()
	repo.store.logs = append(repo.store.logs, *entry)
	return nil
}

func (repo memoryLogs) Save(entry *models.DailyLog) error {
	for index := range repo.store.logs {
		if repo.store.logs[index].ID == entry.ID {
			repo.store.logs[index] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (repo memoryLogs) Delete(entry *models.DailyLog) error {
	kept := repo.store.logs[:0]
	for _, existing := range repo.store.logs {
		if existing.ID != entry.ID {
			kept = append(kept, existing)
		}
	}
	repo.store.logs = kept
	return nil
}

func (repo memoryUsers) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.store.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo memoryUsers) FindByUsername(username string) (models.User, error) {
	for _, user := range repo.store.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo memoryUsers) ExistsByUsername(username string) (bool, error) {
	_, err := repo.FindByUsername(username)
	return err == nil, nil
}

func (repo memoryUsers) Create(user *models.User) error {
	if exists, _ := repo.ExistsByUsername(user.Username); exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = repo.store.id()
	repo.store.users = append(repo.store.users, *user)
	return nil
}

func (repo memoryUsers) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	for index := range repo.store.users {
		if repo.store.users[index].ID == userID {
			repo.store.users[index].PasswordHash = passwordHash
			repo.store.users[index].MustChangePassword = mustChangePassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (store *memoryStore) addHabit(userID uint, name string, goalDays int, active bool) models.Habit {
	habit := models.Habit{
		UserID:    userID,
		Name:      name,
		StartDate: models.NewDate(2026, time.January, 1),
		GoalDays:  goalDays,
		IsActive:  active,
	}
	_ = memoryHabits{store}.Create(&habit)
	return habit
}

func (store *memoryStore) addTrigger(userID uint, name string) models.Trigger {
	trigger := models.Trigger{UserID: userID, Name: name}
	_ = memoryTriggers{store}.Create(&trigger)
	return trigger
}

func (store *memoryStore) addLog(habit models.Habit, date models.Date, status string) models.DailyLog {
	entry := models.DailyLog{UserID: habit.UserID, HabitID: habit.ID, Date: date, Status: status}
	_ = memoryLogs{store}.Create(&entry)
	return entry
}

// racingLogs behaves as if another writer claimed the habit/date slot between
// the existence check and the write: the check passes, the unique index fails.
type racingLogs struct{ memoryLogs }

func (racingLogs) ExistsForHabitDate(uint, models.Date, uint) (bool, error) {
	return false, nil
}

func (racingLogs) Create(*models.DailyLog) error {
	return gorm.ErrDuplicatedKey
}

func (racingLogs) Save(*models.DailyLog) error {
	return gorm.ErrDuplicatedKey
}
