package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/steadfast/internal/models"
)

func TestTriggerServiceCreateRequiresName(t *testing.T) {
	service := NewTriggerService(memoryTriggers{newMemoryStore()})

	_, err := service.Create(1, TriggerInput{})
	assert.Equal(t, []string{msgRequired}, validationFields(t, err)["name"])

	_, err = service.Create(1, TriggerInput{Name: Some("   ")})
	assert.Equal(t, []string{msgBlank}, validationFields(t, err)["name"])

	trigger, err := service.Create(1, TriggerInput{Name: Some("Stress")})
	require.NoError(t, err)
	assert.Equal(t, "Stress", trigger.Name)
	assert.Equal(t, uint(1), trigger.UserID)
}

func TestTriggerServiceUpdateAndOwnership(t *testing.T) {
	store := newMemoryStore()
	trigger := store.addTrigger(1, "Stress")
	service := NewTriggerService(memoryTriggers{store})

	updated, err := service.Update(1, trigger.ID, TriggerInput{Name: Some("Boredom")}, false)
	require.NoError(t, err)
	assert.Equal(t, "Boredom", updated.Name)

	unchanged, err := service.Update(1, trigger.ID, TriggerInput{}, true)
	require.NoError(t, err)
	assert.Equal(t, "Boredom", unchanged.Name)

	_, err = service.Update(1, trigger.ID, TriggerInput{}, false)
	assert.Contains(t, validationFields(t, err), "name")

	_, err = service.Get(2, trigger.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTriggerServiceDeleteKeepsLogs(t *testing.T) {
	store := newMemoryStore()
	habit := store.addHabit(1, "Run", 30, true)
	trigger := store.addTrigger(1, "Stress")
	entry := store.addLog(habit, models.NewDate(2026, 3, 1), models.StatusRelapse)
	store.logs[0].TriggerID = &trigger.ID
	service := NewTriggerService(memoryTriggers{store})

	assert.ErrorIs(t, service.Delete(2, trigger.ID), ErrNotFound)
	require.NoError(t, service.Delete(1, trigger.ID))

	require.Len(t, store.logs, 1)
	assert.Equal(t, entry.ID, store.logs[0].ID)
	assert.Nil(t, store.logs[0].TriggerID)
	assert.Empty(t, store.triggers)
}
