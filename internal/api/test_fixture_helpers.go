package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// createResource posts body to path and returns the id of the created record.
func createResource(t *testing.T, app *fiber.App, token string, path string, body string) uint {
	t.Helper()

	response, payload := performRequest(t, app, jsonRequest(http.MethodPost, path, body, token))
	assertStatus(t, response, payload, http.StatusCreated)

	created := decodeResponse[struct {
		ID uint `json:"id"`
	}](t, payload)
	if created.ID == 0 {
		t.Fatalf("expected id in create response, got %s", payload)
	}
	return created.ID
}

func createHabitViaAPI(t *testing.T, app *fiber.App, token string, body string) uint {
	t.Helper()
	return createResource(t, app, token, "/api/habits/", body)
}

func createTriggerViaAPI(t *testing.T, app *fiber.App, token string, name string) uint {
	t.Helper()
	return createResource(t, app, token, "/api/triggers/", fmt.Sprintf(`{"name":%q}`, name))
}

func createLogViaAPI(t *testing.T, app *fiber.App, token string, habitID uint, date string, status string) uint {
	t.Helper()
	body := fmt.Sprintf(`{"habit":%d,"date":%q,"status":%q}`, habitID, date, status)
	return createResource(t, app, token, "/api/logs/", body)
}
