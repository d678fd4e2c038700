package api

import (
	"net/http"
	"testing"
)

func TestHealthz(t *testing.T) {
	app, _ := newTestApp(t)

	response, body := performRequest(t, app, jsonRequest(http.MethodGet, "/healthz", "", ""))
	assertStatus(t, response, body, http.StatusOK)
	if status := decodeResponse[map[string]string](t, body)["status"]; status != "ok" {
		t.Fatalf("expected status ok, got %q", status)
	}
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	response, body := performRequest(t, app, jsonRequest(http.MethodGet, "/api/nope", "", ""))
	assertStatus(t, response, body, http.StatusNotFound)
	if message := readAPIError(t, body); message != "not found" {
		t.Fatalf("expected not found, got %q", message)
	}
}

func TestHealthzReportsDatabaseOutage(t *testing.T) {
	app, database := newTestApp(t)
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close sql db: %v", err)
	}

	response, body := performRequest(t, app, jsonRequest(http.MethodGet, "/healthz", "", ""))
	assertStatus(t, response, body, http.StatusServiceUnavailable)
	if status := decodeResponse[map[string]string](t, body)["status"]; status != "unavailable" {
		t.Fatalf("expected status unavailable, got %q", status)
	}
}
