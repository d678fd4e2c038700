package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func jsonRequest(method string, path string, body string, accessToken string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, []byte) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, body
}

func obtainTokenPair(t *testing.T, app *fiber.App, username string, password string) tokenPairResponse {
	t.Helper()

	payload, _ := json.Marshal(credentialsInput{Username: username, Password: password})
	response, body := performRequest(t, app, jsonRequest(http.MethodPost, "/api/auth/token/", string(payload), ""))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected token status 200, got %d: %s", response.StatusCode, body)
	}

	pair := tokenPairResponse{}
	if err := json.Unmarshal(body, &pair); err != nil {
		t.Fatalf("decode token pair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got %s", body)
	}
	return pair
}

// loginTestUser creates a user and returns an access token for it.
func loginTestUser(t *testing.T, app *fiber.App, database *gorm.DB, username string) string {
	t.Helper()
	createTestUser(t, database, username, "secret-pass", false)
	return obtainTokenPair(t, app, username, "secret-pass").Access
}
