package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/db"
	"github.com/terraincognita07/pmsify/internal/i18n"
	"github.com/terraincognita07/pmsify/internal/services"
)

const testToday = "2026-03-10"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pmsify-api-test.db")
	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	manager, err := i18n.NewEmbeddedManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	today, err := time.Parse(services.DayLayout, testToday)
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}

	handler := NewHandler(database, services.FixedClock{Day: today}, manager, nil)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response, payload
}

func requestJSON(t *testing.T, app *fiber.App, method string, path string, body string, expectedStatus int, target any) {
	t.Helper()

	response, payload := doRequest(t, app, method, path, body)
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", method, path, expectedStatus, response.StatusCode, payload)
	}
	if target == nil {
		return
	}
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("%s %s decode body: %v (%s)", method, path, err, payload)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
