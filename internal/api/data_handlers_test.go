package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/pmsify/internal/services"
	"github.com/xuri/excelize/v2"
)

const importDocument = `{
  "periods": [
    {"id": 1700000000000, "startDate": "2026-02-08", "endDate": "2026-02-12"},
    {"id": "second", "startDate": "2026-03-08", "endDate": null}
  ],
  "dailyLogs": {
    "2026-03-09": {"mood": "bad", "symptoms": ["cramps"], "flow": "heavy"}
  },
  "settings": {"cycleLength": 28, "periodLength": 5, "periodReminders": true, "ovulationReminders": true, "selfcareReminders": true, "darkMode": true},
  "waterIntake": {"2026-03-09": 5},
  "notes": {"2026-03-09": "tired"}
}`

type importResponse struct {
	Imported services.ImportSummary `json:"imported"`
	Message  string                 `json:"message"`
}

func TestImportThenExport(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	imported := importResponse{}
	requestJSON(t, app, http.MethodPost, "/api/import", importDocument, fiber.StatusOK, &imported)
	require.Equal(t, services.ImportSummary{Periods: 2, DailyLogs: 1, Water: 1, Notes: 1}, imported.Imported)
	require.Equal(t, "Data imported successfully! ✅", imported.Message)

	listed := struct {
		Periods []PeriodView `json:"periods"`
	}{}
	requestJSON(t, app, http.MethodGet, "/api/periods", "", fiber.StatusOK, &listed)
	require.Len(t, listed.Periods, 2)
	require.Equal(t, "1700000000000", listed.Periods[0].ID)
	require.Equal(t, "second", listed.Periods[1].ID)
	require.True(t, listed.Periods[1].Open)

	response, payload := doRequest(t, app, http.MethodGet, "/api/export/json", "")
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.Equal(t, "attachment; filename=pmsify-data-"+testToday+".json", response.Header.Get(fiber.HeaderContentDisposition))

	document, err := services.ParseDocument(payload)
	require.NoError(t, err)
	require.Len(t, document.Periods, 2)
	require.Equal(t, "tired", document.Notes["2026-03-09"])
	require.Equal(t, 5, document.WaterIntake["2026-03-09"])
	require.True(t, document.Settings.DarkMode)
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	requestJSON(t, app, http.MethodPost, "/api/import", importDocument, fiber.StatusOK, nil)

	response, payload := doRequest(t, app, http.MethodGet, "/api/export/csv", "")
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.True(t, strings.HasPrefix(response.Header.Get(fiber.HeaderContentType), "text/csv"))
	require.Equal(t, "attachment; filename=pmsify-data-"+testToday+".csv", response.Header.Get(fiber.HeaderContentDisposition))

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, strings.Join(services.ExportCSVHeaders, ","), strings.TrimSpace(lines[0]))
	require.True(t, strings.HasPrefix(lines[1], "2026-03-09,"))
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	requestJSON(t, app, http.MethodPost, "/api/import", importDocument, fiber.StatusOK, nil)

	response, payload := doRequest(t, app, http.MethodGet, "/api/export/xlsx", "")
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.Equal(t, contentTypeXLSX, response.Header.Get(fiber.HeaderContentType))

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Periods")
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestImportRejectsInvalidDocumentWithoutChanges(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	requestJSON(t, app, http.MethodPost, "/api/periods/start", `{"date":"2026-03-08"}`, fiber.StatusCreated, nil)

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"periods": [`},
		{name: "bad date", body: `{"periods": [{"id": "a", "startDate": "yesterday"}]}`},
		{name: "bad mood", body: `{"dailyLogs": {"2026-03-09": {"mood": "ecstatic"}}}`},
		{name: "negative water", body: `{"waterIntake": {"2026-03-09": -1}}`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			requestJSON(t, app, http.MethodPost, "/api/import", testCase.body, fiber.StatusBadRequest, nil)
		})
	}

	listed := struct {
		Periods []PeriodView `json:"periods"`
	}{}
	requestJSON(t, app, http.MethodGet, "/api/periods", "", fiber.StatusOK, &listed)
	require.Len(t, listed.Periods, 1)
	require.Equal(t, "2026-03-08", listed.Periods[0].StartDate)

	requestJSON(t, app, http.MethodPost, "/api/import", "", fiber.StatusBadRequest, nil)
}

func TestClearAllDataRequiresConfirmation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	requestJSON(t, app, http.MethodPost, "/api/import", importDocument, fiber.StatusOK, nil)

	failure := errorResponse{}
	requestJSON(t, app, http.MethodPost, "/api/data/clear", `{"confirm": false}`, fiber.StatusBadRequest, &failure)
	require.Equal(t, "confirmation required", failure.Error)
	requestJSON(t, app, http.MethodPost, "/api/data/clear", "", fiber.StatusBadRequest, nil)

	cleared := map[string]string{}
	requestJSON(t, app, http.MethodPost, "/api/data/clear", `{"confirm": true}`, fiber.StatusOK, &cleared)
	require.Equal(t, "All data cleared", cleared["message"])

	listed := struct {
		Periods []PeriodView `json:"periods"`
	}{}
	requestJSON(t, app, http.MethodGet, "/api/periods", "", fiber.StatusOK, &listed)
	require.Empty(t, listed.Periods)

	settings := SettingsView{}
	requestJSON(t, app, http.MethodGet, "/api/settings", "", fiber.StatusOK, &settings)
	require.False(t, settings.DarkMode)
	require.Equal(t, 28, settings.CycleLength)
}
