package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pmsify/internal/models"
)

var ErrImportDocumentInvalid = errors.New("import document invalid")

// Document is the portable JSON form of the whole store.
type Document struct {
	Periods     []DocumentPeriod            `json:"periods"`
	DailyLogs   map[string]DocumentDailyLog `json:"dailyLogs"`
	Settings    DocumentSettings            `json:"settings"`
	WaterIntake map[string]int              `json:"waterIntake"`
	Notes       map[string]string           `json:"notes"`
}

type DocumentPeriod struct {
	ID        DocumentID `json:"id"`
	StartDate string     `json:"startDate"`
	EndDate   *string    `json:"endDate"`
}

type DocumentDailyLog struct {
	Mood     string   `json:"mood,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	Flow     string   `json:"flow,omitempty"`
}

type DocumentSettings struct {
	CycleLength  int              `json:"cycleLength"`
	PeriodLength int              `json:"periodLength"`
	Reminders    models.Reminders `json:"reminders"`
	DarkMode     bool             `json:"darkMode"`
	Language     string           `json:"language,omitempty"`
}

// DocumentID accepts both string ids and the numeric ids older exports used.
type DocumentID string

func (id *DocumentID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*id = DocumentID(strings.TrimSpace(text))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*id = DocumentID(number.String())
	return nil
}

func DefaultDocument() Document {
	settings := models.DefaultSettings()
	return Document{
		Periods:     []DocumentPeriod{},
		DailyLogs:   map[string]DocumentDailyLog{},
		Settings:    documentSettings(settings),
		WaterIntake: map[string]int{},
		Notes:       map[string]string{},
	}
}

func BuildDocument(snapshot models.Snapshot) Document {
	document := DefaultDocument()
	document.Settings = documentSettings(snapshot.Settings.Normalized())

	for _, period := range snapshot.Periods {
		entry := DocumentPeriod{
			ID:        DocumentID(period.ID),
			StartDate: FormatDay(period.StartDate),
		}
		if !period.IsOpen() {
			end := FormatDay(*period.EndDate)
			entry.EndDate = &end
		}
		document.Periods = append(document.Periods, entry)
	}
	for _, logEntry := range snapshot.DailyLogs {
		if !DayHasData(logEntry) {
			continue
		}
		document.DailyLogs[FormatDay(logEntry.Date)] = DocumentDailyLog{
			Mood:     logEntry.Mood,
			Symptoms: logEntry.Symptoms,
			Flow:     logEntry.Flow,
		}
	}
	for _, water := range snapshot.WaterIntake {
		document.WaterIntake[FormatDay(water.Date)] = water.Glasses
	}
	for _, note := range snapshot.Notes {
		document.Notes[FormatDay(note.Date)] = note.Text
	}
	return document
}

// ParseDocument decodes raw over the default document, so missing
// sections keep their defaults.
func ParseDocument(raw []byte) (Document, error) {
	document := DefaultDocument()
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if err := decoder.Decode(&document); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrImportDocumentInvalid, err)
	}
	if document.DailyLogs == nil {
		document.DailyLogs = map[string]DocumentDailyLog{}
	}
	if document.WaterIntake == nil {
		document.WaterIntake = map[string]int{}
	}
	if document.Notes == nil {
		document.Notes = map[string]string{}
	}
	return document, nil
}

// ToSnapshot validates the document. importedAt seeds CreatedAt so the
// periods keep their document order in the store.
func (document Document) ToSnapshot(importedAt time.Time) (models.Snapshot, error) {
	snapshot := models.Snapshot{
		Periods:     make([]models.PeriodRecord, 0, len(document.Periods)),
		DailyLogs:   make([]models.DailyLog, 0, len(document.DailyLogs)),
		WaterIntake: make([]models.WaterIntake, 0, len(document.WaterIntake)),
		Notes:       make([]models.Note, 0, len(document.Notes)),
	}

	seenIDs := make(map[string]struct{}, len(document.Periods))
	for index, period := range document.Periods {
		if strings.TrimSpace(period.StartDate) == "" {
			continue
		}
		start, err := ParseDay(period.StartDate)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: period %d start date %q", ErrImportDocumentInvalid, index, period.StartDate)
		}

		id := string(period.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, duplicate := seenIDs[id]; duplicate {
			return models.Snapshot{}, fmt.Errorf("%w: duplicate period id %q", ErrImportDocumentInvalid, id)
		}
		seenIDs[id] = struct{}{}

		record := models.PeriodRecord{
			ID:        id,
			StartDate: start,
			CreatedAt: importedAt.Add(time.Duration(index) * time.Millisecond),
		}
		if period.EndDate != nil && strings.TrimSpace(*period.EndDate) != "" {
			end, err := ParseDay(*period.EndDate)
			if err != nil {
				return models.Snapshot{}, fmt.Errorf("%w: period %d end date %q", ErrImportDocumentInvalid, index, *period.EndDate)
			}
			if end.Before(start) {
				return models.Snapshot{}, fmt.Errorf("%w: period %d ends before it starts", ErrImportDocumentInvalid, index)
			}
			record.EndDate = &end
		}
		snapshot.Periods = append(snapshot.Periods, record)
	}

	for _, key := range sortedKeys(document.DailyLogs) {
		entry, err := documentDailyLogToModel(key, document.DailyLogs[key])
		if err != nil {
			return models.Snapshot{}, err
		}
		snapshot.DailyLogs = append(snapshot.DailyLogs, entry)
	}

	for _, key := range sortedKeys(document.WaterIntake) {
		day, err := ParseDay(key)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: water intake date %q", ErrImportDocumentInvalid, key)
		}
		glasses := document.WaterIntake[key]
		if glasses < 0 {
			return models.Snapshot{}, fmt.Errorf("%w: negative water intake on %s", ErrImportDocumentInvalid, key)
		}
		snapshot.WaterIntake = append(snapshot.WaterIntake, models.WaterIntake{Date: day, Glasses: glasses})
	}

	for _, key := range sortedKeys(document.Notes) {
		day, err := ParseDay(key)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: note date %q", ErrImportDocumentInvalid, key)
		}
		snapshot.Notes = append(snapshot.Notes, models.Note{Date: day, Text: document.Notes[key]})
	}

	snapshot.Settings = models.Settings{
		CycleLength:  document.Settings.CycleLength,
		PeriodLength: document.Settings.PeriodLength,
		Reminders:    document.Settings.Reminders,
		DarkMode:     document.Settings.DarkMode,
		Language:     document.Settings.Language,
	}.Normalized()
	return snapshot, nil
}

func documentDailyLogToModel(key string, entry DocumentDailyLog) (models.DailyLog, error) {
	day, err := ParseDay(key)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: daily log date %q", ErrImportDocumentInvalid, key)
	}
	mood, err := NormalizeMood(entry.Mood)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: mood %q on %s", ErrImportDocumentInvalid, entry.Mood, key)
	}
	flow, err := NormalizeFlow(entry.Flow)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: flow %q on %s", ErrImportDocumentInvalid, entry.Flow, key)
	}

	symptoms := make([]string, 0, len(entry.Symptoms))
	for _, raw := range entry.Symptoms {
		symptom, err := NormalizeSymptomTag(raw)
		if err != nil {
			return models.DailyLog{}, fmt.Errorf("%w: symptom %q on %s", ErrImportDocumentInvalid, raw, key)
		}
		symptoms = setSymptom(symptoms, symptom, true)
	}

	return models.DailyLog{
		Date:     day,
		Mood:     mood,
		Symptoms: symptoms,
		Flow:     flow,
	}, nil
}

func documentSettings(settings models.Settings) DocumentSettings {
	return DocumentSettings{
		CycleLength:  settings.CycleLength,
		PeriodLength: settings.PeriodLength,
		Reminders:    settings.Reminders,
		DarkMode:     settings.DarkMode,
		Language:     settings.Language,
	}
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
