package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

var errStubFailure = errors.New("stub failure")

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	day, err := ParseDay(raw)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func periodBetween(t *testing.T, id string, start string, end string) models.PeriodRecord {
	t.Helper()
	record := models.PeriodRecord{ID: id, StartDate: mustParseDay(t, start)}
	if end != "" {
		endDay := mustParseDay(t, end)
		record.EndDate = &endDay
	}
	return record
}

func settingsWith(cycleLength int, periodLength int) models.Settings {
	settings := models.DefaultSettings()
	settings.CycleLength = cycleLength
	settings.PeriodLength = periodLength
	return settings
}

type periodRepositoryStub struct {
	records []models.PeriodRecord
	listErr error
	saveErr error
}

func (stub *periodRepositoryStub) List() ([]models.PeriodRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.PeriodRecord, len(stub.records))
	copy(result, stub.records)
	return result, nil
}

func (stub *periodRepositoryStub) Save(record *models.PeriodRecord) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.upsert(*record)
	return nil
}

func (stub *periodRepositoryStub) SaveAll(records []models.PeriodRecord) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for _, record := range records {
		stub.upsert(record)
	}
	return nil
}

func (stub *periodRepositoryStub) upsert(record models.PeriodRecord) {
	for index := range stub.records {
		if stub.records[index].ID == record.ID {
			stub.records[index] = record
			return
		}
	}
	stub.records = append(stub.records, record)
}

type settingsRepositoryStub struct {
	settings models.Settings
	loadErr  error
	saveErr  error
	saves    int
}

func (stub *settingsRepositoryStub) Load() (models.Settings, error) {
	if stub.loadErr != nil {
		return models.Settings{}, stub.loadErr
	}
	return stub.settings, nil
}

func (stub *settingsRepositoryStub) Save(settings models.Settings) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.settings = settings
	stub.saves++
	return nil
}

type dayLogRepositoryStub struct {
	entries map[string]models.DailyLog
	nextID  uint
	findErr error
	saveErr error
}

func newDayLogRepositoryStub() *dayLogRepositoryStub {
	return &dayLogRepositoryStub{entries: make(map[string]models.DailyLog), nextID: 1}
}

func (stub *dayLogRepositoryStub) List() ([]models.DailyLog, error) {
	return stub.ListRange(nil, nil)
}

func (stub *dayLogRepositoryStub) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error) {
	if stub.findErr != nil {
		return nil, stub.findErr
	}
	logs := make([]models.DailyLog, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if fromStart != nil && entry.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.Date.Before(*toEnd) {
			continue
		}
		logs = append(logs, entry)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs, nil
}

func (stub *dayLogRepositoryStub) FindByDayRange(dayStart time.Time, _ time.Time) (models.DailyLog, bool, error) {
	if stub.findErr != nil {
		return models.DailyLog{}, false, stub.findErr
	}
	entry, ok := stub.entries[FormatDay(dayStart)]
	return entry, ok, nil
}

func (stub *dayLogRepositoryStub) Save(entry *models.DailyLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	if entry.ID == 0 {
		entry.ID = stub.nextID
		stub.nextID++
	}
	stored := *entry
	stored.Symptoms = append([]string(nil), entry.Symptoms...)
	stub.entries[FormatDay(entry.Date)] = stored
	return nil
}

type waterRepositoryStub struct {
	entries map[string]models.WaterIntake
	saveErr error
}

func newWaterRepositoryStub() *waterRepositoryStub {
	return &waterRepositoryStub{entries: make(map[string]models.WaterIntake)}
}

func (stub *waterRepositoryStub) FindByDayRange(dayStart time.Time, _ time.Time) (models.WaterIntake, bool, error) {
	entry, ok := stub.entries[FormatDay(dayStart)]
	return entry, ok, nil
}

func (stub *waterRepositoryStub) Save(entry *models.WaterIntake) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.entries[FormatDay(entry.Date)] = *entry
	return nil
}

type noteRepositoryStub struct {
	entries map[string]models.Note
}

func newNoteRepositoryStub() *noteRepositoryStub {
	return &noteRepositoryStub{entries: make(map[string]models.Note)}
}

func (stub *noteRepositoryStub) FindByDayRange(dayStart time.Time, _ time.Time) (models.Note, bool, error) {
	entry, ok := stub.entries[FormatDay(dayStart)]
	return entry, ok, nil
}

func (stub *noteRepositoryStub) Save(entry *models.Note) error {
	stub.entries[FormatDay(entry.Date)] = *entry
	return nil
}

type snapshotStoreStub struct {
	snapshot   models.Snapshot
	replaceErr error
	replaced   int
	cleared    int
}

func (stub *snapshotStoreStub) Load() (models.Snapshot, error) {
	return stub.snapshot, nil
}

func (stub *snapshotStoreStub) Replace(snapshot models.Snapshot) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.snapshot = snapshot
	stub.replaced++
	return nil
}

func (stub *snapshotStoreStub) Clear() error {
	stub.cleared++
	return stub.Replace(models.Snapshot{Settings: models.DefaultSettings()})
}

// mapTranslator resolves keys from a fixed table regardless of language.
type mapTranslator map[string]string

func (translator mapTranslator) Translate(_ string, key string) string {
	if value, ok := translator[key]; ok {
		return value
	}
	return key
}

func (translator mapTranslator) IsSupported(language string) bool {
	return language == "en" || language == "ru"
}
