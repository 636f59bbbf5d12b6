package services

import "time"

// TrackerRepositories is the storage a Tracker runs on.
type TrackerRepositories struct {
	Periods   PeriodRepository
	DailyLogs DailyLogRepository
	Settings  SettingsRepository
	Water     WaterRepository
	Notes     NoteRepository
	Snapshots SnapshotStore
}

// Localizer translates messages and reports which languages have locales.
type Localizer interface {
	Translator
	LanguageChecker
}

// Tracker bundles the services shared by the HTTP API and the CLI.
type Tracker struct {
	Clock     Clock
	Localizer Localizer

	Periods   *PeriodService
	Days      *DayService
	Water     *WaterService
	Notes     *NoteService
	Settings  *SettingsService
	Cycles    *CycleService
	Dashboard *DashboardService
	History   *HistoryService
	Export    *ExportService
	Data      *DataService
}

func NewTracker(repos TrackerRepositories, clock Clock, localizer Localizer) *Tracker {
	tracker := &Tracker{
		Clock:     clock,
		Localizer: localizer,
		Periods:   NewPeriodService(repos.Periods, repos.Settings),
		Days:      NewDayService(repos.DailyLogs),
		Water:     NewWaterService(repos.Water),
		Notes:     NewNoteService(repos.Notes),
		Settings:  NewSettingsService(repos.Settings, localizer),
		Cycles:    NewCycleService(repos.Periods, repos.Settings),
		Export:    NewExportService(repos.Snapshots),
		Data:      NewDataService(repos.Snapshots),
	}
	tracker.Dashboard = NewDashboardService(tracker.Cycles, tracker.Days, tracker.Water, tracker.Notes, localizer)
	tracker.History = NewHistoryService(tracker.Cycles, tracker.Days, localizer)
	return tracker
}

func (tracker *Tracker) Today() time.Time {
	return tracker.Clock.Today()
}

// Language is the stored interface language, empty when settings cannot
// be read. Translators fall back to their default for an empty language.
func (tracker *Tracker) Language() string {
	settings, err := tracker.Settings.Load()
	if err != nil {
		return ""
	}
	return settings.Language
}
