package db

import (
	"github.com/terraincognita07/pmsify/internal/services"
	"gorm.io/gorm"
)

type Repositories struct {
	Periods   *PeriodRepository
	DailyLogs *DailyLogRepository
	Settings  *SettingsRepository
	Water     *WaterRepository
	Notes     *NoteRepository
	Snapshots *SnapshotRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Periods:   NewPeriodRepository(database),
		DailyLogs: NewDailyLogRepository(database),
		Settings:  NewSettingsRepository(database),
		Water:     NewWaterRepository(database),
		Notes:     NewNoteRepository(database),
		Snapshots: NewSnapshotRepository(database),
	}
}

// TrackerRepositories exposes the store through the interfaces services need.
func (repos *Repositories) TrackerRepositories() services.TrackerRepositories {
	return services.TrackerRepositories{
		Periods:   repos.Periods,
		DailyLogs: repos.DailyLogs,
		Settings:  repos.Settings,
		Water:     repos.Water,
		Notes:     repos.Notes,
		Snapshots: repos.Snapshots,
	}
}
