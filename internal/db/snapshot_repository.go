package db

import (
	"fmt"

	"github.com/terraincognita07/pmsify/internal/models"
	"gorm.io/gorm"
)

type SnapshotRepository struct {
	database *gorm.DB
}

func NewSnapshotRepository(database *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{database: database}
}

func (repo *SnapshotRepository) Load() (models.Snapshot, error) {
	snapshot := models.Snapshot{}

	periods, err := NewPeriodRepository(repo.database).List()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load periods: %w", err)
	}
	logs, err := NewDailyLogRepository(repo.database).List()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load daily logs: %w", err)
	}
	settings, err := NewSettingsRepository(repo.database).Load()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load settings: %w", err)
	}
	water, err := NewWaterRepository(repo.database).List()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load water intake: %w", err)
	}
	notes, err := NewNoteRepository(repo.database).List()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load notes: %w", err)
	}

	snapshot.Periods = periods
	snapshot.DailyLogs = logs
	snapshot.Settings = settings
	snapshot.WaterIntake = water
	snapshot.Notes = notes
	return snapshot, nil
}

// Replace swaps the whole stored document for snapshot atomically.
func (repo *SnapshotRepository) Replace(snapshot models.Snapshot) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := deleteAllRows(tx); err != nil {
			return err
		}

		if len(snapshot.Periods) > 0 {
			if err := tx.Create(&snapshot.Periods).Error; err != nil {
				return fmt.Errorf("insert periods: %w", err)
			}
		}
		if len(snapshot.DailyLogs) > 0 {
			if err := tx.Create(&snapshot.DailyLogs).Error; err != nil {
				return fmt.Errorf("insert daily logs: %w", err)
			}
		}
		if len(snapshot.WaterIntake) > 0 {
			if err := tx.Create(&snapshot.WaterIntake).Error; err != nil {
				return fmt.Errorf("insert water intake: %w", err)
			}
		}
		if len(snapshot.Notes) > 0 {
			if err := tx.Create(&snapshot.Notes).Error; err != nil {
				return fmt.Errorf("insert notes: %w", err)
			}
		}

		settings := snapshot.Settings.Normalized()
		if err := tx.Save(&settings).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		return nil
	})
}

// Clear removes every record and restores default settings.
func (repo *SnapshotRepository) Clear() error {
	return repo.Replace(models.Snapshot{Settings: models.DefaultSettings()})
}

func deleteAllRows(tx *gorm.DB) error {
	global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range []any{
		&models.PeriodRecord{},
		&models.DailyLog{},
		&models.WaterIntake{},
		&models.Note{},
		&models.Settings{},
	} {
		if err := global.Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return nil
}
