package db

import (
	"errors"

	"github.com/terraincognita07/pmsify/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// Load returns the stored settings normalized, or defaults when none exist.
func (repo *SettingsRepository) Load() (models.Settings, error) {
	settings := models.Settings{}
	err := repo.database.First(&settings, models.SettingsSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return settings.Normalized(), nil
}

func (repo *SettingsRepository) Save(settings models.Settings) error {
	normalized := settings.Normalized()
	return repo.database.Save(&normalized).Error
}
