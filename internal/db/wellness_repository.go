package db

import (
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
	"gorm.io/gorm"
)

type WaterRepository struct {
	database *gorm.DB
}

func NewWaterRepository(database *gorm.DB) *WaterRepository {
	return &WaterRepository{database: database}
}

func (repo *WaterRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.WaterIntake, bool, error) {
	entry := models.WaterIntake{}
	result := repo.database.Where("date >= ? AND date < ?", dayStart, dayEnd).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.WaterIntake{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *WaterRepository) Save(entry *models.WaterIntake) error {
	if entry.ID == 0 {
		return repo.database.Create(entry).Error
	}
	return repo.database.Save(entry).Error
}

func (repo *WaterRepository) List() ([]models.WaterIntake, error) {
	entries := make([]models.WaterIntake, 0)
	if err := repo.database.Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type NoteRepository struct {
	database *gorm.DB
}

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.Note, bool, error) {
	entry := models.Note{}
	result := repo.database.Where("date >= ? AND date < ?", dayStart, dayEnd).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.Note{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *NoteRepository) Save(entry *models.Note) error {
	if entry.ID == 0 {
		return repo.database.Create(entry).Error
	}
	return repo.database.Save(entry).Error
}

func (repo *NoteRepository) List() ([]models.Note, error) {
	entries := make([]models.Note, 0)
	if err := repo.database.Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
