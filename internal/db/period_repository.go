package db

import (
	"github.com/terraincognita07/pmsify/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// List returns periods in insertion order.
func (repo *PeriodRepository) List() ([]models.PeriodRecord, error) {
	periods := make([]models.PeriodRecord, 0)
	if err := repo.database.Order("created_at ASC, start_date ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) Create(record *models.PeriodRecord) error {
	return repo.database.Create(record).Error
}

func (repo *PeriodRepository) Save(record *models.PeriodRecord) error {
	return repo.database.Save(record).Error
}

// SaveAll persists every record in one transaction.
func (repo *PeriodRepository) SaveAll(records []models.PeriodRecord) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range records {
			if err := tx.Save(&records[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
