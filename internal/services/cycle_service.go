package services

import "github.com/terraincognita07/pmsify/internal/models"

type PeriodReader interface {
	List() ([]models.PeriodRecord, error)
}

type SettingsReader interface {
	Load() (models.Settings, error)
}

// CycleService builds engines from the current store contents.
type CycleService struct {
	periods  PeriodReader
	settings SettingsReader
}

func NewCycleService(periods PeriodReader, settings SettingsReader) *CycleService {
	return &CycleService{
		periods:  periods,
		settings: settings,
	}
}

func (service *CycleService) LoadEngine() (CycleEngine, error) {
	periods, err := service.periods.List()
	if err != nil {
		return CycleEngine{}, err
	}
	settings, err := service.settings.Load()
	if err != nil {
		return CycleEngine{}, err
	}
	return NewCycleEngine(periods, settings.Normalized()), nil
}
