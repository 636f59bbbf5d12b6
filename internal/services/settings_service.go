package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/pmsify/internal/models"
)

const (
	MinCycleLength  = 1
	MaxCycleLength  = 90
	MinPeriodLength = 1
	MaxPeriodLength = 14
)

var (
	ErrSettingsLoadFailed             = errors.New("load settings failed")
	ErrSettingsSaveFailed             = errors.New("save settings failed")
	ErrSettingsCycleLengthOutOfRange  = errors.New("settings cycle length out of range")
	ErrSettingsPeriodLengthOutOfRange = errors.New("settings period length out of range")
	ErrSettingsLanguageUnsupported    = errors.New("settings language unsupported")
)

type SettingsRepository interface {
	Load() (models.Settings, error)
	Save(settings models.Settings) error
}

// LanguageChecker reports whether a language has a locale.
type LanguageChecker interface {
	IsSupported(language string) bool
}

// SettingsUpdate is a partial update; nil fields are left untouched.
type SettingsUpdate struct {
	CycleLength        *int    `json:"cycleLength"`
	PeriodLength       *int    `json:"periodLength"`
	PeriodReminders    *bool   `json:"periodReminders"`
	OvulationReminders *bool   `json:"ovulationReminders"`
	SelfcareReminders  *bool   `json:"selfcareReminders"`
	DarkMode           *bool   `json:"darkMode"`
	Language           *string `json:"language"`
}

type SettingsService struct {
	settings  SettingsRepository
	languages LanguageChecker
}

func NewSettingsService(settings SettingsRepository, languages LanguageChecker) *SettingsService {
	return &SettingsService{
		settings:  settings,
		languages: languages,
	}
}

func (service *SettingsService) Load() (models.Settings, error) {
	settings, err := service.settings.Load()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrSettingsLoadFailed, err)
	}
	return settings.Normalized(), nil
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

// ValidateSettingsUpdate checks user input. Stored or imported settings are
// normalized instead; only edits coming from the user are rejected.
func (service *SettingsService) ValidateSettingsUpdate(update SettingsUpdate) error {
	if update.CycleLength != nil && !IsValidCycleLength(*update.CycleLength) {
		return ErrSettingsCycleLengthOutOfRange
	}
	if update.PeriodLength != nil && !IsValidPeriodLength(*update.PeriodLength) {
		return ErrSettingsPeriodLengthOutOfRange
	}
	if update.Language != nil && service.languages != nil && !service.languages.IsSupported(*update.Language) {
		return ErrSettingsLanguageUnsupported
	}
	return nil
}

func ApplySettingsUpdate(settings models.Settings, update SettingsUpdate) models.Settings {
	if update.CycleLength != nil {
		settings.CycleLength = *update.CycleLength
	}
	if update.PeriodLength != nil {
		settings.PeriodLength = *update.PeriodLength
	}
	if update.PeriodReminders != nil {
		settings.Reminders.Period = *update.PeriodReminders
	}
	if update.OvulationReminders != nil {
		settings.Reminders.Ovulation = *update.OvulationReminders
	}
	if update.SelfcareReminders != nil {
		settings.Reminders.Selfcare = *update.SelfcareReminders
	}
	if update.DarkMode != nil {
		settings.DarkMode = *update.DarkMode
	}
	if update.Language != nil {
		settings.Language = strings.ToLower(strings.TrimSpace(*update.Language))
	}
	return settings
}

func (service *SettingsService) Update(update SettingsUpdate) (models.Settings, error) {
	if err := service.ValidateSettingsUpdate(update); err != nil {
		return models.Settings{}, err
	}
	current, err := service.Load()
	if err != nil {
		return models.Settings{}, err
	}

	updated := ApplySettingsUpdate(current, update).Normalized()
	if err := service.settings.Save(updated); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrSettingsSaveFailed, err)
	}
	return updated, nil
}
