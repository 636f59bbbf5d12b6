package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	DefaultLanguage     = "en"

	// SettingsSingletonID is the primary key of the only settings row.
	SettingsSingletonID uint = 1
)

type Reminders struct {
	Period    bool `json:"period"`
	Ovulation bool `json:"ovulation"`
	Selfcare  bool `json:"selfcare"`
}

type Settings struct {
	ID           uint      `gorm:"primaryKey"`
	CycleLength  int       `gorm:"not null"`
	PeriodLength int       `gorm:"not null"`
	Reminders    Reminders `gorm:"embedded;embeddedPrefix:remind_"`
	DarkMode     bool      `gorm:"not null"`
	Language     string    `gorm:"not null"`
	UpdatedAt    time.Time
}

func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsSingletonID,
		CycleLength:  DefaultCycleLength,
		PeriodLength: DefaultPeriodLength,
		Reminders: Reminders{
			Period:    true,
			Ovulation: true,
			Selfcare:  true,
		},
		DarkMode: false,
		Language: DefaultLanguage,
	}
}

// Normalized replaces non-positive lengths and an empty language with
// defaults. Everything downstream of a load relies on lengths >= 1.
func (settings Settings) Normalized() Settings {
	if settings.CycleLength <= 0 {
		settings.CycleLength = DefaultCycleLength
	}
	if settings.PeriodLength <= 0 {
		settings.PeriodLength = DefaultPeriodLength
	}
	if settings.Language == "" {
		settings.Language = DefaultLanguage
	}
	settings.ID = SettingsSingletonID
	return settings
}

func (Settings) TableName() string {
	return "settings"
}
