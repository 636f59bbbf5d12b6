package models

import "time"

const DailyWaterGoal = 8

type WaterIntake struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_water_intakes_date"`
	Glasses   int       `gorm:"not null"`
	UpdatedAt time.Time
}

type Note struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_notes_date"`
	Text      string    `gorm:"not null"`
	UpdatedAt time.Time
}

// Snapshot is the whole persisted document, loaded or replaced at once.
type Snapshot struct {
	Periods     []PeriodRecord
	DailyLogs   []DailyLog
	Settings    Settings
	WaterIntake []WaterIntake
	Notes       []Note
}
