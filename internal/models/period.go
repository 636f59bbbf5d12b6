package models

import "time"

type PeriodRecord struct {
	ID        string     `gorm:"primaryKey"`
	StartDate time.Time  `gorm:"type:date;not null;index"`
	EndDate   *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the period has no recorded end date yet.
func (record PeriodRecord) IsOpen() bool {
	return record.EndDate == nil || record.EndDate.IsZero()
}
