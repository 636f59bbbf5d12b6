package models

import "time"

const (
	MoodGreat    = "great"
	MoodGood     = "good"
	MoodOkay     = "okay"
	MoodBad      = "bad"
	MoodTerrible = "terrible"
)

const (
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

type DailyLog struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_logs_date"`
	Mood      string    `gorm:"not null"`
	Symptoms  []string  `gorm:"serializer:json"`
	Flow      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func MoodEmoji(mood string) string {
	switch mood {
	case MoodGreat:
		return "😊"
	case MoodGood:
		return "🙂"
	case MoodBad:
		return "😔"
	case MoodTerrible:
		return "😢"
	default:
		return "😐"
	}
}
