package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day")

// CalendarDate returns the calendar day of value as seen in location,
// expressed as midnight UTC. Every date the engine compares goes through
// here so day differences stay whole.
func CalendarDate(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NormalizeDay truncates a stored date to its UTC calendar day.
func NormalizeDay(value time.Time) time.Time {
	if value.IsZero() {
		return time.Time{}
	}
	return CalendarDate(value, time.UTC)
}

func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DayLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return parsed, nil
}

func FormatDay(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return NormalizeDay(value).Format(DayLayout)
}

func DayRange(value time.Time) (time.Time, time.Time) {
	start := NormalizeDay(value)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole days from `from` to `to`; negative when to is earlier.
func DaysBetween(from time.Time, to time.Time) int {
	return int(NormalizeDay(to).Sub(NormalizeDay(from)) / (24 * time.Hour))
}

func AddDays(value time.Time, days int) time.Time {
	return NormalizeDay(value).AddDate(0, 0, days)
}

func DayHasData(entry models.DailyLog) bool {
	if strings.TrimSpace(entry.Mood) != "" {
		return true
	}
	if len(entry.Symptoms) > 0 {
		return true
	}
	return strings.TrimSpace(entry.Flow) != ""
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
