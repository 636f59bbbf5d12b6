package services

import (
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

type CalendarDayState struct {
	Date        time.Time `json:"-"`
	DateString  string    `json:"date"`
	Day         int       `json:"day"`
	InMonth     bool      `json:"in_month"`
	IsToday     bool      `json:"is_today"`
	IsPeriod    bool      `json:"is_period"`
	IsPredicted bool      `json:"is_predicted"`
	IsFertile   bool      `json:"is_fertile"`
	IsOvulation bool      `json:"is_ovulation"`
	HasData     bool      `json:"has_data"`
}

// MonthStart returns the first day of the month containing day.
func MonthStart(day time.Time) time.Time {
	day = NormalizeDay(day)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BuildCalendarDayStates lays out whole Sunday-first weeks covering the
// month. Period and predicted flags are reported independently; the
// renderer decides which one wins when both are set.
func BuildCalendarDayStates(monthStart time.Time, engine CycleEngine, logs []models.DailyLog, today time.Time) []CalendarDayState {
	monthStart = MonthStart(monthStart)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	hasDataMap := make(map[string]bool, len(logs))
	for _, logEntry := range logs {
		key := FormatDay(logEntry.Date)
		hasDataMap[key] = hasDataMap[key] || DayHasData(logEntry)
	}

	ovulationKey := ""
	if ovulation, ok := engine.OvulationDate(); ok {
		ovulationKey = FormatDay(ovulation)
	}
	todayKey := FormatDay(today)

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		days = append(days, CalendarDayState{
			Date:        day,
			DateString:  key,
			Day:         day.Day(),
			InMonth:     day.Month() == monthStart.Month(),
			IsToday:     key == todayKey,
			IsPeriod:    engine.IsPeriodDay(day),
			IsPredicted: engine.IsPredictedPeriod(day),
			IsFertile:   engine.IsFertileDay(day),
			IsOvulation: key == ovulationKey,
			HasData:     hasDataMap[key],
		})
	}
	return days
}
