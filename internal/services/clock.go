package services

import "time"

type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock and reports the date in Location.
type SystemClock struct {
	Location *time.Location
}

func NewSystemClock(location *time.Location) SystemClock {
	return SystemClock{Location: location}
}

func (clock SystemClock) Today() time.Time {
	return CalendarDate(time.Now(), clock.Location)
}

type FixedClock struct {
	Day time.Time
}

func (clock FixedClock) Today() time.Time {
	return NormalizeDay(clock.Day)
}
