package services

import "time"

type FertileState string

const (
	FertileUnknown  FertileState = "unknown"
	FertileUpcoming FertileState = "upcoming"
	FertileNow      FertileState = "now"
	FertilePassed   FertileState = "passed"
)

type FertileStatus struct {
	State              FertileState `json:"state"`
	DaysUntilOvulation int          `json:"days_until_ovulation"`
}

// CurrentCycleDay is 1 on the day the last period started.
func (engine CycleEngine) CurrentCycleDay(today time.Time) (int, bool) {
	last, ok := engine.LastPeriod()
	if !ok {
		return 0, false
	}
	return DaysBetween(last.StartDate, today) + 1, true
}

func (engine CycleEngine) DaysUntilNextPeriod(today time.Time) (int, bool) {
	next, ok := engine.NextPeriodDate()
	if !ok {
		return 0, false
	}
	return DaysBetween(today, next), true
}

// FertileWindowStatus reports the window as upcoming while ovulation is
// ahead, current from ovulation day through the day after, passed after that.
func (engine CycleEngine) FertileWindowStatus(today time.Time) FertileStatus {
	ovulation, ok := engine.OvulationDate()
	if !ok {
		return FertileStatus{State: FertileUnknown}
	}

	days := DaysBetween(today, ovulation)
	status := FertileStatus{DaysUntilOvulation: days}
	switch {
	case days > 0:
		status.State = FertileUpcoming
	case days >= -fertileDaysAfterOvulation:
		status.State = FertileNow
	default:
		status.State = FertilePassed
	}
	return status
}
