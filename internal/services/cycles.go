package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

// LutealPhaseDays is the fixed span from estimated ovulation to the next period.
const LutealPhaseDays = 14

const (
	fertileDaysBeforeOvulation = 5
	fertileDaysAfterOvulation  = 1
)

type CompletedCycle struct {
	Length    int       `json:"length"`
	StartDate time.Time `json:"start_date"`
}

// CycleEngine answers cycle questions for one set of periods and settings.
// It never mutates its inputs and asks the wall clock for nothing; callers
// pass "today" explicitly.
//
// Settings must already be normalized (lengths >= 1), which the store
// guarantees on load. The engine does not validate them.
type CycleEngine struct {
	periods  []models.PeriodRecord
	settings models.Settings
}

func NewCycleEngine(periods []models.PeriodRecord, settings models.Settings) CycleEngine {
	normalized := make([]models.PeriodRecord, 0, len(periods))
	for _, period := range periods {
		copied := period
		copied.StartDate = NormalizeDay(period.StartDate)
		if !period.IsOpen() {
			end := NormalizeDay(*period.EndDate)
			copied.EndDate = &end
		} else {
			copied.EndDate = nil
		}
		normalized = append(normalized, copied)
	}
	return CycleEngine{periods: normalized, settings: settings}
}

func (engine CycleEngine) Settings() models.Settings {
	return engine.settings
}

// LastPeriod returns the period with the latest start date. When two
// periods share a start date the earlier one in input order wins; callers
// should not rely on which.
func (engine CycleEngine) LastPeriod() (models.PeriodRecord, bool) {
	var last models.PeriodRecord
	found := false
	for _, period := range engine.periods {
		if period.StartDate.IsZero() {
			continue
		}
		if !found || period.StartDate.After(last.StartDate) {
			last = period
			found = true
		}
	}
	return last, found
}

// EffectiveEnd is the recorded end date, or the expected last day of an open period.
func (engine CycleEngine) EffectiveEnd(period models.PeriodRecord) time.Time {
	if !period.IsOpen() {
		return NormalizeDay(*period.EndDate)
	}
	return AddDays(period.StartDate, engine.settings.PeriodLength-1)
}

func (engine CycleEngine) IsPeriodDay(day time.Time) bool {
	day = NormalizeDay(day)
	for _, period := range engine.periods {
		if period.StartDate.IsZero() {
			continue
		}
		if betweenCalendarDaysInclusive(day, period.StartDate, engine.EffectiveEnd(period)) {
			return true
		}
	}
	return false
}

func (engine CycleEngine) NextPeriodDate() (time.Time, bool) {
	last, ok := engine.LastPeriod()
	if !ok {
		return time.Time{}, false
	}
	return AddDays(last.StartDate, engine.settings.CycleLength), true
}

func (engine CycleEngine) IsPredictedPeriod(day time.Time) bool {
	next, ok := engine.NextPeriodDate()
	if !ok {
		return false
	}
	end := AddDays(next, engine.settings.PeriodLength-1)
	return betweenCalendarDaysInclusive(NormalizeDay(day), next, end)
}

// OvulationDate counts back the luteal phase from the cycle length; with
// cycleLength < 14 the result precedes the last period start.
func (engine CycleEngine) OvulationDate() (time.Time, bool) {
	last, ok := engine.LastPeriod()
	if !ok {
		return time.Time{}, false
	}
	return AddDays(last.StartDate, engine.settings.CycleLength-LutealPhaseDays), true
}

func (engine CycleEngine) FertileWindow() (time.Time, time.Time, bool) {
	ovulation, ok := engine.OvulationDate()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return AddDays(ovulation, -fertileDaysBeforeOvulation), AddDays(ovulation, fertileDaysAfterOvulation), true
}

func (engine CycleEngine) IsFertileDay(day time.Time) bool {
	start, end, ok := engine.FertileWindow()
	if !ok {
		return false
	}
	return betweenCalendarDaysInclusive(NormalizeDay(day), start, end)
}

func (engine CycleEngine) CurrentPhase(today time.Time) Phase {
	last, ok := engine.LastPeriod()
	if !ok {
		return PhaseUntracked
	}
	daysSince := DaysBetween(last.StartDate, today)
	return ClassifyPhase(daysSince, engine.settings.CycleLength, engine.settings.PeriodLength)
}

func (engine CycleEngine) CompletedCycles() []CompletedCycle {
	return CompletedCycles(engine.periods)
}

// CycleLengthTrend returns at most maxPoints of the most recent completed cycles.
func (engine CycleEngine) CycleLengthTrend(maxPoints int) []CompletedCycle {
	cycles := engine.CompletedCycles()
	if maxPoints <= 0 || len(cycles) <= maxPoints {
		return cycles
	}
	return cycles[len(cycles)-maxPoints:]
}

func (engine CycleEngine) AverageCycleLength() int {
	cycles := engine.CompletedCycles()
	if len(cycles) == 0 {
		return engine.settings.CycleLength
	}
	total := 0
	for _, cycle := range cycles {
		total += cycle.Length
	}
	return roundHalfUp(float64(total) / float64(len(cycles)))
}

func (engine CycleEngine) AveragePeriodLength() int {
	total := 0
	count := 0
	for _, period := range engine.periods {
		if period.StartDate.IsZero() || period.IsOpen() {
			continue
		}
		total += DaysBetween(period.StartDate, *period.EndDate) + 1
		count++
	}
	if count == 0 {
		return engine.settings.PeriodLength
	}
	return roundHalfUp(float64(total) / float64(count))
}

// CompletedCycles sorts periods by start date and measures each gap
// between adjacent starts. n periods yield n-1 cycles.
func CompletedCycles(periods []models.PeriodRecord) []CompletedCycle {
	starts := make([]time.Time, 0, len(periods))
	for _, period := range periods {
		if period.StartDate.IsZero() {
			continue
		}
		starts = append(starts, NormalizeDay(period.StartDate))
	}
	if len(starts) < 2 {
		return []CompletedCycle{}
	}

	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	cycles := make([]CompletedCycle, 0, len(starts)-1)
	for index := 1; index < len(starts); index++ {
		cycles = append(cycles, CompletedCycle{
			Length:    DaysBetween(starts[index-1], starts[index]),
			StartDate: starts[index-1],
		})
	}
	return cycles
}
