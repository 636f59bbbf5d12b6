package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pmsify/internal/models"
)

var (
	ErrPeriodLoadFailed     = errors.New("load periods failed")
	ErrPeriodSaveFailed     = errors.New("save period failed")
	ErrNoOpenPeriod         = errors.New("no open period")
	ErrPeriodEndBeforeStart = errors.New("period end before start")
	ErrOpenPeriodAfterDay   = errors.New("an open period starts after this day")
)

type PeriodRepository interface {
	List() ([]models.PeriodRecord, error)
	Save(record *models.PeriodRecord) error
	SaveAll(records []models.PeriodRecord) error
}

type PeriodService struct {
	periods  PeriodRepository
	settings SettingsReader
	newID    func() string
}

func NewPeriodService(periods PeriodRepository, settings SettingsReader) *PeriodService {
	return &PeriodService{
		periods:  periods,
		settings: settings,
		newID:    uuid.NewString,
	}
}

func (service *PeriodService) ListPeriods() ([]models.PeriodRecord, error) {
	periods, err := service.periods.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriodLoadFailed, err)
	}
	return periods, nil
}

// MarkPeriodStart opens a period on day. A period already starting on day
// is returned unchanged with created=false. Open periods that began
// earlier are closed first, so at most one period stays open.
func (service *PeriodService) MarkPeriodStart(day time.Time) (models.PeriodRecord, bool, error) {
	day = NormalizeDay(day)
	periods, err := service.ListPeriods()
	if err != nil {
		return models.PeriodRecord{}, false, err
	}

	for _, period := range periods {
		if NormalizeDay(period.StartDate).Equal(day) {
			return period, false, nil
		}
	}

	changed := make([]models.PeriodRecord, 0, 2)
	for _, period := range periods {
		if !period.IsOpen() {
			continue
		}
		if NormalizeDay(period.StartDate).After(day) {
			return models.PeriodRecord{}, false, ErrOpenPeriodAfterDay
		}
		changed = append(changed, period)
	}
	if len(changed) > 0 {
		settings, err := service.settings.Load()
		if err != nil {
			return models.PeriodRecord{}, false, fmt.Errorf("%w: %v", ErrSettingsLoadFailed, err)
		}
		periodLength := settings.Normalized().PeriodLength
		for index := range changed {
			end := autoCloseEnd(changed[index].StartDate, day, periodLength)
			changed[index].EndDate = &end
		}
	}

	created := models.PeriodRecord{
		ID:        service.newID(),
		StartDate: day,
	}
	changed = append(changed, created)

	if err := service.periods.SaveAll(changed); err != nil {
		return models.PeriodRecord{}, false, fmt.Errorf("%w: %v", ErrPeriodSaveFailed, err)
	}
	return created, true, nil
}

// autoCloseEnd ends a forgotten open period where its expected length ends,
// or on the day before the next start when that comes first. It never
// precedes the period start.
func autoCloseEnd(start time.Time, nextStart time.Time, periodLength int) time.Time {
	start = NormalizeDay(start)
	end := AddDays(start, periodLength-1)
	if dayBefore := AddDays(nextStart, -1); dayBefore.Before(end) {
		end = dayBefore
	}
	if end.Before(start) {
		end = start
	}
	return end
}

// MarkPeriodEnd closes the most recently started open period on day.
func (service *PeriodService) MarkPeriodEnd(day time.Time) (models.PeriodRecord, error) {
	day = NormalizeDay(day)
	periods, err := service.ListPeriods()
	if err != nil {
		return models.PeriodRecord{}, err
	}

	var open models.PeriodRecord
	found := false
	for _, period := range periods {
		if !period.IsOpen() {
			continue
		}
		if !found || period.StartDate.After(open.StartDate) {
			open = period
			found = true
		}
	}
	if !found {
		return models.PeriodRecord{}, ErrNoOpenPeriod
	}
	if day.Before(NormalizeDay(open.StartDate)) {
		return models.PeriodRecord{}, ErrPeriodEndBeforeStart
	}

	open.EndDate = &day
	if err := service.periods.Save(&open); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("%w: %v", ErrPeriodSaveFailed, err)
	}
	return open, nil
}
