package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

var (
	ErrDayEntryLoadFailed = errors.New("load day entry failed")
	ErrDayEntrySaveFailed = errors.New("save day entry failed")
)

const (
	RecentEntriesWindowDays = 30
	RecentEntriesLimit      = 10
)

type DailyLogRepository interface {
	List() ([]models.DailyLog, error)
	ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error)
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	Save(entry *models.DailyLog) error
}

type DayService struct {
	logs DailyLogRepository
}

func NewDayService(logs DailyLogRepository) *DayService {
	return &DayService{logs: logs}
}

// FetchLog returns the log for day, or an empty unsaved entry.
func (service *DayService) FetchLog(day time.Time) (models.DailyLog, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.logs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}
	if !found {
		return models.DailyLog{Date: dayStart, Symptoms: []string{}}, nil
	}
	entry.Date = NormalizeDay(entry.Date)
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return entry, nil
}

func (service *DayService) ListLogs() ([]models.DailyLog, error) {
	logs, err := service.logs.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}
	return logs, nil
}

func (service *DayService) LogMood(day time.Time, rawMood string) (models.DailyLog, error) {
	mood, err := NormalizeMood(rawMood)
	if err != nil {
		return models.DailyLog{}, err
	}
	return service.update(day, func(entry *models.DailyLog) {
		entry.Mood = mood
	})
}

func (service *DayService) LogFlow(day time.Time, rawFlow string) (models.DailyLog, error) {
	flow, err := NormalizeFlow(rawFlow)
	if err != nil {
		return models.DailyLog{}, err
	}
	return service.update(day, func(entry *models.DailyLog) {
		entry.Flow = flow
	})
}

// SetSymptom adds or removes one symptom tag; repeated adds are idempotent.
func (service *DayService) SetSymptom(day time.Time, rawSymptom string, active bool) (models.DailyLog, error) {
	symptom, err := NormalizeSymptomTag(rawSymptom)
	if err != nil {
		return models.DailyLog{}, err
	}
	return service.update(day, func(entry *models.DailyLog) {
		entry.Symptoms = setSymptom(entry.Symptoms, symptom, active)
	})
}

// RecentEntries lists logs from the RecentEntriesWindowDays days ending
// today, newest first, capped at RecentEntriesLimit.
func (service *DayService) RecentEntries(today time.Time) ([]models.DailyLog, error) {
	from := AddDays(today, -(RecentEntriesWindowDays - 1))
	logs, err := service.logs.ListRange(&from, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	if len(logs) > RecentEntriesLimit {
		logs = logs[:RecentEntriesLimit]
	}
	return logs, nil
}

func (service *DayService) update(day time.Time, mutate func(entry *models.DailyLog)) (models.DailyLog, error) {
	entry, err := service.FetchLog(day)
	if err != nil {
		return models.DailyLog{}, err
	}
	mutate(&entry)
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntrySaveFailed, err)
	}
	return entry, nil
}

func setSymptom(symptoms []string, symptom string, active bool) []string {
	result := make([]string, 0, len(symptoms)+1)
	present := false
	for _, existing := range symptoms {
		if existing == symptom {
			present = true
			if !active {
				continue
			}
		}
		result = append(result, existing)
	}
	if active && !present {
		result = append(result, symptom)
	}
	return result
}
