package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

var (
	ErrWaterLoadFailed = errors.New("load water intake failed")
	ErrWaterSaveFailed = errors.New("save water intake failed")
	ErrNoteLoadFailed  = errors.New("load note failed")
	ErrNoteSaveFailed  = errors.New("save note failed")
)

type WaterRepository interface {
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.WaterIntake, bool, error)
	Save(entry *models.WaterIntake) error
}

type NoteRepository interface {
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.Note, bool, error)
	Save(entry *models.Note) error
}

type WaterStatus struct {
	Date         time.Time `json:"-"`
	Glasses      int       `json:"glasses"`
	Goal         int       `json:"goal"`
	Percent      int       `json:"percent"`
	GoalReached  bool      `json:"goal_reached"`
	JustFinished bool      `json:"just_finished"`
}

func NewWaterStatus(day time.Time, glasses int) WaterStatus {
	percent := glasses * 100 / models.DailyWaterGoal
	if percent > 100 {
		percent = 100
	}
	return WaterStatus{
		Date:        NormalizeDay(day),
		Glasses:     glasses,
		Goal:        models.DailyWaterGoal,
		Percent:     percent,
		GoalReached: glasses >= models.DailyWaterGoal,
	}
}

type WaterService struct {
	water WaterRepository
}

func NewWaterService(water WaterRepository) *WaterService {
	return &WaterService{water: water}
}

func (service *WaterService) Status(day time.Time) (WaterStatus, error) {
	entry, _, err := service.load(day)
	if err != nil {
		return WaterStatus{}, err
	}
	return NewWaterStatus(day, entry.Glasses), nil
}

// AddGlass increments the day's count. JustFinished is set exactly when
// this glass reaches the goal.
func (service *WaterService) AddGlass(day time.Time) (WaterStatus, error) {
	entry, _, err := service.load(day)
	if err != nil {
		return WaterStatus{}, err
	}
	entry.Glasses++
	if err := service.water.Save(&entry); err != nil {
		return WaterStatus{}, fmt.Errorf("%w: %v", ErrWaterSaveFailed, err)
	}

	status := NewWaterStatus(day, entry.Glasses)
	status.JustFinished = entry.Glasses == models.DailyWaterGoal
	return status, nil
}

func (service *WaterService) Reset(day time.Time) (WaterStatus, error) {
	entry, _, err := service.load(day)
	if err != nil {
		return WaterStatus{}, err
	}
	entry.Glasses = 0
	if err := service.water.Save(&entry); err != nil {
		return WaterStatus{}, fmt.Errorf("%w: %v", ErrWaterSaveFailed, err)
	}
	return NewWaterStatus(day, 0), nil
}

func (service *WaterService) load(day time.Time) (models.WaterIntake, bool, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.water.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.WaterIntake{}, false, fmt.Errorf("%w: %v", ErrWaterLoadFailed, err)
	}
	if !found {
		return models.WaterIntake{Date: dayStart}, false, nil
	}
	return entry, true, nil
}

type NoteService struct {
	notes NoteRepository
}

func NewNoteService(notes NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (service *NoteService) Note(day time.Time) (string, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.notes.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoteLoadFailed, err)
	}
	if !found {
		return "", nil
	}
	return entry.Text, nil
}

// SaveNote overwrites the day's note; saving empty text keeps an empty row.
func (service *NoteService) SaveNote(day time.Time, text string) error {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.notes.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoteLoadFailed, err)
	}
	if !found {
		entry = models.Note{Date: dayStart}
	}
	entry.Text = text
	if err := service.notes.Save(&entry); err != nil {
		return fmt.Errorf("%w: %v", ErrNoteSaveFailed, err)
	}
	return nil
}
