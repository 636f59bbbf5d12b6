package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

type DashboardView struct {
	Today               string        `json:"today"`
	Phase               Phase         `json:"phase"`
	PhaseLabel          string        `json:"phase_label"`
	PhaseIcon           string        `json:"phase_icon"`
	Tip                 string        `json:"tip"`
	CycleDay            int           `json:"cycle_day,omitempty"`
	CycleDayLabel       string        `json:"cycle_day_label,omitempty"`
	NextPeriodDate      string        `json:"next_period_date,omitempty"`
	DaysUntilNextPeriod *int          `json:"days_until_next_period,omitempty"`
	NextPeriodLabel     string        `json:"next_period_label"`
	FertileWindowStart  string        `json:"fertile_window_start,omitempty"`
	FertileWindowEnd    string        `json:"fertile_window_end,omitempty"`
	Fertile             FertileStatus `json:"fertile"`
	FertileLabel        string        `json:"fertile_label,omitempty"`
	TodayLog            DayLogView    `json:"today_log"`
	Water               WaterStatus   `json:"water"`
	Note                string        `json:"note"`
}

type DayLogView struct {
	Date     string   `json:"date"`
	Mood     string   `json:"mood,omitempty"`
	Symptoms []string `json:"symptoms"`
	Flow     string   `json:"flow,omitempty"`
}

func NewDayLogView(entry models.DailyLog) DayLogView {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return DayLogView{
		Date:     FormatDay(entry.Date),
		Mood:     entry.Mood,
		Symptoms: symptoms,
		Flow:     entry.Flow,
	}
}

type DashboardService struct {
	cycles     *CycleService
	days       *DayService
	water      *WaterService
	notes      *NoteService
	translator Translator
	pickTip    func(tips []string) string
}

func NewDashboardService(cycles *CycleService, days *DayService, water *WaterService, notes *NoteService, translator Translator) *DashboardService {
	return &DashboardService{
		cycles:     cycles,
		days:       days,
		water:      water,
		notes:      notes,
		translator: translator,
		pickTip:    RandomTip,
	}
}

func (service *DashboardService) Build(today time.Time) (DashboardView, error) {
	today = NormalizeDay(today)
	engine, err := service.cycles.LoadEngine()
	if err != nil {
		return DashboardView{}, err
	}
	language := engine.Settings().Language

	view := BuildDashboardPredictions(engine, today, service.translator, language)
	view.Tip = service.pickTip(LocalizedTipsForPhase(service.translator, language, view.Phase))

	entry, err := service.days.FetchLog(today)
	if err != nil {
		return DashboardView{}, err
	}
	view.TodayLog = NewDayLogView(entry)

	if view.Water, err = service.water.Status(today); err != nil {
		return DashboardView{}, err
	}
	if view.Note, err = service.notes.Note(today); err != nil {
		return DashboardView{}, err
	}
	return view, nil
}

// BuildDashboardPredictions fills the engine-derived part of the dashboard.
func BuildDashboardPredictions(engine CycleEngine, today time.Time, translator Translator, language string) DashboardView {
	phase := engine.CurrentPhase(today)
	view := DashboardView{
		Today:      FormatDay(today),
		Phase:      phase,
		PhaseLabel: PhaseLabel(translator, language, phase),
		PhaseIcon:  phase.Icon(),
		Fertile:    engine.FertileWindowStatus(today),
	}

	if cycleDay, ok := engine.CurrentCycleDay(today); ok {
		view.CycleDay = cycleDay
		view.CycleDayLabel = translatef(translator, language, "cycle_day.label", "Day %d", cycleDay)
	}

	view.NextPeriodLabel = translate(translator, language, "next_period.untracked", "Track periods to predict")
	if next, ok := engine.NextPeriodDate(); ok {
		days, _ := engine.DaysUntilNextPeriod(today)
		view.NextPeriodDate = FormatDay(next)
		view.DaysUntilNextPeriod = &days
		if days > 0 {
			view.NextPeriodLabel = translatef(translator, language, "next_period.in_days", "In %d days", days)
		} else {
			view.NextPeriodLabel = translate(translator, language, "next_period.today", "Today")
		}
	}

	if start, end, ok := engine.FertileWindow(); ok {
		view.FertileWindowStart = FormatDay(start)
		view.FertileWindowEnd = FormatDay(end)
	}
	switch view.Fertile.State {
	case FertileUpcoming:
		view.FertileLabel = translatef(translator, language, "fertile.upcoming", "In %d days", view.Fertile.DaysUntilOvulation)
	case FertileNow:
		view.FertileLabel = translate(translator, language, "fertile.now", "Now")
	case FertilePassed:
		view.FertileLabel = translate(translator, language, "fertile.passed", "Passed")
	}
	return view
}

func PhaseLabel(translator Translator, language string, phase Phase) string {
	return translate(translator, language, "phase."+phase.Key()+".label", phase.Label())
}

func translate(translator Translator, language string, key string, fallback string) string {
	if translator == nil {
		return fallback
	}
	if translated := translator.Translate(language, key); translated != key {
		return translated
	}
	return fallback
}

func translatef(translator Translator, language string, key string, fallback string, args ...any) string {
	return fmt.Sprintf(translate(translator, language, key, fallback), args...)
}
