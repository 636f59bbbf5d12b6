package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
)

// TrendMaxPoints is how many recent cycles the history chart shows.
const TrendMaxPoints = 6

type HistoryOverview struct {
	AverageCycleLength  int           `json:"average_cycle_length"`
	AveragePeriodLength int           `json:"average_period_length"`
	LastPeriodStart     string        `json:"last_period_start,omitempty"`
	LastPeriodLabel     string        `json:"last_period_label"`
	CompletedCycles     int           `json:"completed_cycles"`
	Trend               []TrendPoint  `json:"trend"`
	RecentEntries       []RecentEntry `json:"recent_entries"`
}

type TrendPoint struct {
	StartDate string `json:"start_date"`
	Length    int    `json:"length"`
}

type RecentEntry struct {
	Date      string   `json:"date"`
	Mood      string   `json:"mood,omitempty"`
	MoodEmoji string   `json:"mood_emoji,omitempty"`
	Flow      string   `json:"flow,omitempty"`
	Symptoms  []string `json:"symptoms"`
	Summary   string   `json:"summary"`
}

type HistoryService struct {
	cycles     *CycleService
	days       *DayService
	translator Translator
}

func NewHistoryService(cycles *CycleService, days *DayService, translator Translator) *HistoryService {
	return &HistoryService{
		cycles:     cycles,
		days:       days,
		translator: translator,
	}
}

func (service *HistoryService) Build(today time.Time) (HistoryOverview, error) {
	engine, err := service.cycles.LoadEngine()
	if err != nil {
		return HistoryOverview{}, err
	}
	language := engine.Settings().Language

	overview := BuildHistoryStats(engine, service.translator, language)

	logs, err := service.days.RecentEntries(today)
	if err != nil {
		return HistoryOverview{}, err
	}
	overview.RecentEntries = make([]RecentEntry, 0, len(logs))
	for _, entry := range logs {
		overview.RecentEntries = append(overview.RecentEntries, NewRecentEntry(entry, service.translator, language))
	}
	return overview, nil
}

func BuildHistoryStats(engine CycleEngine, translator Translator, language string) HistoryOverview {
	overview := HistoryOverview{
		AverageCycleLength:  engine.AverageCycleLength(),
		AveragePeriodLength: engine.AveragePeriodLength(),
		CompletedCycles:     len(engine.CompletedCycles()),
		LastPeriodLabel:     translate(translator, language, "history.last_period_none", "Not tracked yet"),
		RecentEntries:       []RecentEntry{},
	}
	if last, ok := engine.LastPeriod(); ok {
		overview.LastPeriodStart = FormatDay(last.StartDate)
		overview.LastPeriodLabel = overview.LastPeriodStart
	}

	trend := engine.CycleLengthTrend(TrendMaxPoints)
	overview.Trend = make([]TrendPoint, 0, len(trend))
	for _, cycle := range trend {
		overview.Trend = append(overview.Trend, TrendPoint{
			StartDate: FormatDay(cycle.StartDate),
			Length:    cycle.Length,
		})
	}
	return overview
}

func NewRecentEntry(entry models.DailyLog, translator Translator, language string) RecentEntry {
	recent := RecentEntry{
		Date:     FormatDay(entry.Date),
		Mood:     entry.Mood,
		Flow:     entry.Flow,
		Symptoms: entry.Symptoms,
	}
	if recent.Symptoms == nil {
		recent.Symptoms = []string{}
	}

	details := make([]string, 0, 3)
	if entry.Mood != "" {
		recent.MoodEmoji = models.MoodEmoji(entry.Mood)
		details = append(details, translatef(translator, language, "history.mood", "Mood: %s", recent.MoodEmoji))
	}
	if entry.Flow != "" {
		details = append(details, translatef(translator, language, "history.flow", "Flow: %s", entry.Flow))
	}
	if len(entry.Symptoms) > 0 {
		details = append(details, translatef(translator, language, "history.symptoms", "Symptoms: %s", strings.Join(entry.Symptoms, ", ")))
	}

	if len(details) == 0 {
		recent.Summary = translate(translator, language, "history.no_data", "No data logged")
	} else {
		recent.Summary = strings.Join(details, " • ")
	}
	return recent
}
