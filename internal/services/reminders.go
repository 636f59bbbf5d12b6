package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ReminderKind string

const (
	ReminderPeriod    ReminderKind = "period"
	ReminderOvulation ReminderKind = "ovulation"
	ReminderSelfcare  ReminderKind = "selfcare"
)

// PeriodReminderLeadDays is how early the period reminder starts firing.
const PeriodReminderLeadDays = 2

const DefaultReminderInterval = 6 * time.Hour

type Reminder struct {
	Kind    ReminderKind `json:"kind"`
	Date    string       `json:"date"`
	Message string       `json:"message"`
}

// DueReminders lists the reminders enabled in settings that apply to today.
func DueReminders(engine CycleEngine, today time.Time, translator Translator) []Reminder {
	today = NormalizeDay(today)
	settings := engine.Settings()
	language := settings.Language
	dayKey := FormatDay(today)
	due := make([]Reminder, 0, 3)

	if settings.Reminders.Period {
		if days, ok := engine.DaysUntilNextPeriod(today); ok && days >= 0 && days <= PeriodReminderLeadDays {
			next, _ := engine.NextPeriodDate()
			message := translate(translator, language, "reminder.period_today", "Your next period is expected today.")
			if days > 0 {
				message = translatef(translator, language, "reminder.period",
					"Your next period is expected in %d day(s), on %s.", days, FormatDay(next))
			}
			due = append(due, Reminder{Kind: ReminderPeriod, Date: dayKey, Message: message})
		}
	}

	if settings.Reminders.Ovulation {
		if start, _, ok := engine.FertileWindow(); ok && start.Equal(today) {
			due = append(due, Reminder{
				Kind:    ReminderOvulation,
				Date:    dayKey,
				Message: translate(translator, language, "reminder.ovulation", "Your fertile window starts today."),
			})
		}
	}

	if settings.Reminders.Selfcare && engine.CurrentPhase(today) == PhaseMenstrual {
		due = append(due, Reminder{
			Kind:    ReminderSelfcare,
			Date:    dayKey,
			Message: translate(translator, language, "reminder.selfcare", "Be gentle with yourself today - rest, warmth and water help."),
		})
	}
	return due
}

type ReminderNotifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}

// LogNotifier delivers reminders to the application log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (notifier LogNotifier) Notify(_ context.Context, reminder Reminder) error {
	logger := notifier.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("reminder due",
		zap.String("kind", string(reminder.Kind)),
		zap.String("date", reminder.Date),
		zap.String("message", reminder.Message),
	)
	return nil
}

type ReminderService struct {
	cycles     *CycleService
	clock      Clock
	notifier   ReminderNotifier
	translator Translator
	logger     *zap.Logger
	interval   time.Duration

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminderService(cycles *CycleService, clock Clock, notifier ReminderNotifier, translator Translator, logger *zap.Logger, interval time.Duration) *ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &ReminderService{
		cycles:     cycles,
		clock:      clock,
		notifier:   notifier,
		translator: translator,
		logger:     logger,
		interval:   interval,
		sent:       make(map[string]time.Time),
	}
}

func (service *ReminderService) Due() ([]Reminder, error) {
	engine, err := service.cycles.LoadEngine()
	if err != nil {
		return nil, err
	}
	return DueReminders(engine, service.clock.Today(), service.translator), nil
}

// Start checks reminders immediately and then on every interval until ctx ends.
func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce delivers each due reminder at most once per day and returns how many were sent.
func (service *ReminderService) RunOnce(ctx context.Context) int {
	due, err := service.Due()
	if err != nil {
		service.logger.Warn("reminders: load cycle data failed", zap.Error(err))
		return 0
	}

	today := service.clock.Today()
	sent := 0
	for _, reminder := range due {
		key := string(reminder.Kind) + ":" + reminder.Date
		if !service.shouldSend(key, today) {
			continue
		}
		if err := service.notifier.Notify(ctx, reminder); err != nil {
			service.logger.Warn("reminders: notify failed", zap.String("kind", string(reminder.Kind)), zap.Error(err))
			service.forget(key)
			continue
		}
		sent++
	}
	return sent
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sent[key]; ok && sentOn.Equal(today) {
		return false
	}
	service.sent[key] = today
	if len(service.sent) > 500 {
		service.sent = map[string]time.Time{key: today}
	}
	return true
}

func (service *ReminderService) forget(key string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sent, key)
}
