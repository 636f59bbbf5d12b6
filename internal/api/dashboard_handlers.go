package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/services"
)

const calendarMonthLayout = "2006-01"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	view, err := handler.tracker.Dashboard.Build(handler.tracker.Today())
	if err != nil {
		return handler.serviceError(c, err, "failed to load dashboard")
	}
	return c.JSON(view)
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	today := handler.tracker.Today()
	month := services.MonthStart(today)
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := time.Parse(calendarMonthLayout, raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		month = services.MonthStart(parsed)
	}

	engine, err := handler.tracker.Cycles.LoadEngine()
	if err != nil {
		return handler.serviceError(c, err, "failed to load calendar")
	}
	logs, err := handler.tracker.Days.ListLogs()
	if err != nil {
		return handler.serviceError(c, err, "failed to load calendar")
	}

	return c.JSON(fiber.Map{
		"month": month.Format(calendarMonthLayout),
		"days":  services.BuildCalendarDayStates(month, engine, logs, today),
	})
}

func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	overview, err := handler.tracker.History.Build(handler.tracker.Today())
	if err != nil {
		return handler.serviceError(c, err, "failed to load history")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	engine, err := handler.tracker.Cycles.LoadEngine()
	if err != nil {
		return handler.serviceError(c, err, "failed to load reminders")
	}
	reminders := services.DueReminders(engine, handler.tracker.Today(), handler.tracker.Localizer)
	if reminders == nil {
		reminders = []services.Reminder{}
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}
