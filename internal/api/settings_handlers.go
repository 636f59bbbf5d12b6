package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/models"
	"github.com/terraincognita07/pmsify/internal/services"
)

type SettingsView struct {
	CycleLength        int    `json:"cycleLength"`
	PeriodLength       int    `json:"periodLength"`
	PeriodReminders    bool   `json:"periodReminders"`
	OvulationReminders bool   `json:"ovulationReminders"`
	SelfcareReminders  bool   `json:"selfcareReminders"`
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language"`
}

func NewSettingsView(settings models.Settings) SettingsView {
	return SettingsView{
		CycleLength:        settings.CycleLength,
		PeriodLength:       settings.PeriodLength,
		PeriodReminders:    settings.Reminders.Period,
		OvulationReminders: settings.Reminders.Ovulation,
		SelfcareReminders:  settings.Reminders.Selfcare,
		DarkMode:           settings.DarkMode,
		Language:           settings.Language,
	}
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.tracker.Settings.Load()
	if err != nil {
		return handler.serviceError(c, err, "failed to load settings")
	}
	return c.JSON(NewSettingsView(settings))
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	update := services.SettingsUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := handler.tracker.Settings.Update(update)
	if err != nil {
		return handler.serviceError(c, err, "failed to save settings")
	}
	return c.JSON(NewSettingsView(settings))
}
