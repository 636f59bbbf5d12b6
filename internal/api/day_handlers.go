package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/services"
)

type moodRequest struct {
	Mood string `json:"mood"`
}

type flowRequest struct {
	Flow string `json:"flow"`
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	entry, err := handler.tracker.Days.FetchLog(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to load day")
	}
	return c.JSON(services.NewDayLogView(entry))
}

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	request := moodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.tracker.Days.LogMood(day, request.Mood)
	if err != nil {
		return handler.serviceError(c, err, "failed to save mood")
	}
	return c.JSON(services.NewDayLogView(entry))
}

func (handler *Handler) LogFlow(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	request := flowRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.tracker.Days.LogFlow(day, request.Flow)
	if err != nil {
		return handler.serviceError(c, err, "failed to save flow")
	}
	return c.JSON(services.NewDayLogView(entry))
}

func (handler *Handler) AddSymptom(c *fiber.Ctx) error {
	return handler.setSymptom(c, true)
}

func (handler *Handler) RemoveSymptom(c *fiber.Ctx) error {
	return handler.setSymptom(c, false)
}

func (handler *Handler) setSymptom(c *fiber.Ctx, active bool) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	symptom, err := url.PathUnescape(c.Params("symptom"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom")
	}
	entry, err := handler.tracker.Days.SetSymptom(day, symptom, active)
	if err != nil {
		return handler.serviceError(c, err, "failed to save symptom")
	}
	return c.JSON(services.NewDayLogView(entry))
}
