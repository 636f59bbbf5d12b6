package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/services"
)

type noteRequest struct {
	Text string `json:"text"`
}

func (handler *Handler) GetWater(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	status, err := handler.tracker.Water.Status(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to load water intake")
	}
	return c.JSON(handler.waterResponse(status, ""))
}

func (handler *Handler) AddWaterGlass(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	status, err := handler.tracker.Water.AddGlass(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to save water intake")
	}

	message := handler.message("water.logged", status.Glasses)
	if status.JustFinished {
		message = handler.message("water.goal_reached")
	}
	return c.JSON(handler.waterResponse(status, message))
}

func (handler *Handler) ResetWater(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	status, err := handler.tracker.Water.Reset(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to reset water intake")
	}
	return c.JSON(handler.waterResponse(status, handler.message("water.reset")))
}

func (handler *Handler) waterResponse(status services.WaterStatus, message string) fiber.Map {
	response := fiber.Map{
		"date":  services.FormatDay(status.Date),
		"water": status,
	}
	if message != "" {
		response["message"] = message
	}
	return response
}

func (handler *Handler) GetNote(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	text, err := handler.tracker.Notes.Note(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to load note")
	}
	return c.JSON(fiber.Map{"date": services.FormatDay(day), "text": text})
}

func (handler *Handler) SaveNote(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	request := noteRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.tracker.Notes.SaveNote(day, request.Text); err != nil {
		return handler.serviceError(c, err, "failed to save note")
	}
	return c.JSON(fiber.Map{
		"date":    services.FormatDay(day),
		"text":    request.Text,
		"message": handler.message("notes.saved"),
	})
}
