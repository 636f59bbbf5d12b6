package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/services"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinels to a status and a client message.
// Anything unrecognised is logged and reported as an internal error.
func (handler *Handler) serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrInvalidMood):
		return apiError(c, fiber.StatusBadRequest, "invalid mood")
	case errors.Is(err, services.ErrInvalidFlow):
		return apiError(c, fiber.StatusBadRequest, "invalid flow")
	case errors.Is(err, services.ErrInvalidSymptom):
		return apiError(c, fiber.StatusBadRequest, "invalid symptom")
	case errors.Is(err, services.ErrNoOpenPeriod):
		return apiError(c, fiber.StatusConflict, "no open period")
	case errors.Is(err, services.ErrOpenPeriodAfterDay):
		return apiError(c, fiber.StatusConflict, "an open period starts after this date")
	case errors.Is(err, services.ErrPeriodEndBeforeStart):
		return apiError(c, fiber.StatusBadRequest, "period end is before its start")
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
		return apiError(c, fiber.StatusBadRequest, fmt.Sprintf("cycle length must be between %d and %d", services.MinCycleLength, services.MaxCycleLength))
	case errors.Is(err, services.ErrSettingsPeriodLengthOutOfRange):
		return apiError(c, fiber.StatusBadRequest, fmt.Sprintf("period length must be between %d and %d", services.MinPeriodLength, services.MaxPeriodLength))
	case errors.Is(err, services.ErrSettingsLanguageUnsupported):
		return apiError(c, fiber.StatusBadRequest, "unsupported language")
	case errors.Is(err, services.ErrImportDocumentInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

// parseDayParam reads :date as YYYY-MM-DD; "today" resolves through the clock.
func (handler *Handler) parseDayParam(c *fiber.Ctx) (time.Time, error) {
	return handler.resolveDay(c.Params("date"))
}

func (handler *Handler) resolveDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "today") {
		return handler.tracker.Today(), nil
	}
	return services.ParseDay(raw)
}

func (handler *Handler) message(key string, args ...any) string {
	language := handler.tracker.Language()
	if len(args) == 0 {
		return handler.tracker.Localizer.Translate(language, key)
	}
	return fmt.Sprintf(handler.tracker.Localizer.Translate(language, key), args...)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
