package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pmsify/internal/models"
	"github.com/terraincognita07/pmsify/internal/services"
)

type PeriodView struct {
	ID        string  `json:"id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Open      bool    `json:"open"`
}

type periodMarkRequest struct {
	Date string `json:"date"`
}

func NewPeriodView(record models.PeriodRecord) PeriodView {
	view := PeriodView{
		ID:        record.ID,
		StartDate: services.FormatDay(record.StartDate),
		Open:      record.IsOpen(),
	}
	if !view.Open {
		end := services.FormatDay(*record.EndDate)
		view.EndDate = &end
	}
	return view
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	periods, err := handler.tracker.Periods.ListPeriods()
	if err != nil {
		return handler.serviceError(c, err, "failed to load periods")
	}
	views := make([]PeriodView, 0, len(periods))
	for _, period := range periods {
		views = append(views, NewPeriodView(period))
	}
	return c.JSON(fiber.Map{"periods": views})
}

func (handler *Handler) MarkPeriodStart(c *fiber.Ctx) error {
	day, err := handler.periodMarkDay(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	period, created, err := handler.tracker.Periods.MarkPeriodStart(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to mark period start")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"period":  NewPeriodView(period),
		"created": created,
		"message": handler.message("period.start_marked"),
	})
}

func (handler *Handler) MarkPeriodEnd(c *fiber.Ctx) error {
	day, err := handler.periodMarkDay(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	period, err := handler.tracker.Periods.MarkPeriodEnd(day)
	if err != nil {
		return handler.serviceError(c, err, "failed to mark period end")
	}
	return c.JSON(fiber.Map{
		"period":  NewPeriodView(period),
		"message": handler.message("period.end_marked"),
	})
}

// periodMarkDay reads an optional {"date": "YYYY-MM-DD"} body. An empty body
// marks today.
func (handler *Handler) periodMarkDay(c *fiber.Ctx) (time.Time, error) {
	request := periodMarkRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&request); err != nil {
			return time.Time{}, err
		}
	}
	return handler.resolveDay(request.Date)
}
