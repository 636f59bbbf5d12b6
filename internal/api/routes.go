package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/dashboard", handler.GetDashboard)
	api.Get("/calendar", handler.GetCalendar)
	api.Get("/history", handler.GetHistory)
	api.Get("/reminders", handler.GetReminders)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriods)
	periods.Post("/start", handler.MarkPeriodStart)
	periods.Post("/end", handler.MarkPeriodEnd)

	days := api.Group("/days")
	days.Get("/:date", handler.GetDay)
	days.Put("/:date/mood", handler.LogMood)
	days.Put("/:date/flow", handler.LogFlow)
	days.Put("/:date/symptoms/:symptom", handler.AddSymptom)
	days.Delete("/:date/symptoms/:symptom", handler.RemoveSymptom)

	water := api.Group("/water")
	water.Get("/:date", handler.GetWater)
	water.Post("/:date", handler.AddWaterGlass)
	water.Delete("/:date", handler.ResetWater)

	notes := api.Group("/notes")
	notes.Get("/:date", handler.GetNote)
	notes.Put("/:date", handler.SaveNote)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/xlsx", handler.ExportXLSX)

	api.Post("/import", handler.ImportData)
	api.Post("/data/clear", handler.ClearAllData)
}
