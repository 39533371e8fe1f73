package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.RequireUser)

	habits := api.Group("/habits")
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Get("/:id", handler.GetHabit)
	habits.Patch("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/status", handler.ChangeHabitStatus)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/heatmap", handler.GetHeatmap)
	stats.Get("/consistency", handler.GetConsistency)
	stats.Get("/milestones", handler.GetMilestones)

	mood := api.Group("/mood")
	mood.Get("", handler.GetMoodHistory)
	mood.Get("/today", handler.GetTodayMood)
	mood.Put("/today", handler.SaveTodayMood)

	journal := api.Group("/journal")
	journal.Get("/:date", handler.GetJournalEntry)
	journal.Put("/:date", handler.SaveJournalEntry)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
