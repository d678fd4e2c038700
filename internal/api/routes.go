package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/token", handler.ObtainToken)
	auth.Post("/token/refresh", handler.RefreshToken)
	auth.Post("/password", handler.ChangePassword)
	auth.Post("/logout", handler.Logout)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("/", handler.ListHabits)
	habits.Post("/", handler.CreateHabit)
	habits.Get("/active", handler.ListActiveHabits)
	habits.Get("/dashboard", handler.Dashboard)
	habits.Get("/:id", handler.GetHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Patch("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Get("/:id/stats", handler.HabitStats)

	triggers := api.Group("/triggers", handler.AuthRequired)
	triggers.Get("/", handler.ListTriggers)
	triggers.Post("/", handler.CreateTrigger)
	triggers.Get("/:id", handler.GetTrigger)
	triggers.Put("/:id", handler.UpdateTrigger)
	triggers.Patch("/:id", handler.UpdateTrigger)
	triggers.Delete("/:id", handler.DeleteTrigger)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("/", handler.ListLogs)
	logs.Post("/", handler.CreateLog)
	logs.Get("/:id", handler.GetLog)
	logs.Put("/:id", handler.UpdateLog)
	logs.Patch("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
