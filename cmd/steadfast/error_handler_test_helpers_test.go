package main

import "github.com/gofiber/fiber/v2"

func newErrorTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: jsonErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	return app
}
