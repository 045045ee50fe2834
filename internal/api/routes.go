package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.Index)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/add_member", handler.AuthRequired, handler.ShowAddMemberPage)
	app.Post("/add_member", handler.AuthRequired, handler.CreateMember)
	app.Get("/edit_member/:id", handler.AuthRequired, handler.ShowEditMemberPage)
	app.Post("/edit_member/:id", handler.AuthRequired, handler.UpdateMember)

	app.Use(handler.NotFound)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
