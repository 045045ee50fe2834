package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Index(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", buildLoginPageData(currentMessages(c), flash))
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "register", buildRegisterPageData(currentMessages(c), flash))
}
