package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/salasilah/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := handler.authService.Authenticate(username, password)
	if err != nil {
		key := authErrorTranslationKey(err)
		if key == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to log in")
		}
		handler.setFlashCookie(c, FlashPayload{
			AuthError:     key,
			LoginUsername: services.NormalizeUsername(username),
		})
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if _, err := handler.authService.Register(username, password); err != nil {
		key := authErrorTranslationKey(err)
		if key == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
		handler.setFlashCookie(c, FlashPayload{
			AuthError:     key,
			LoginUsername: services.NormalizeUsername(username),
		})
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	handler.setFlashCookie(c, FlashPayload{AuthSuccess: "auth.success.registered"})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
