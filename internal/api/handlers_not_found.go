package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	authenticated := handler.optionalAuthenticatedUser(c)
	if authenticated != nil {
		c.Locals(contextUserKey, authenticated)
	}

	primaryPath := "/login"
	primaryLabelKey := "not_found.action_login"
	if authenticated != nil {
		primaryPath = "/dashboard"
		primaryLabelKey = "not_found.action_dashboard"
	}

	messages := currentMessages(c)
	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":           localizedPageTitle(messages, "meta.title.not_found", "Salasilah | Page Not Found"),
		"PrimaryPath":     primaryPath,
		"PrimaryLabelKey": primaryLabelKey,
	})
}
