package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	tree, err := handler.familyService.Tree()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load family tree")
	}

	messages := currentMessages(c)
	return handler.render(c, "dashboard", fiber.Map{
		"Title": localizedPageTitle(messages, "meta.title.dashboard", "Salasilah | Dashboard"),
		"Tree":  tree,
	})
}
