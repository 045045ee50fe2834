package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/salasilah/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, ok := payload["Messages"]; !ok {
		payload["Messages"] = currentMessages(c)
	}
	if _, ok := payload["CurrentUser"]; !ok {
		if user, ok := currentUser(c); ok {
			payload["CurrentUser"] = user
		} else {
			payload["CurrentUser"] = (*models.User)(nil)
		}
	}
	payload["Language"] = currentLanguage(c)
	payload["CSRFToken"] = csrfToken(c)
	payload["Path"] = c.Path()
	return payload
}
