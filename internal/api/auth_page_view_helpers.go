package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/salasilah/internal/services"
)

func buildLoginPageData(messages map[string]string, flash FlashPayload) fiber.Map {
	return fiber.Map{
		"Title":      localizedPageTitle(messages, "meta.title.login", "Salasilah | Log In"),
		"ErrorKey":   flash.AuthError,
		"SuccessKey": flash.AuthSuccess,
		"Username":   flash.LoginUsername,
	}
}

func buildRegisterPageData(messages map[string]string, flash FlashPayload) fiber.Map {
	return fiber.Map{
		"Title":    localizedPageTitle(messages, "meta.title.register", "Salasilah | Register"),
		"ErrorKey": flash.AuthError,
		"Username": flash.LoginUsername,
	}
}

// authErrorTranslationKey maps auth domain errors onto catalog keys for the
// flash cookie. Unmapped errors return "" so callers can treat them as
// internal failures instead of user mistakes.
func authErrorTranslationKey(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "auth.error.invalid_credentials"
	case errors.Is(err, services.ErrUsernameTaken):
		return "auth.error.username_taken"
	case errors.Is(err, services.ErrUsernameRequired):
		return "auth.error.username_required"
	case errors.Is(err, services.ErrPasswordRequired):
		return "auth.error.password_required"
	}
	return ""
}
