package api

import (
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/salasilah/internal/db"
	"github.com/terraincognita07/salasilah/internal/i18n"
	"github.com/terraincognita07/salasilah/internal/models"
	"github.com/terraincognita07/salasilah/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName     = "salasilah_auth"
	languageCookieName = "salasilah_lang"
	flashCookieName    = "salasilah_flash"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	db            *gorm.DB
	repositories  *db.Repositories
	authService   *services.AuthService
	familyService *services.FamilyService
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	i18n          *i18n.Manager
	templates     map[string]*template.Template
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// FlashPayload carries translation keys for one-shot messages between a
// redirect and the page that renders it.
type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	AuthSuccess   string `json:"auth_success,omitempty"`
	FormError     string `json:"form_error,omitempty"`
	LoginUsername string `json:"login_username,omitempty"`
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
