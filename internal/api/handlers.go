package api

import (
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/terraincognita07/salasilah/internal/db"
	"github.com/terraincognita07/salasilah/internal/i18n"
	"github.com/terraincognita07/salasilah/internal/models"
	"github.com/terraincognita07/salasilah/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	funcMap := template.FuncMap{
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			return currentPath == route ||
				strings.HasPrefix(currentPath, route+"/") ||
				strings.HasPrefix(currentPath, route+"?")
		},
		"isSelectedParent": func(selected *uint, id uint) bool {
			return selected != nil && *selected == id
		},
		"parentName": func(messages map[string]string, parent *models.FamilyMember) string {
			if parent == nil {
				return translateMessage(messages, "dashboard.unknown_parent")
			}
			return parent.Name
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"dashboard",
		"add_member",
		"edit_member",
		"not_found",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)

	return &Handler{
		db:            database,
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Users),
		familyService: services.NewFamilyService(repositories.Members),
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		i18n:          i18nManager,
		templates:     templates,
	}, nil
}
