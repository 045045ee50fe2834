package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/salasilah/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ShowAddMemberPage(c *fiber.Ctx) error {
	members, err := handler.familyService.ParentOptions(0)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load members")
	}

	flash := handler.popFlashCookie(c)
	messages := currentMessages(c)
	return handler.render(c, "add_member", fiber.Map{
		"Title":    localizedPageTitle(messages, "meta.title.add_member", "Salasilah | Add Member"),
		"Members":  members,
		"ErrorKey": flash.FormError,
	})
}

func (handler *Handler) CreateMember(c *fiber.Ctx) error {
	input, err := parseMemberForm(c)
	if err == nil {
		_, err = handler.familyService.CreateMember(input)
	}
	if err != nil {
		key := memberErrorTranslationKey(err)
		if key == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to create member")
		}
		handler.setFlashCookie(c, FlashPayload{FormError: key})
		return c.Redirect("/add_member", fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (handler *Handler) ShowEditMemberPage(c *fiber.Ctx) error {
	memberID, err := parseMemberIDParam(c)
	if err != nil {
		return handler.NotFound(c)
	}

	member, err := handler.familyService.MemberByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.NotFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load member")
	}

	members, err := handler.familyService.ParentOptions(memberID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load members")
	}

	flash := handler.popFlashCookie(c)
	messages := currentMessages(c)
	return handler.render(c, "edit_member", fiber.Map{
		"Title":    localizedPageTitle(messages, "meta.title.edit_member", "Salasilah | Edit Member"),
		"Member":   member,
		"Members":  members,
		"ErrorKey": flash.FormError,
	})
}

func (handler *Handler) UpdateMember(c *fiber.Ctx) error {
	memberID, err := parseMemberIDParam(c)
	if err != nil {
		return handler.NotFound(c)
	}

	input, err := parseMemberForm(c)
	if err == nil {
		err = handler.familyService.UpdateMember(memberID, input)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.NotFound(c)
		}
		key := memberErrorTranslationKey(err)
		if key == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to update member")
		}
		handler.setFlashCookie(c, FlashPayload{FormError: key})
		return c.Redirect("/edit_member/"+c.Params("id"), fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func parseMemberForm(c *fiber.Ctx) (services.MemberInput, error) {
	return services.ParseMemberInput(
		c.FormValue("name"),
		c.FormValue("birth_date"),
		c.FormValue("father_id"),
		c.FormValue("mother_id"),
	)
}

func parseMemberIDParam(c *fiber.Ctx) (uint, error) {
	memberID, err := c.ParamsInt("id")
	if err != nil || memberID <= 0 {
		return 0, errors.New("invalid member id")
	}
	return uint(memberID), nil
}

func memberErrorTranslationKey(err error) string {
	switch {
	case errors.Is(err, services.ErrNameRequired):
		return "member.error.name_required"
	case errors.Is(err, services.ErrParentNotFound):
		return "member.error.parent_not_found"
	case errors.Is(err, services.ErrSelfParent):
		return "member.error.self_parent"
	}
	return ""
}
