package handlers

import (
	"errors"
	"net/http"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/queryparams"
	"stagedesk/pkg/renderer"
	"stagedesk/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactHandler serves the contact list, detail and form pages plus the
// create/update/delete actions.
type ContactHandler struct {
	service services.IContactService
	lookups services.ILookupService
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{
		service: services.NewContactService(db),
		lookups: services.NewLookupService(db),
	}
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := listParams(c, "last_name")

	result, err := h.service.GetContactsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Contacts",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("ListContacts failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Contacts could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Person{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, "dashboard/contacts/list", dashboardLayout, renderData, http.StatusOK)
}

func (h *ContactHandler) ShowContact(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/contacts")
	}

	detail, err := h.service.GetContactDetail(c.UserContext(), id)
	if err != nil {
		msg := "Contact not found."
		if !errors.Is(err, services.ErrContactNotFound) {
			msg = "Contact could not be loaded."
			configslog.Log.Error("ShowContact failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/contacts")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  detail.Person.FullName(),
		"Detail": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/contacts/detail", dashboardLayout, renderData)
}

func (h *ContactHandler) ShowCreateContact(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/contacts/form", dashboardLayout, fiber.Map{
		"Title":           "New Contact",
		"FormData":        flashmessages.GetFlashFormData(c),
		"PhoneTypes":      h.lookups.PhoneTypes(ctx),
		"EATypes":         h.lookups.ElectronicAddressTypes(ctx),
		"ReferralSources": h.lookups.ReferralSources(ctx),
	})
}

func (h *ContactHandler) ShowUpdateContact(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/contacts")
	}
	detail, err := h.service.GetContactDetail(c.UserContext(), id)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Contact not found.")
		return c.Redirect("/dashboard/contacts")
	}

	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/contacts/form", dashboardLayout, fiber.Map{
		"Title":           "Edit Contact",
		"Detail":          detail,
		"FormData":        flashmessages.GetFlashFormData(c),
		"PhoneTypes":      h.lookups.PhoneTypes(ctx),
		"EATypes":         h.lookups.ElectronicAddressTypes(ctx),
		"ReferralSources": h.lookups.ReferralSources(ctx),
	})
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrContactInvalidInput, "")
	}
	_, err := h.service.CreateContact(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateContact rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Contact created.")
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrContactInvalidInput, "")
	}
	err := h.service.UpdateContact(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateContact rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Contact updated.")
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteContact(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrContactNotFound) {
		configslog.Log.Error("DeleteContact failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Contact deleted.")
}
