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

// OrganizationHandler serves the organization pages and actions.
type OrganizationHandler struct {
	service services.IOrganizationService
	lookups services.ILookupService
}

func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{
		service: services.NewOrganizationService(db),
		lookups: services.NewLookupService(db),
	}
}

func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := listParams(c, "name")

	result, err := h.service.GetOrganizationsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Organizations",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("ListOrganizations failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Organizations could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Organization{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, "dashboard/organizations/list", dashboardLayout, renderData, http.StatusOK)
}

func (h *OrganizationHandler) ShowOrganization(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/organizations")
	}

	detail, err := h.service.GetOrganizationDetail(c.UserContext(), id)
	if err != nil {
		msg := "Organization not found."
		if !errors.Is(err, services.ErrOrganizationNotFound) {
			msg = "Organization could not be loaded."
			configslog.Log.Error("ShowOrganization failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/organizations")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  detail.Organization.Name,
		"Detail": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/organizations/detail", dashboardLayout, renderData)
}

func (h *OrganizationHandler) ShowCreateOrganization(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/organizations/form", dashboardLayout, fiber.Map{
		"Title":             "New Organization",
		"FormData":          flashmessages.GetFlashFormData(c),
		"OrganizationTypes": h.lookups.OrganizationTypes(ctx),
		"PhoneTypes":        h.lookups.PhoneTypes(ctx),
		"EATypes":           h.lookups.ElectronicAddressTypes(ctx),
		"ReferralSources":   h.lookups.ReferralSources(ctx),
	})
}

func (h *OrganizationHandler) ShowUpdateOrganization(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/organizations")
	}
	detail, err := h.service.GetOrganizationDetail(c.UserContext(), id)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Organization not found.")
		return c.Redirect("/dashboard/organizations")
	}

	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/organizations/form", dashboardLayout, fiber.Map{
		"Title":             "Edit Organization",
		"Detail":            detail,
		"FormData":          flashmessages.GetFlashFormData(c),
		"OrganizationTypes": h.lookups.OrganizationTypes(ctx),
		"PhoneTypes":        h.lookups.PhoneTypes(ctx),
		"EATypes":           h.lookups.ElectronicAddressTypes(ctx),
		"ReferralSources":   h.lookups.ReferralSources(ctx),
	})
}

func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	var input services.OrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrOrganizationInvalidInput, "")
	}
	_, err := h.service.CreateOrganization(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateOrganization rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Organization created.")
}

func (h *OrganizationHandler) UpdateOrganization(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.OrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrOrganizationInvalidInput, "")
	}
	err := h.service.UpdateOrganization(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateOrganization rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Organization updated.")
}

func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteOrganization(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrOrganizationNotFound) {
		configslog.Log.Error("DeleteOrganization failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Organization deleted.")
}
