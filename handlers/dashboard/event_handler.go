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

// EventHandler serves the event pages and actions.
type EventHandler struct {
	service services.IEventService
	lookups services.ILookupService
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{
		service: services.NewEventService(db),
		lookups: services.NewLookupService(db),
	}
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := listParams(c, "start_date")

	result, err := h.service.GetEventsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Events",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("ListEvents failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Events could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Event{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, "dashboard/events/list", dashboardLayout, renderData, http.StatusOK)
}

func (h *EventHandler) ShowEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/events")
	}

	detail, err := h.service.GetEventDetail(c.UserContext(), id)
	if err != nil {
		msg := "Event not found."
		if !errors.Is(err, services.ErrEventNotFound) {
			msg = "Event could not be loaded."
			configslog.Log.Error("ShowEvent failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/events")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  detail.Event.Name,
		"Detail": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/events/detail", dashboardLayout, renderData)
}

func (h *EventHandler) ShowCreateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/events/form", dashboardLayout, fiber.Map{
		"Title":         "New Event",
		"FormData":      flashmessages.GetFlashFormData(c),
		"EventTypes":    h.lookups.EventTypes(ctx),
		"EventStatuses": h.lookups.EventStatuses(ctx),
	})
}

func (h *EventHandler) ShowUpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/events")
	}
	detail, err := h.service.GetEventDetail(c.UserContext(), id)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Event not found.")
		return c.Redirect("/dashboard/events")
	}

	ctx := c.UserContext()
	return renderer.Render(c, "dashboard/events/form", dashboardLayout, fiber.Map{
		"Title":         "Edit Event",
		"Detail":        detail,
		"FormData":      flashmessages.GetFlashFormData(c),
		"EventTypes":    h.lookups.EventTypes(ctx),
		"EventStatuses": h.lookups.EventStatuses(ctx),
	})
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrEventInvalidInput, "")
	}
	_, err := h.service.CreateEvent(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateEvent rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Event created.")
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrEventInvalidInput, "")
	}
	err := h.service.UpdateEvent(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateEvent rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Event updated.")
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteEvent(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrEventNotFound) {
		configslog.Log.Error("DeleteEvent failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Event deleted.")
}
