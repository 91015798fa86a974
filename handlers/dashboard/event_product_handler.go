package handlers

import (
	"errors"

	"stagedesk/configs/configslog"
	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/renderer"
	"stagedesk/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventProductHandler serves the booking detail page and the booking actions.
// Bookings are created from an event's detail page, so list rendering lives on
// the event side.
type EventProductHandler struct {
	service services.IEventProductService
}

func NewEventProductHandler(db *gorm.DB) *EventProductHandler {
	return &EventProductHandler{service: services.NewEventProductService(db)}
}

func (h *EventProductHandler) ShowBooking(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/events")
	}

	detail, err := h.service.GetBookingDetail(c.UserContext(), id)
	if err != nil {
		msg := "Booking not found."
		if !errors.Is(err, services.ErrBookingNotFound) {
			msg = "Booking could not be loaded."
			configslog.Log.Error("ShowBooking failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/events")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  detail.ProductName + " @ " + detail.EventName,
		"Detail": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/bookings/detail", dashboardLayout, renderData)
}

func (h *EventProductHandler) CreateBooking(c *fiber.Ctx) error {
	var input services.EventProductInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrBookingInvalidInput, "")
	}
	_, err := h.service.CreateBooking(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateBooking rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Booking created.")
}

func (h *EventProductHandler) UpdateBooking(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.EventProductInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrBookingInvalidInput, "")
	}
	err := h.service.UpdateBooking(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateBooking rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Booking updated.")
}

func (h *EventProductHandler) DeleteBooking(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteBooking(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrBookingNotFound) {
		configslog.Log.Error("DeleteBooking failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Booking deleted.")
}
