package handlers

import (
	"net/http"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/renderer"
	"stagedesk/repositories"
	"stagedesk/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HomeHandler renders the dashboard landing page with record counts and the
// events of the next 30 days.
type HomeHandler struct {
	contacts repositories.IContactRepository
	orgs     repositories.IOrganizationRepository
	products repositories.IProductRepository
	events   services.IEventService
	eventsRp repositories.IEventRepository
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{
		contacts: repositories.NewContactRepository(db),
		orgs:     repositories.NewOrganizationRepository(db),
		products: repositories.NewProductRepository(db),
		events:   services.NewEventService(db),
		eventsRp: repositories.NewEventRepository(db),
	}
}

func (h *HomeHandler) ShowHome(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	ctx := c.UserContext()

	contactCount, _ := h.contacts.CountAll(ctx)
	orgCount, _ := h.orgs.CountAll(ctx)
	productCount, _ := h.products.CountAll(ctx)
	eventCount, _ := h.eventsRp.CountAll(ctx)

	now := time.Now()
	upcoming, err := h.events.GetEventsByDateRange(ctx, now, now.AddDate(0, 0, 30))
	if err != nil {
		configslog.Log.Error("ShowHome: upcoming events failed", zap.Error(err))
		upcoming = nil
	}

	renderData := fiber.Map{
		"Title":          "Dashboard",
		"ContactCount":   contactCount,
		"OrgCount":       orgCount,
		"ProductCount":   productCount,
		"EventCount":     eventCount,
		"UpcomingEvents": upcoming,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/home", dashboardLayout, renderData, http.StatusOK)
}
