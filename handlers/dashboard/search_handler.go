package handlers

import (
	"net/http"
	"strings"

	"stagedesk/configs/configslog"
	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/renderer"
	"stagedesk/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SearchHandler serves the cross-entity search page.
type SearchHandler struct {
	service services.ISearchService
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{service: services.NewSearchService(db)}
}

func (h *SearchHandler) GlobalSearch(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	query := strings.TrimSpace(c.Query("search"))
	kind := strings.TrimSpace(c.Query("type"))

	renderData := fiber.Map{
		"Title": "Search",
		"Query": query,
		"Kind":  kind,
	}
	renderer.SetFlashMessages(renderData, flashData)

	results, err := h.service.GlobalSearch(c.UserContext(), query, kind)
	if err != nil {
		configslog.Log.Error("GlobalSearch failed", zap.String("query", query), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Search failed."
		results = nil
	}
	renderData["Results"] = results

	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.JSON(fiber.Map{"results": results})
	}
	return renderer.Render(c, "dashboard/search/results", dashboardLayout, renderData, http.StatusOK)
}
