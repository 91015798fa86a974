package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/queryparams"
)

const dashboardLayout = "layouts/dashboard_layout"

// parseID reads the :id route parameter. Zero and negative values are invalid.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// listParams parses the list query string, falling back to defaults when the
// query cannot be bound.
func listParams(c *fiber.Ctx, defaultSort string) queryparams.ListParams {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(defaultSort)
	}
	if params.SortBy == "" {
		params.SortBy = defaultSort
	}
	params.Validate()
	return params
}

// actionResult collapses a write-path outcome to the {success, error} pair and
// stores the flash message the next page read will pick up.
func actionResult(c *fiber.Ctx, err error, successMsg string) error {
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.JSON(fiber.Map{"success": false, "error": true, "message": err.Error()})
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, successMsg)
	return c.JSON(fiber.Map{"success": true, "error": false})
}

// invalidIDResult is the action response for an unparseable :id.
func invalidIDResult(c *fiber.Ctx) error {
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": true, "message": "invalid id"})
}
