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

// ProductHandler serves the product/entertainer pages and actions.
type ProductHandler struct {
	service services.IProductService
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{service: services.NewProductService(db)}
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := listParams(c, "name")

	result, err := h.service.GetProductsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Products",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("ListProducts failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Products could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Product{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, "dashboard/products/list", dashboardLayout, renderData, http.StatusOK)
}

func (h *ProductHandler) ShowProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/products")
	}

	detail, err := h.service.GetProductDetail(c.UserContext(), id)
	if err != nil {
		msg := "Product not found."
		if !errors.Is(err, services.ErrProductNotFound) {
			msg = "Product could not be loaded."
			configslog.Log.Error("ShowProduct failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/products")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  detail.Product.Name,
		"Detail": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/products/detail", dashboardLayout, renderData)
}

func (h *ProductHandler) ShowCreateProduct(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard/products/form", dashboardLayout, fiber.Map{
		"Title":    "New Product",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *ProductHandler) ShowUpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/products")
	}
	detail, err := h.service.GetProductDetail(c.UserContext(), id)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Product not found.")
		return c.Redirect("/dashboard/products")
	}
	return renderer.Render(c, "dashboard/products/form", dashboardLayout, fiber.Map{
		"Title":    "Edit Product",
		"Detail":   detail,
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrProductInvalidInput, "")
	}
	_, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateProduct rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Product created.")
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrProductInvalidInput, "")
	}
	err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateProduct rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Product updated.")
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrProductNotFound) {
		configslog.Log.Error("DeleteProduct failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Product deleted.")
}
