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

// TaskHandler serves the task pages and actions.
type TaskHandler struct {
	service services.ITaskService
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{service: services.NewTaskService(db)}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := listParams(c, "due_date")

	result, err := h.service.GetTasksPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Tasks",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("ListTasks failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Tasks could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Task{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, "dashboard/tasks/list", dashboardLayout, renderData, http.StatusOK)
}

func (h *TaskHandler) ShowTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/tasks")
	}

	task, err := h.service.GetTask(c.UserContext(), id)
	if err != nil {
		msg := "Task not found."
		if !errors.Is(err, services.ErrTaskNotFound) {
			msg = "Task could not be loaded."
			configslog.Log.Error("ShowTask failed", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/dashboard/tasks")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title": task.Title,
		"Task":  task,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/tasks/detail", dashboardLayout, renderData)
}

func (h *TaskHandler) ShowCreateTask(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard/tasks/form", dashboardLayout, fiber.Map{
		"Title":    "New Task",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *TaskHandler) ShowUpdateTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid record id.")
		return c.Redirect("/dashboard/tasks")
	}
	task, err := h.service.GetTask(c.UserContext(), id)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Task not found.")
		return c.Redirect("/dashboard/tasks")
	}
	return renderer.Render(c, "dashboard/tasks/form", dashboardLayout, fiber.Map{
		"Title":    "Edit Task",
		"Task":     task,
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var input services.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrTaskInvalidInput, "")
	}
	_, err := h.service.CreateTask(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("CreateTask rejected", zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Task created.")
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	var input services.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return actionResult(c, services.ErrTaskInvalidInput, "")
	}
	err := h.service.UpdateTask(c.UserContext(), id, input)
	if err != nil {
		configslog.Log.Warn("UpdateTask rejected", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashFormData(c, input)
	}
	return actionResult(c, err, "Task updated.")
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidIDResult(c)
	}
	err := h.service.DeleteTask(c.UserContext(), id)
	if err != nil && !errors.Is(err, services.ErrTaskNotFound) {
		configslog.Log.Error("DeleteTask failed", zap.Uint("id", id), zap.Error(err))
	}
	return actionResult(c, err, "Task deleted.")
}
