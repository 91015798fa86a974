package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"
	"stagedesk/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskServiceError is the typed error for task operations.
type TaskServiceError string

func (e TaskServiceError) Error() string { return string(e) }

const (
	ErrTaskNotFound       TaskServiceError = "task not found"
	ErrTaskCreationFailed TaskServiceError = "task could not be created"
	ErrTaskUpdateFailed   TaskServiceError = "task could not be updated"
	ErrTaskDeletionFailed TaskServiceError = "task could not be deleted"
	ErrTaskInvalidInput   TaskServiceError = "invalid task input"
)

// TaskInput is the create/update payload for a task.
type TaskInput struct {
	OwnerID         uint       `json:"owner_id" form:"owner_id" validate:"required"`
	Title           string     `json:"title" form:"title" validate:"required"`
	Note            string     `json:"note" form:"note"`
	DueDate         *time.Time `json:"due_date" form:"due_date"`
	IsDone          bool       `json:"is_done" form:"is_done"`
	EventIDs        []uint     `json:"event_ids" form:"event_ids"`
	OrganizationIDs []uint     `json:"organization_ids" form:"organization_ids"`
}

// ITaskService implements the task form/action layer.
type ITaskService interface {
	CreateTask(ctx context.Context, input TaskInput) (*models.Task, error)
	GetTask(ctx context.Context, id uint) (*models.Task, error)
	GetTasksPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateTask(ctx context.Context, id uint, input TaskInput) error
	DeleteTask(ctx context.Context, id uint) error
}

type TaskService struct {
	tasks  repositories.ITaskRepository
	events repositories.IEventRepository
	orgs   repositories.IOrganizationRepository
	db     *gorm.DB
}

func NewTaskService(db *gorm.DB) ITaskService {
	return &TaskService{
		tasks:  repositories.NewTaskRepository(db),
		events: repositories.NewEventRepository(db),
		orgs:   repositories.NewOrganizationRepository(db),
		db:     db,
	}
}

func (s *TaskService) linkRows(ctx context.Context, task *models.Task, input TaskInput) error {
	events := make([]models.Event, 0, len(input.EventIDs))
	for _, id := range input.EventIDs {
		event, err := s.events.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue // dangling link ids are dropped silently
			}
			return err
		}
		events = append(events, *event)
	}
	if err := s.tasks.ReplaceEvents(ctx, task, events); err != nil {
		return err
	}

	orgs := make([]models.Organization, 0, len(input.OrganizationIDs))
	for _, id := range input.OrganizationIDs {
		org, err := s.orgs.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return err
		}
		orgs = append(orgs, *org)
	}
	return s.tasks.ReplaceOrganizations(ctx, task, orgs)
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*models.Task, error) {
	if err := validateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaskInvalidInput, err)
	}

	task := models.Task{
		OwnerID: input.OwnerID,
		Title:   input.Title,
		Note:    input.Note,
		DueDate: input.DueDate,
		IsDone:  input.IsDone,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		configslog.Log.Error("CreateTask: insert failed", zap.Error(err))
		return nil, ErrTaskCreationFailed
	}
	if err := s.linkRows(ctx, &task, input); err != nil {
		configslog.Log.Error("CreateTask: links failed", zap.Uint("id", task.ID), zap.Error(err))
		return nil, ErrTaskCreationFailed
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTasksPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	tasks, totalCount, err := s.tasks.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: tasks,
		Meta: queryparams.NewPaginationMeta(params.Page, params.PerPage, totalCount),
	}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, input TaskInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrTaskInvalidInput, err)
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	task.OwnerID = input.OwnerID
	task.Title = input.Title
	task.Note = input.Note
	task.DueDate = input.DueDate
	task.IsDone = input.IsDone
	if err := s.tasks.Update(ctx, task); err != nil {
		configslog.Log.Error("UpdateTask: save failed", zap.Uint("id", id), zap.Error(err))
		return ErrTaskUpdateFailed
	}
	if err := s.linkRows(ctx, task, input); err != nil {
		configslog.Log.Error("UpdateTask: links failed", zap.Uint("id", id), zap.Error(err))
		return ErrTaskUpdateFailed
	}
	return nil
}

// DeleteTask clears the event/organization join rows before the task itself.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if err := s.tasks.ClearLinks(ctx, task); err != nil {
		configslog.Log.Error("DeleteTask: links failed", zap.Uint("id", id), zap.Error(err))
		return ErrTaskDeletionFailed
	}
	if err := s.tasks.Delete(ctx, task); err != nil {
		configslog.Log.Error("DeleteTask: delete failed", zap.Uint("id", id), zap.Error(err))
		return ErrTaskDeletionFailed
	}
	return nil
}

var _ ITaskService = (*TaskService)(nil)
