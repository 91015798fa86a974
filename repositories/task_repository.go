package repositories

import (
	"context"
	"errors"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ITaskRepository manages Task rows and their event/organization links.
type ITaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id uint) (*models.Task, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Task, int64, error)
	Update(ctx context.Context, task *models.Task) error
	ReplaceEvents(ctx context.Context, task *models.Task, events []models.Event) error
	ReplaceOrganizations(ctx context.Context, task *models.Task, orgs []models.Organization) error
	ClearLinks(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
}

type TaskRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Task]
}

func NewTaskRepository(db *gorm.DB) ITaskRepository {
	base := NewBaseRepository[models.Task](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":         "tasks.id",
		"created_at": "tasks.created_at",
		"title":      "tasks.title",
		"due_date":   "tasks.due_date",
	})
	return &TaskRepository{db: db, base: base}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task == nil || task.OwnerID == 0 {
		return errors.New("task without an owner cannot be created")
	}
	return r.db.WithContext(ctx).Omit("Events", "Organizations", "Owner").Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*models.Task, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Owner").Preload("Events").Preload("Organizations").
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TaskRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Task, int64, error) {
	var tasks []models.Task
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Task{})
	if params.Search != "" {
		query = query.Where("LOWER(tasks.title) LIKE ?", searchPattern(params.Search))
	}
	query = query.Order(r.base.OrderClause(params.SortBy, params.OrderBy))

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("TaskRepository.FindAllPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return tasks, 0, nil
	}

	err := query.
		Preload("Owner").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&tasks).Error
	if err != nil {
		configslog.Log.Error("TaskRepository.FindAllPaginated: find failed", zap.Error(err))
		return nil, totalCount, err
	}
	return tasks, totalCount, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	if task == nil || task.ID == 0 {
		return errors.New("task to update is not valid")
	}
	return r.db.WithContext(ctx).Omit("Events", "Organizations", "Owner").Save(task).Error
}

func (r *TaskRepository) ReplaceEvents(ctx context.Context, task *models.Task, events []models.Event) error {
	if task == nil || task.ID == 0 {
		return errors.New("task is not valid")
	}
	return r.db.WithContext(ctx).Model(task).Association("Events").Replace(events)
}

func (r *TaskRepository) ReplaceOrganizations(ctx context.Context, task *models.Task, orgs []models.Organization) error {
	if task == nil || task.ID == 0 {
		return errors.New("task is not valid")
	}
	return r.db.WithContext(ctx).Model(task).Association("Organizations").Replace(orgs)
}

// ClearLinks drops both join-row sets before the task itself is deleted.
func (r *TaskRepository) ClearLinks(ctx context.Context, task *models.Task) error {
	if task == nil || task.ID == 0 {
		return errors.New("task is not valid")
	}
	if err := r.db.WithContext(ctx).Model(task).Association("Events").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(task).Association("Organizations").Clear()
}

func (r *TaskRepository) Delete(ctx context.Context, task *models.Task) error {
	if task == nil || task.ID == 0 {
		return errors.New("task to delete is not valid")
	}
	return r.db.WithContext(ctx).Delete(task).Error
}

var _ ITaskRepository = (*TaskRepository)(nil)
