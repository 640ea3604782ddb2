package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/pagination"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domainRepo.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &task, err
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, "id = ?", id).Error
}

func (r *taskRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, skipUserFilter bool) ([]entity.Task, int64, error) {
	var tasks []entity.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Task{})

	if !skipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Order("due_at ASC").
		Find(&tasks).Error

	return tasks, total, err
}

func (r *taskRepository) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) ([]entity.Task, error) {
	var tasks []entity.Task

	query := r.db.WithContext(ctx).
		Where("due_at >= ? AND due_at <= ?", from, to)

	if !skipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	err := query.Preload("Client").Order("due_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) ListUpcoming(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Task, error) {
	var tasks []entity.Task

	query := r.db.WithContext(ctx).
		Where("done = ? AND due_at >= ?", false, time.Now())

	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	err := query.Order("due_at ASC").Limit(limit).Find(&tasks).Error
	return tasks, err
}
