package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// TaskRepository defines the interface for calendar task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, skipUserFilter bool) ([]entity.Task, int64, error)
	// ListInRange returns tasks due between from and to inclusive, ordered by due time.
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) ([]entity.Task, error)
	// ListUpcoming returns the next pending tasks, for the dashboard.
	ListUpcoming(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Task, error)
}
