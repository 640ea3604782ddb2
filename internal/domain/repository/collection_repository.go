package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// CollectionRepository defines the interface for collection (recaudo) data operations
type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	Update(ctx context.Context, collection *entity.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *CollectionFilterParams) ([]entity.Collection, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.CollectionStatus) error
	NextSequence(ctx context.Context) (int, error)
	// TotalsByStatus sums grand totals and collected amounts grouped by status, for the dashboard.
	TotalsByStatus(ctx context.Context, userID uuid.UUID) (map[enum.CollectionStatus]float64, float64, error)
}

// CollectionFilterParams contains filtering parameters for collection queries
type CollectionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.CollectionStatus
	ClientID   *uuid.UUID
}

// CollectionLineItemRepository defines the interface for collection line item data operations
type CollectionLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.CollectionLineItem) error
	GetByCollectionID(ctx context.Context, collectionID uuid.UUID) ([]entity.CollectionLineItem, error)
	DeleteByCollectionID(ctx context.Context, collectionID uuid.UUID) error
}

// CuentaCobroRepository defines the interface for cuenta de cobro data operations
type CuentaCobroRepository interface {
	Create(ctx context.Context, cuenta *entity.CuentaCobro) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CuentaCobro, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CuentaCobro, error)
	Update(ctx context.Context, cuenta *entity.CuentaCobro) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.CuentaCobro, int64, error)
	NextSequence(ctx context.Context) (int, error)
}

// CuentaCobroLineItemRepository defines the interface for cuenta de cobro line item data operations
type CuentaCobroLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.CuentaCobroLineItem) error
	DeleteByCuentaCobroID(ctx context.Context, cuentaCobroID uuid.UUID) error
}
