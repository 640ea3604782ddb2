package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByNumber(ctx context.Context, number string) (*entity.Quotation, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	// NextSequence returns the next value of the quotation numbering sequence.
	NextSequence(ctx context.Context) (int, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuotationLineItemRepository defines the interface for quotation line item data operations
type QuotationLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.QuotationLineItem) error
	GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationLineItem, error)
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
}
