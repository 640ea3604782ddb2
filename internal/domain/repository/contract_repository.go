package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// ContractRepository defines the interface for contract data operations
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	GetWithClauses(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, status *enum.ContractStatus, skipUserFilter bool) ([]entity.Contract, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContractStatus) error
	NextSequence(ctx context.Context) (int, error)
}

// ContractClauseRepository defines the interface for contract clause data operations
type ContractClauseRepository interface {
	CreateBatch(ctx context.Context, clauses []entity.ContractClause) error
	GetByContractID(ctx context.Context, contractID uuid.UUID) ([]entity.ContractClause, error)
	DeleteByContractID(ctx context.Context, contractID uuid.UUID) error
}

// ClauseTemplateRepository defines the interface for clause template data operations
type ClauseTemplateRepository interface {
	Create(ctx context.Context, template *entity.ClauseTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClauseTemplate, error)
	Update(ctx context.Context, template *entity.ClauseTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.ClauseTemplate, int64, error)
}
