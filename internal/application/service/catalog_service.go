package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// CatalogService handles the reusable service/product catalog
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// CreateCatalogItemInput represents the create catalog item input
type CreateCatalogItemInput struct {
	UserID         uuid.UUID
	Code           string
	Description    string
	UnitPrice      float64
	TaxRatePercent float64
}

// CreateCatalogItem creates a new catalog item. Codes must be unique.
func (s *CatalogService) CreateCatalogItem(ctx context.Context, input *CreateCatalogItemInput) (*entity.CatalogItem, error) {
	if input.UnitPrice < 0 {
		return nil, apperror.NewValidationError("unit price must not be negative")
	}
	if input.TaxRatePercent < 0 {
		return nil, apperror.NewValidationError("tax rate must not be negative")
	}

	existing, err := s.catalogRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A catalog item with this code already exists")
	}

	item := &entity.CatalogItem{
		UserID:         input.UserID,
		Code:           input.Code,
		Description:    input.Description,
		UnitPrice:      input.UnitPrice,
		TaxRatePercent: input.TaxRatePercent,
		Active:         true,
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetCatalogItem retrieves a catalog item by ID
func (s *CatalogService) GetCatalogItem(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}
	return item, nil
}

// ListCatalogItems lists catalog items. If isSuperAdmin is true, returns all items.
func (s *CatalogService) ListCatalogItems(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, isSuperAdmin bool) (*pagination.PaginatedResult[entity.CatalogItem], error) {
	items, total, err := s.catalogRepo.List(ctx, userID, params, search, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateCatalogItemInput represents the update catalog item input
type UpdateCatalogItemInput struct {
	UserID         uuid.UUID
	ID             uuid.UUID
	IsSuperAdmin   bool
	Code           *string
	Description    *string
	UnitPrice      *float64
	TaxRatePercent *float64
	Active         *bool
}

// UpdateCatalogItem updates an existing catalog item
func (s *CatalogService) UpdateCatalogItem(ctx context.Context, input *UpdateCatalogItemInput) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}
	if !input.IsSuperAdmin && item.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Code != nil && *input.Code != item.Code {
		existing, err := s.catalogRepo.GetByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A catalog item with this code already exists")
		}
		item.Code = *input.Code
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewValidationError("unit price must not be negative")
		}
		item.UnitPrice = *input.UnitPrice
	}
	if input.TaxRatePercent != nil {
		if *input.TaxRatePercent < 0 {
			return nil, apperror.NewValidationError("tax rate must not be negative")
		}
		item.TaxRatePercent = *input.TaxRatePercent
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteCatalogItem soft-deletes a catalog item
func (s *CatalogService) DeleteCatalogItem(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Catalog item")
	}
	if !isSuperAdmin && item.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.catalogRepo.Delete(ctx, id)
}
