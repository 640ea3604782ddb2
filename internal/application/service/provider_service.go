package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// ProviderService handles provider-related operations
type ProviderService struct {
	providerRepo repository.ProviderRepository
}

// NewProviderService creates a new provider service
func NewProviderService(providerRepo repository.ProviderRepository) *ProviderService {
	return &ProviderService{providerRepo: providerRepo}
}

// CreateProviderInput represents the create provider input
type CreateProviderInput struct {
	UserID        uuid.UUID
	Name          string
	TaxID         string
	Type          enum.ProviderType
	Contact       *string
	Email         *string
	Phone         *string
	Address       *string
	AccountHolder *string
	AccountNumber *string
	BankName      *string
}

// CreateProvider creates a new provider
func (s *ProviderService) CreateProvider(ctx context.Context, input *CreateProviderInput) (*entity.Provider, error) {
	provider := &entity.Provider{
		UserID:        input.UserID,
		Name:          input.Name,
		TaxID:         input.TaxID,
		Type:          input.Type,
		Contact:       input.Contact,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		AccountHolder: input.AccountHolder,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
	}
	if provider.Type == "" {
		provider.Type = enum.ProviderTypeServices
	}

	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// GetProvider retrieves a provider by ID
func (s *ProviderService) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Provider")
	}
	return provider, nil
}

// ListProviders lists providers. If isSuperAdmin is true, returns all providers.
func (s *ProviderService) ListProviders(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, isSuperAdmin bool) (*pagination.PaginatedResult[entity.Provider], error) {
	providers, total, err := s.providerRepo.List(ctx, userID, params, search, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(providers, pag), nil
}

// UpdateProviderInput represents the update provider input
type UpdateProviderInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	IsSuperAdmin  bool
	Name          *string
	TaxID         *string
	Type          *enum.ProviderType
	Contact       *string
	Email         *string
	Phone         *string
	Address       *string
	AccountHolder *string
	AccountNumber *string
	BankName      *string
}

// UpdateProvider updates an existing provider
func (s *ProviderService) UpdateProvider(ctx context.Context, input *UpdateProviderInput) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Provider")
	}
	if !input.IsSuperAdmin && provider.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.TaxID != nil {
		provider.TaxID = *input.TaxID
	}
	if input.Type != nil {
		provider.Type = *input.Type
	}
	if input.Contact != nil {
		provider.Contact = input.Contact
	}
	if input.Email != nil {
		provider.Email = input.Email
	}
	if input.Phone != nil {
		provider.Phone = input.Phone
	}
	if input.Address != nil {
		provider.Address = input.Address
	}
	if input.AccountHolder != nil {
		provider.AccountHolder = input.AccountHolder
	}
	if input.AccountNumber != nil {
		provider.AccountNumber = input.AccountNumber
	}
	if input.BankName != nil {
		provider.BankName = input.BankName
	}

	if err := s.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// DeleteProvider soft-deletes a provider
func (s *ProviderService) DeleteProvider(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if provider == nil {
		return apperror.NewNotFoundError("Provider")
	}
	if !isSuperAdmin && provider.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.providerRepo.Delete(ctx, id)
}
