package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	UserID    uuid.UUID
	Name      string
	TaxID     string
	Contact   *string
	Email     *string
	Phone     *string
	Address   *string
	CountryID *uuid.UUID
	CityID    *uuid.UUID
	SectorID  *uuid.UUID
	Notes     *string
}

// CreateClient creates a new client. Tax IDs must be unique.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	existing, err := s.clientRepo.GetByTaxID(ctx, input.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A client with this tax ID already exists")
	}

	client := &entity.Client{
		UserID:    input.UserID,
		Name:      input.Name,
		TaxID:     input.TaxID,
		Contact:   input.Contact,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CountryID: input.CountryID,
		CityID:    input.CityID,
		SectorID:  input.SectorID,
		Notes:     input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients. If isSuperAdmin is true, returns all clients.
func (s *ClientService) ListClients(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, isSuperAdmin bool) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, userID, params, search, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	IsSuperAdmin bool
	Name         *string
	TaxID        *string
	Contact      *string
	Email        *string
	Phone        *string
	Address      *string
	CountryID    *uuid.UUID
	CityID       *uuid.UUID
	SectorID     *uuid.UUID
	Notes        *string
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if !input.IsSuperAdmin && client.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.TaxID != nil && *input.TaxID != client.TaxID {
		existing, err := s.clientRepo.GetByTaxID(ctx, *input.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A client with this tax ID already exists")
		}
		client.TaxID = *input.TaxID
	}
	if input.Contact != nil {
		client.Contact = input.Contact
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.CountryID != nil {
		client.CountryID = input.CountryID
	}
	if input.CityID != nil {
		client.CityID = input.CityID
	}
	if input.SectorID != nil {
		client.SectorID = input.SectorID
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient soft-deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	if !isSuperAdmin && client.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.clientRepo.Delete(ctx, id)
}
