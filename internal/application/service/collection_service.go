package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/draft"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

// CollectionService handles recaudos: collection documents raised against
// clients, either manually or from an approved quotation.
type CollectionService struct {
	collectionRepo repository.CollectionRepository
	lineItemRepo   repository.CollectionLineItemRepository
	quotationRepo  repository.QuotationRepository
	clientRepo     repository.ClientRepository
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	lineItemRepo repository.CollectionLineItemRepository,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		lineItemRepo:   lineItemRepo,
		quotationRepo:  quotationRepo,
		clientRepo:     clientRepo,
	}
}

// CollectionItemInput represents a line item input
type CollectionItemInput struct {
	Description    string
	Quantity       int
	UnitPrice      float64
	TaxRatePercent float64
}

// CreateCollectionInput represents the input for creating a collection
type CreateCollectionInput struct {
	UserID   uuid.UUID
	ClientID *uuid.UUID
	Date     time.Time
	Notes    *string
	Items    []CollectionItemInput
}

// CreateCollection creates a collection document. Totals are derived from
// the line items with the same arithmetic the quotation wizard uses.
func (s *CollectionService) CreateCollection(ctx context.Context, input *CreateCollectionInput) (*entity.Collection, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("a collection needs at least one line item")
	}

	seq, err := s.collectionRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}
	number := utils.FormatDocumentNumber(utils.CollectionPrefix, seq)

	var clientName string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
	}

	lines := make([]draft.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Description == "" {
			return nil, apperror.NewValidationError("item description is required")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("quantity must be positive")
		}
		if item.UnitPrice < 0 || item.TaxRatePercent < 0 {
			return nil, apperror.NewValidationError("unit price and tax rate must not be negative")
		}
		lines = append(lines, draft.LineItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TaxRatePercent: item.TaxRatePercent,
			LineTotal:      draft.LineTotal(item.Quantity, item.UnitPrice, item.TaxRatePercent),
		})
	}
	totals := draft.ComputeTotals(lines)

	collection := &entity.Collection{
		UserID:     input.UserID,
		ClientID:   input.ClientID,
		Number:     number,
		Date:       input.Date,
		ClientName: clientName,
		Subtotal:   totals.Subtotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		Status:     enum.CollectionStatusPending,
		Notes:      input.Notes,
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	items := make([]entity.CollectionLineItem, 0, len(lines))
	for i, li := range lines {
		items = append(items, entity.CollectionLineItem{
			CollectionID:   collection.ID,
			Position:       i + 1,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
			LineTotal:      li.LineTotal,
		})
	}
	if err := s.lineItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.collectionRepo.GetWithItems(ctx, collection.ID)
}

// CreateFromQuotation raises a collection document mirroring an approved
// quotation's line items and totals.
func (s *CollectionService) CreateFromQuotation(ctx context.Context, userID, quotationID uuid.UUID) (*entity.Collection, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if quotation.Status != enum.QuotationStatusApproved {
		return nil, apperror.NewValidationError("only approved quotations can be collected")
	}

	seq, err := s.collectionRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	collection := &entity.Collection{
		UserID:      userID,
		ClientID:    quotation.ClientID,
		QuotationID: &quotation.ID,
		Number:      utils.FormatDocumentNumber(utils.CollectionPrefix, seq),
		Date:        time.Now(),
		ClientName:  quotation.ClientName,
		Subtotal:    quotation.Subtotal,
		TaxTotal:    quotation.TaxTotal,
		GrandTotal:  quotation.GrandTotal,
		Status:      enum.CollectionStatusPending,
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	items := make([]entity.CollectionLineItem, 0, len(quotation.Items))
	for _, li := range quotation.Items {
		items = append(items, entity.CollectionLineItem{
			CollectionID:   collection.ID,
			Position:       li.Position,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
			LineTotal:      li.LineTotal,
		})
	}
	if err := s.lineItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.collectionRepo.GetWithItems(ctx, collection.ID)
}

// GetCollection retrieves a collection with its line items
func (s *CollectionService) GetCollection(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	collection, err := s.collectionRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	return collection, nil
}

// ListCollectionsInput represents the input for listing collections
type ListCollectionsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.CollectionStatus
	ClientID     *uuid.UUID
}

// ListCollections lists collections with filtering
func (s *CollectionService) ListCollections(ctx context.Context, input *ListCollectionsInput) (*pagination.PaginatedResult[entity.Collection], error) {
	params := &repository.CollectionFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	collections, total, err := s.collectionRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(collections, pag), nil
}

// RegisterPayment records an amount collected against the document and moves
// its status along pending, partial, collected.
func (s *CollectionService) RegisterPayment(ctx context.Context, userID, id uuid.UUID, amount float64, isSuperAdmin bool) (*entity.Collection, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError("payment amount must be positive")
	}

	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	if !isSuperAdmin && collection.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if collection.Status == enum.CollectionStatusCanceled {
		return nil, apperror.NewValidationError("canceled collections cannot receive payments")
	}
	if amount > collection.Outstanding() {
		return nil, apperror.NewValidationError("payment exceeds the outstanding amount")
	}

	collection.Collected += amount
	if collection.Outstanding() <= 0 {
		collection.Status = enum.CollectionStatusCollected
	} else {
		collection.Status = enum.CollectionStatusPartial
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// CancelCollection marks a collection as canceled
func (s *CollectionService) CancelCollection(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	if !isSuperAdmin && collection.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if collection.Status == enum.CollectionStatusCollected {
		return nil, apperror.NewValidationError("fully collected documents cannot be canceled")
	}

	if err := s.collectionRepo.UpdateStatus(ctx, id, enum.CollectionStatusCanceled); err != nil {
		return nil, err
	}
	collection.Status = enum.CollectionStatusCanceled
	return collection, nil
}

// DeleteCollection soft-deletes a collection and its line items
func (s *CollectionService) DeleteCollection(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if collection == nil {
		return apperror.NewNotFoundError("Collection")
	}
	if !isSuperAdmin && collection.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineItemRepo.DeleteByCollectionID(ctx, id); err != nil {
		return err
	}
	return s.collectionRepo.Delete(ctx, id)
}
