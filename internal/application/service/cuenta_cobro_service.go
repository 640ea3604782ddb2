package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/draft"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

// CuentaCobroService handles cuentas de cobro: simple charge accounts for
// services rendered over a period.
type CuentaCobroService struct {
	cuentaRepo   repository.CuentaCobroRepository
	lineItemRepo repository.CuentaCobroLineItemRepository
	clientRepo   repository.ClientRepository
}

// NewCuentaCobroService creates a new cuenta de cobro service
func NewCuentaCobroService(
	cuentaRepo repository.CuentaCobroRepository,
	lineItemRepo repository.CuentaCobroLineItemRepository,
	clientRepo repository.ClientRepository,
) *CuentaCobroService {
	return &CuentaCobroService{
		cuentaRepo:   cuentaRepo,
		lineItemRepo: lineItemRepo,
		clientRepo:   clientRepo,
	}
}

// CreateCuentaCobroInput represents the input for creating a cuenta de cobro
type CreateCuentaCobroInput struct {
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	Concept     string
	Items       []CollectionItemInput
}

// CreateCuentaCobro creates a cuenta de cobro with derived totals
func (s *CuentaCobroService) CreateCuentaCobro(ctx context.Context, input *CreateCuentaCobroInput) (*entity.CuentaCobro, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("a cuenta de cobro needs at least one line item")
	}
	if input.PeriodEnd.Before(input.PeriodStart) {
		return nil, apperror.NewValidationError("the billing period end must not precede its start")
	}

	seq, err := s.cuentaRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

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

	cuenta := &entity.CuentaCobro{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		Number:      utils.FormatDocumentNumber(utils.CuentaCobroPrefix, seq),
		Date:        input.Date,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		ClientName:  clientName,
		Concept:     input.Concept,
		Subtotal:    totals.Subtotal,
		TaxTotal:    totals.TaxTotal,
		GrandTotal:  totals.GrandTotal,
	}

	if err := s.cuentaRepo.Create(ctx, cuenta); err != nil {
		return nil, err
	}

	items := make([]entity.CuentaCobroLineItem, 0, len(lines))
	for i, li := range lines {
		items = append(items, entity.CuentaCobroLineItem{
			CuentaCobroID:  cuenta.ID,
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

	return s.cuentaRepo.GetWithItems(ctx, cuenta.ID)
}

// GetCuentaCobro retrieves a cuenta de cobro with its line items
func (s *CuentaCobroService) GetCuentaCobro(ctx context.Context, id uuid.UUID) (*entity.CuentaCobro, error) {
	cuenta, err := s.cuentaRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, apperror.NewNotFoundError("Cuenta de cobro")
	}
	return cuenta, nil
}

// ListCuentasCobro lists cuentas de cobro. If isSuperAdmin is true, returns all.
func (s *CuentaCobroService) ListCuentasCobro(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, isSuperAdmin bool) (*pagination.PaginatedResult[entity.CuentaCobro], error) {
	cuentas, total, err := s.cuentaRepo.List(ctx, userID, params, search, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(cuentas, pag), nil
}

// MarkPaid toggles the paid flag on a cuenta de cobro
func (s *CuentaCobroService) MarkPaid(ctx context.Context, userID, id uuid.UUID, paid bool, isSuperAdmin bool) (*entity.CuentaCobro, error) {
	cuenta, err := s.cuentaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, apperror.NewNotFoundError("Cuenta de cobro")
	}
	if !isSuperAdmin && cuenta.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	cuenta.Paid = paid
	if err := s.cuentaRepo.Update(ctx, cuenta); err != nil {
		return nil, err
	}
	return cuenta, nil
}

// DeleteCuentaCobro soft-deletes a cuenta de cobro and its line items
func (s *CuentaCobroService) DeleteCuentaCobro(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	cuenta, err := s.cuentaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cuenta == nil {
		return apperror.NewNotFoundError("Cuenta de cobro")
	}
	if !isSuperAdmin && cuenta.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineItemRepo.DeleteByCuentaCobroID(ctx, id); err != nil {
		return err
	}
	return s.cuentaRepo.Delete(ctx, id)
}
