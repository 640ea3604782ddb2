package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/email"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// QuotationService handles persisted quotations. Drafting happens in
// DraftService; this service covers everything after a draft is saved.
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	lineItemRepo  repository.QuotationLineItemRepository
	profileRepo   repository.CompanyProfileRepository
	emailService  *email.EmailService
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	lineItemRepo repository.QuotationLineItemRepository,
	profileRepo repository.CompanyProfileRepository,
	emailService *email.EmailService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		lineItemRepo:  lineItemRepo,
		profileRepo:   profileRepo,
		emailService:  emailService,
	}
}

// GetQuotation retrieves a quotation with its line items
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.QuotationStatus
	ClientID     *uuid.UUID
	SortBy       string
	SortOrder    string
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	quotations, total, err := s.quotationRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// ChangeStatus updates a quotation's status. Any transition is allowed; the
// status field records what happened, it does not gate it.
func (s *QuotationService) ChangeStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuotationStatus, isSuperAdmin bool) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if !status.IsValid() {
		return nil, apperror.NewValidationError("invalid quotation status")
	}

	if err := s.quotationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quotation.Status = status
	return quotation, nil
}

// SendQuotation emails an already persisted quotation to a recipient.
func (s *QuotationService) SendQuotation(ctx context.Context, userID, id uuid.UUID, toEmail string, isSuperAdmin bool) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if toEmail == "" {
		if quotation.Client == nil || quotation.Client.Email == nil || *quotation.Client.Email == "" {
			return nil, apperror.NewValidationError("the client has no email address on file")
		}
		toEmail = *quotation.Client.Email
	}

	issuerName := ""
	if profile, err := s.profileRepo.Get(ctx); err != nil {
		return nil, err
	} else if profile != nil {
		issuerName = profile.Name
	}

	view := buildQuotationView(issuerName, quotation)
	if err := s.emailService.SendQuotation(toEmail, view); err != nil {
		return nil, apperror.NewDependencyError("email delivery failed")
	}

	now := time.Now()
	quotation.Status = enum.QuotationStatusSent
	quotation.SentAt = &now
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	return quotation, nil
}

// DeleteQuotation soft-deletes a quotation and its line items
func (s *QuotationService) DeleteQuotation(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineItemRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}
	return s.quotationRepo.Delete(ctx, id)
}

// ExpireOverdue marks sent quotations whose expiry date has passed as
// expired. Intended to run periodically.
func (s *QuotationService) ExpireOverdue(ctx context.Context) (int, error) {
	sent := enum.QuotationStatusSent
	params := &repository.QuotationFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		Status:     &sent,
	}

	quotations, _, err := s.quotationRepo.List(ctx, uuid.Nil, params)
	if err != nil {
		return 0, err
	}

	expired := 0
	now := time.Now()
	for i := range quotations {
		if quotations[i].ExpiryDate.Before(now) {
			if err := s.quotationRepo.UpdateStatus(ctx, quotations[i].ID, enum.QuotationStatusExpired); err != nil {
				return expired, err
			}
			expired++
		}
	}
	return expired, nil
}
