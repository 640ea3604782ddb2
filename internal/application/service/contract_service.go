package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/pagination"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

// ContractService assembles service contracts from ordered clause templates.
// Each clause body is copied at assembly time, so editing a template later
// never rewrites an existing contract.
type ContractService struct {
	contractRepo repository.ContractRepository
	clauseRepo   repository.ContractClauseRepository
	templateRepo repository.ClauseTemplateRepository
	clientRepo   repository.ClientRepository
	profileRepo  repository.CompanyProfileRepository
}

// NewContractService creates a new contract service
func NewContractService(
	contractRepo repository.ContractRepository,
	clauseRepo repository.ContractClauseRepository,
	templateRepo repository.ClauseTemplateRepository,
	clientRepo repository.ClientRepository,
	profileRepo repository.CompanyProfileRepository,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		clauseRepo:   clauseRepo,
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		profileRepo:  profileRepo,
	}
}

// CreateClauseTemplateInput represents the create clause template input
type CreateClauseTemplateInput struct {
	UserID uuid.UUID
	Title  string
	Body   string
}

// CreateClauseTemplate creates a reusable clause template
func (s *ContractService) CreateClauseTemplate(ctx context.Context, input *CreateClauseTemplateInput) (*entity.ClauseTemplate, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, apperror.NewValidationError("clause templates need both a title and a body")
	}

	template := &entity.ClauseTemplate{
		UserID: input.UserID,
		Title:  input.Title,
		Body:   input.Body,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// GetClauseTemplate retrieves a clause template by ID
func (s *ContractService) GetClauseTemplate(ctx context.Context, id uuid.UUID) (*entity.ClauseTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Clause template")
	}
	return template, nil
}

// ListClauseTemplates lists clause templates
func (s *ContractService) ListClauseTemplates(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, isSuperAdmin bool) (*pagination.PaginatedResult[entity.ClauseTemplate], error) {
	templates, total, err := s.templateRepo.List(ctx, userID, params, search, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(templates, pag), nil
}

// UpdateClauseTemplateInput represents the update clause template input
type UpdateClauseTemplateInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	IsSuperAdmin bool
	Title        *string
	Body         *string
}

// UpdateClauseTemplate updates a clause template. Contracts already assembled
// from it keep their copied clause text.
func (s *ContractService) UpdateClauseTemplate(ctx context.Context, input *UpdateClauseTemplateInput) (*entity.ClauseTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Clause template")
	}
	if !input.IsSuperAdmin && template.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Title != nil {
		template.Title = *input.Title
	}
	if input.Body != nil {
		template.Body = *input.Body
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteClauseTemplate soft-deletes a clause template
func (s *ContractService) DeleteClauseTemplate(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Clause template")
	}
	if !isSuperAdmin && template.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.templateRepo.Delete(ctx, id)
}

// CreateContractInput represents the input for assembling a contract
type CreateContractInput struct {
	UserID       uuid.UUID
	ClientID     *uuid.UUID
	Title        string
	StartDate    time.Time
	EndDate      *time.Time
	Amount       float64
	TemplateIDs  []uuid.UUID
	Placeholders map[string]string
}

// CreateContract assembles a contract from the given clause templates in
// order. {{placeholder}} tokens in each clause body are substituted from the
// provided values plus a built-in set derived from the contract itself.
func (s *ContractService) CreateContract(ctx context.Context, input *CreateContractInput) (*entity.Contract, error) {
	if len(input.TemplateIDs) == 0 {
		return nil, apperror.NewValidationError("a contract needs at least one clause")
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewValidationError("the contract end date must not precede its start date")
	}

	seq, err := s.contractRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}
	number := utils.FormatDocumentNumber(utils.ContractPrefix, seq)

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

	values := s.placeholderValues(ctx, input, number, clientName)
	replacer := newPlaceholderReplacer(values)

	clauses := make([]entity.ContractClause, 0, len(input.TemplateIDs))
	var body strings.Builder
	for i, templateID := range input.TemplateIDs {
		template, err := s.templateRepo.GetByID(ctx, templateID)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, apperror.NewNotFoundError("Clause template")
		}

		text := replacer.Replace(template.Body)
		clauses = append(clauses, entity.ContractClause{
			TemplateID: &template.ID,
			Position:   i + 1,
			Title:      template.Title,
			Body:       text,
		})

		fmt.Fprintf(&body, "%d. %s\n\n%s\n\n", i+1, template.Title, text)
	}

	contract := &entity.Contract{
		UserID:     input.UserID,
		ClientID:   input.ClientID,
		Number:     number,
		Title:      input.Title,
		ClientName: clientName,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Amount:     input.Amount,
		Body:       strings.TrimRight(body.String(), "\n"),
		Status:     enum.ContractStatusDraft,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	for i := range clauses {
		clauses[i].ContractID = contract.ID
	}
	if err := s.clauseRepo.CreateBatch(ctx, clauses); err != nil {
		return nil, err
	}

	return s.contractRepo.GetWithClauses(ctx, contract.ID)
}

// placeholderValues merges caller-provided placeholder values with the
// built-in ones. Caller values win on collision.
func (s *ContractService) placeholderValues(ctx context.Context, input *CreateContractInput, number, clientName string) map[string]string {
	values := map[string]string{
		"contract_number": number,
		"contract_title":  input.Title,
		"client_name":     clientName,
		"start_date":      input.StartDate.Format("2006-01-02"),
		"amount":          fmt.Sprintf("%.2f", input.Amount),
	}
	if input.EndDate != nil {
		values["end_date"] = input.EndDate.Format("2006-01-02")
	}
	if profile, err := s.profileRepo.Get(ctx); err == nil && profile != nil {
		values["company_name"] = profile.Name
		values["company_tax_id"] = profile.TaxID
	}
	for k, v := range input.Placeholders {
		values[k] = v
	}
	return values
}

func newPlaceholderReplacer(values map[string]string) *strings.Replacer {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...)
}

// GetContract retrieves a contract with its clauses
func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetWithClauses(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}
	return contract, nil
}

// ListContracts lists contracts with filtering
func (s *ContractService) ListContracts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, status *enum.ContractStatus, isSuperAdmin bool) (*pagination.PaginatedResult[entity.Contract], error) {
	contracts, total, err := s.contractRepo.List(ctx, userID, params, search, status, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(contracts, pag), nil
}

// ChangeContractStatus moves a contract between draft, active and terminated.
// Terminated is final.
func (s *ContractService) ChangeContractStatus(ctx context.Context, userID, id uuid.UUID, status enum.ContractStatus, isSuperAdmin bool) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}
	if !isSuperAdmin && contract.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if contract.Status == enum.ContractStatusTerminated {
		return nil, apperror.NewValidationError("terminated contracts cannot change status")
	}

	if err := s.contractRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	contract.Status = status
	return contract, nil
}

// DeleteContract soft-deletes a contract and its clauses
func (s *ContractService) DeleteContract(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return apperror.NewNotFoundError("Contract")
	}
	if !isSuperAdmin && contract.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.clauseRepo.DeleteByContractID(ctx, id); err != nil {
		return err
	}
	return s.contractRepo.Delete(ctx, id)
}
