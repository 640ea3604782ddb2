package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/pagination"
	"gorm.io/gorm"
)

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) domainRepo.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) GetWithClauses(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Clauses", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) Update(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Contract{}, "id = ?", id).Error
}

func (r *contractRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, status *enum.ContractStatus, skipUserFilter bool) ([]entity.Contract, int64, error) {
	var contracts []entity.Contract
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Contract{})

	if !skipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if search != "" {
		query = query.Where("number ILIKE ? OR title ILIKE ? OR client_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Order("created_at DESC").
		Find(&contracts).Error

	return contracts, total, err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContractStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Contract{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *contractRepository) NextSequence(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Contract{}).Count(&count).Error
	return int(count) + 1, err
}

type contractClauseRepository struct {
	db *gorm.DB
}

// NewContractClauseRepository creates a new contract clause repository
func NewContractClauseRepository(db *gorm.DB) domainRepo.ContractClauseRepository {
	return &contractClauseRepository{db: db}
}

func (r *contractClauseRepository) CreateBatch(ctx context.Context, clauses []entity.ContractClause) error {
	if len(clauses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&clauses).Error
}

func (r *contractClauseRepository) GetByContractID(ctx context.Context, contractID uuid.UUID) ([]entity.ContractClause, error) {
	var clauses []entity.ContractClause
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("position ASC").
		Find(&clauses).Error
	return clauses, err
}

func (r *contractClauseRepository) DeleteByContractID(ctx context.Context, contractID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ContractClause{}, "contract_id = ?", contractID).Error
}

type clauseTemplateRepository struct {
	db *gorm.DB
}

// NewClauseTemplateRepository creates a new clause template repository
func NewClauseTemplateRepository(db *gorm.DB) domainRepo.ClauseTemplateRepository {
	return &clauseTemplateRepository{db: db}
}

func (r *clauseTemplateRepository) Create(ctx context.Context, template *entity.ClauseTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *clauseTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClauseTemplate, error) {
	var template entity.ClauseTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *clauseTemplateRepository) Update(ctx context.Context, template *entity.ClauseTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *clauseTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ClauseTemplate{}, "id = ?", id).Error
}

func (r *clauseTemplateRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.ClauseTemplate, int64, error) {
	var templates []entity.ClauseTemplate
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ClauseTemplate{})

	if !skipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("title ASC").
		Find(&templates).Error

	return templates, total, err
}
