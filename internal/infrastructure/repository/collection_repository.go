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

type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) domainRepo.CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	var collection entity.Collection
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &collection, err
}

func (r *collectionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	var collection entity.Collection
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Quotation").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &collection, err
}

func (r *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Collection{}, "id = ?", id).Error
}

func (r *collectionRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.CollectionFilterParams) ([]entity.Collection, int64, error) {
	var collections []entity.Collection
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Collection{})

	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("number ILIKE ? OR client_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order("created_at DESC").
		Find(&collections).Error

	return collections, total, err
}

func (r *collectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.CollectionStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Collection{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *collectionRepository) NextSequence(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Collection{}).Count(&count).Error
	return int(count) + 1, err
}

func (r *collectionRepository) TotalsByStatus(ctx context.Context, userID uuid.UUID) (map[enum.CollectionStatus]float64, float64, error) {
	type row struct {
		Status     enum.CollectionStatus
		GrandTotal float64
		Collected  float64
	}

	query := r.db.WithContext(ctx).Model(&entity.Collection{}).
		Select("status, COALESCE(SUM(grand_total), 0) as grand_total, COALESCE(SUM(collected), 0) as collected").
		Group("status")
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	var rows []row
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	totals := make(map[enum.CollectionStatus]float64, len(rows))
	var collected float64
	for _, r := range rows {
		totals[r.Status] = r.GrandTotal
		collected += r.Collected
	}
	return totals, collected, nil
}

type collectionLineItemRepository struct {
	db *gorm.DB
}

// NewCollectionLineItemRepository creates a new collection line item repository
func NewCollectionLineItemRepository(db *gorm.DB) domainRepo.CollectionLineItemRepository {
	return &collectionLineItemRepository{db: db}
}

func (r *collectionLineItemRepository) CreateBatch(ctx context.Context, items []entity.CollectionLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *collectionLineItemRepository) GetByCollectionID(ctx context.Context, collectionID uuid.UUID) ([]entity.CollectionLineItem, error) {
	var items []entity.CollectionLineItem
	err := r.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *collectionLineItemRepository) DeleteByCollectionID(ctx context.Context, collectionID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CollectionLineItem{}, "collection_id = ?", collectionID).Error
}

type cuentaCobroRepository struct {
	db *gorm.DB
}

// NewCuentaCobroRepository creates a new cuenta de cobro repository
func NewCuentaCobroRepository(db *gorm.DB) domainRepo.CuentaCobroRepository {
	return &cuentaCobroRepository{db: db}
}

func (r *cuentaCobroRepository) Create(ctx context.Context, cuenta *entity.CuentaCobro) error {
	return r.db.WithContext(ctx).Create(cuenta).Error
}

func (r *cuentaCobroRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CuentaCobro, error) {
	var cuenta entity.CuentaCobro
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&cuenta, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cuenta, err
}

func (r *cuentaCobroRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CuentaCobro, error) {
	var cuenta entity.CuentaCobro
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&cuenta, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cuenta, err
}

func (r *cuentaCobroRepository) Update(ctx context.Context, cuenta *entity.CuentaCobro) error {
	return r.db.WithContext(ctx).Save(cuenta).Error
}

func (r *cuentaCobroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CuentaCobro{}, "id = ?", id).Error
}

func (r *cuentaCobroRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.CuentaCobro, int64, error) {
	var cuentas []entity.CuentaCobro
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CuentaCobro{})

	if !skipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if search != "" {
		query = query.Where("number ILIKE ? OR client_name ILIKE ? OR concept ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Order("created_at DESC").
		Find(&cuentas).Error

	return cuentas, total, err
}

func (r *cuentaCobroRepository) NextSequence(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.CuentaCobro{}).Count(&count).Error
	return int(count) + 1, err
}

type cuentaCobroLineItemRepository struct {
	db *gorm.DB
}

// NewCuentaCobroLineItemRepository creates a new cuenta de cobro line item repository
func NewCuentaCobroLineItemRepository(db *gorm.DB) domainRepo.CuentaCobroLineItemRepository {
	return &cuentaCobroLineItemRepository{db: db}
}

func (r *cuentaCobroLineItemRepository) CreateBatch(ctx context.Context, items []entity.CuentaCobroLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *cuentaCobroLineItemRepository) DeleteByCuentaCobroID(ctx context.Context, cuentaCobroID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CuentaCobroLineItem{}, "cuenta_cobro_id = ?", cuentaCobroID).Error
}
