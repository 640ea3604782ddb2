package repository

import (
	"context"
	"errors"

	"github.com/serviflow/serviflow-api/internal/domain/entity"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type companyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *gorm.DB) domainRepo.CompanyProfileRepository {
	return &companyProfileRepository{db: db}
}

func (r *companyProfileRepository) Get(ctx context.Context) (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *companyProfileRepository) Upsert(ctx context.Context, profile *entity.CompanyProfile) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(profile).Error
}
