package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type masterDataRepository struct {
	db *gorm.DB
}

// NewMasterDataRepository creates a new master data repository
func NewMasterDataRepository(db *gorm.DB) domainRepo.MasterDataRepository {
	return &masterDataRepository{db: db}
}

func (r *masterDataRepository) ListCountries(ctx context.Context) ([]entity.Country, error) {
	var countries []entity.Country
	err := r.db.WithContext(ctx).Order("name ASC").Find(&countries).Error
	return countries, err
}

func (r *masterDataRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *masterDataRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Country{}, "id = ?", id).Error
}

func (r *masterDataRepository) ListCitiesFor(ctx context.Context, countryID uuid.UUID) ([]entity.City, error) {
	var cities []entity.City
	err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name ASC").
		Find(&cities).Error
	return cities, err
}

func (r *masterDataRepository) CreateCity(ctx context.Context, city *entity.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *masterDataRepository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.City{}, "id = ?", id).Error
}

func (r *masterDataRepository) ListSectors(ctx context.Context) ([]entity.Sector, error) {
	var sectors []entity.Sector
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sectors).Error
	return sectors, err
}

func (r *masterDataRepository) CreateSector(ctx context.Context, sector *entity.Sector) error {
	return r.db.WithContext(ctx).Create(sector).Error
}

func (r *masterDataRepository) DeleteSector(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sector{}, "id = ?", id).Error
}
