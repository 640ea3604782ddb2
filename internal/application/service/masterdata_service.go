package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
)

// MasterDataService handles the countries, cities and sectors reference data
type MasterDataService struct {
	masterDataRepo repository.MasterDataRepository
}

// NewMasterDataService creates a new master data service
func NewMasterDataService(masterDataRepo repository.MasterDataRepository) *MasterDataService {
	return &MasterDataService{masterDataRepo: masterDataRepo}
}

// ListCountries lists all countries
func (s *MasterDataService) ListCountries(ctx context.Context) ([]entity.Country, error) {
	return s.masterDataRepo.ListCountries(ctx)
}

// CreateCountry creates a new country
func (s *MasterDataService) CreateCountry(ctx context.Context, name, code string) (*entity.Country, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" || code == "" {
		return nil, apperror.NewValidationError("countries need both a name and a code")
	}

	country := &entity.Country{Name: name, Code: code}
	if err := s.masterDataRepo.CreateCountry(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// DeleteCountry deletes a country
func (s *MasterDataService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return s.masterDataRepo.DeleteCountry(ctx, id)
}

// ListCities lists the cities of a country
func (s *MasterDataService) ListCities(ctx context.Context, countryID uuid.UUID) ([]entity.City, error) {
	return s.masterDataRepo.ListCitiesFor(ctx, countryID)
}

// CreateCity creates a new city under a country
func (s *MasterDataService) CreateCity(ctx context.Context, countryID uuid.UUID, name string) (*entity.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewValidationError("cities need a name")
	}

	city := &entity.City{CountryID: countryID, Name: name}
	if err := s.masterDataRepo.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

// DeleteCity deletes a city
func (s *MasterDataService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return s.masterDataRepo.DeleteCity(ctx, id)
}

// ListSectors lists all business sectors
func (s *MasterDataService) ListSectors(ctx context.Context) ([]entity.Sector, error) {
	return s.masterDataRepo.ListSectors(ctx)
}

// CreateSector creates a new business sector
func (s *MasterDataService) CreateSector(ctx context.Context, name string) (*entity.Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewValidationError("sectors need a name")
	}

	sector := &entity.Sector{Name: name}
	if err := s.masterDataRepo.CreateSector(ctx, sector); err != nil {
		return nil, err
	}
	return sector, nil
}

// DeleteSector deletes a sector
func (s *MasterDataService) DeleteSector(ctx context.Context, id uuid.UUID) error {
	return s.masterDataRepo.DeleteSector(ctx, id)
}
