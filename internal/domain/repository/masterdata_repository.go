package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
)

// MasterDataRepository defines read-mostly access to the reference tables
// consumed by the client step of the wizard and the client forms.
type MasterDataRepository interface {
	ListCountries(ctx context.Context) ([]entity.Country, error)
	CreateCountry(ctx context.Context, country *entity.Country) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	ListCitiesFor(ctx context.Context, countryID uuid.UUID) ([]entity.City, error)
	CreateCity(ctx context.Context, city *entity.City) error
	DeleteCity(ctx context.Context, id uuid.UUID) error

	ListSectors(ctx context.Context) ([]entity.Sector, error)
	CreateSector(ctx context.Context, sector *entity.Sector) error
	DeleteSector(ctx context.Context, id uuid.UUID) error
}
