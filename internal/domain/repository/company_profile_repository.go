package repository

import (
	"context"

	"github.com/serviflow/serviflow-api/internal/domain/entity"
)

// CompanyProfileRepository defines access to the single issuer profile row.
// Get returns nil when the profile has not been configured yet.
type CompanyProfileRepository interface {
	Get(ctx context.Context) (*entity.CompanyProfile, error)
	Upsert(ctx context.Context, profile *entity.CompanyProfile) error
}
