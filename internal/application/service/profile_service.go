package service

import (
	"context"
	"strings"

	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
)

// ProfileService handles the company profile: the issuer data stamped on
// quotations, contracts and cuentas de cobro.
type ProfileService struct {
	profileRepo repository.CompanyProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.CompanyProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns the company profile, or nil when not configured yet
func (s *ProfileService) GetProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	return s.profileRepo.Get(ctx)
}

// UpdateProfileInput represents the company profile payload
type UpdateProfileInput struct {
	Name    string
	TaxID   string
	Phone   string
	Address string
	Email   *string
	LogoRef *string
	Website *string
}

// UpdateProfile creates or replaces the single company profile row. Name and
// tax ID are required; without them the wizard's company step can never pass.
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.CompanyProfile, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.TaxID) == "" {
		return nil, apperror.NewValidationError("the company profile needs both a name and a tax ID")
	}

	profile := &entity.CompanyProfile{
		Name:    input.Name,
		TaxID:   input.TaxID,
		Phone:   input.Phone,
		Address: input.Address,
		Email:   input.Email,
		LogoRef: input.LogoRef,
		Website: input.Website,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
