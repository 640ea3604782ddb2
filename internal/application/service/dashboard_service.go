package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// DashboardService aggregates the numbers shown on the home screen
type DashboardService struct {
	quotationRepo  repository.QuotationRepository
	collectionRepo repository.CollectionRepository
	clientRepo     repository.ClientRepository
	taskRepo       repository.TaskRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	quotationRepo repository.QuotationRepository,
	collectionRepo repository.CollectionRepository,
	clientRepo repository.ClientRepository,
	taskRepo repository.TaskRepository,
) *DashboardService {
	return &DashboardService{
		quotationRepo:  quotationRepo,
		collectionRepo: collectionRepo,
		clientRepo:     clientRepo,
		taskRepo:       taskRepo,
	}
}

// DashboardStats is the aggregated home screen payload
type DashboardStats struct {
	TotalClients        int64              `json:"total_clients"`
	QuotationsByStatus  map[string]int64   `json:"quotations_by_status"`
	CollectionsByStatus map[string]float64 `json:"collections_by_status"`
	TotalCollected      float64            `json:"total_collected"`
	RecentQuotations    []entity.Quotation `json:"recent_quotations"`
	UpcomingTasks       []entity.Task      `json:"upcoming_tasks"`
}

// GetStats assembles the dashboard. Super admins see company-wide numbers,
// everyone else sees their own.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID, isSuperAdmin bool) (*DashboardStats, error) {
	scopeID := userID
	if isSuperAdmin {
		scopeID = uuid.Nil
	}

	stats := &DashboardStats{
		QuotationsByStatus:  make(map[string]int64),
		CollectionsByStatus: make(map[string]float64),
	}

	_, totalClients, err := s.clientRepo.List(ctx, userID, &pagination.PaginationParams{Page: 1, PerPage: 1}, "", isSuperAdmin)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = totalClients

	for _, status := range []enum.QuotationStatus{
		enum.QuotationStatusDraft,
		enum.QuotationStatusSent,
		enum.QuotationStatusApproved,
		enum.QuotationStatusRejected,
		enum.QuotationStatusExpired,
	} {
		st := status
		params := &repository.QuotationFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
			Status:     &st,
		}
		_, count, err := s.quotationRepo.List(ctx, scopeID, params)
		if err != nil {
			return nil, err
		}
		stats.QuotationsByStatus[status.String()] = count
	}

	collectionTotals, collected, err := s.collectionRepo.TotalsByStatus(ctx, scopeID)
	if err != nil {
		return nil, err
	}
	for status, total := range collectionTotals {
		stats.CollectionsByStatus[status.String()] = total
	}
	stats.TotalCollected = collected

	recentParams := &repository.QuotationFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 5},
	}
	recent, _, err := s.quotationRepo.List(ctx, scopeID, recentParams)
	if err != nil {
		return nil, err
	}
	stats.RecentQuotations = recent

	upcoming, err := s.taskRepo.ListUpcoming(ctx, scopeID, 5)
	if err != nil {
		return nil, err
	}
	stats.UpcomingTasks = upcoming

	return stats, nil
}
