package service

import (
	"context"
	"fmt"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/repository"
)

type LeaseService interface {
	GetLease(ctx context.Context, id int64) (*domain.Lease, error)
	GetTenantLease(ctx context.Context, tenantID int64) (*domain.TenantLease, error)
	ListLeases(ctx context.Context, limit, offset int) ([]domain.Lease, error)
	ListLeasesByProperty(ctx context.Context, propertyID int64) ([]domain.Lease, error)
}

type leaseService struct {
	leaseRepo    repository.LeaseRepository
	propertyRepo repository.PropertyRepository
}

func NewLeaseService(leaseRepo repository.LeaseRepository, propertyRepo repository.PropertyRepository) LeaseService {
	return &leaseService{leaseRepo: leaseRepo, propertyRepo: propertyRepo}
}

func (s *leaseService) GetLease(ctx context.Context, id int64) (*domain.Lease, error) {
	return s.leaseRepo.GetByID(ctx, id)
}

// GetTenantLease resolves the tenant's current active lease and joins the
// property it covers. A tenant with no active lease gets
// has_active_lease=false rather than an error.
func (s *leaseService) GetTenantLease(ctx context.Context, tenantID int64) (*domain.TenantLease, error) {
	lease, err := s.leaseRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active lease: %w", err)
	}
	if lease == nil {
		return &domain.TenantLease{HasActiveLease: false}, nil
	}

	property, err := s.propertyRepo.GetByID(ctx, lease.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leased property: %w", err)
	}

	return &domain.TenantLease{
		HasActiveLease: true,
		Lease:          lease,
		Property:       property,
	}, nil
}

func (s *leaseService) ListLeases(ctx context.Context, limit, offset int) ([]domain.Lease, error) {
	return s.leaseRepo.List(ctx, limit, offset)
}

func (s *leaseService) ListLeasesByProperty(ctx context.Context, propertyID int64) ([]domain.Lease, error) {
	return s.leaseRepo.ListByProperty(ctx, propertyID)
}
