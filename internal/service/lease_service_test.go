package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

type mockLeaseRepo struct {
	leases   map[int64]*domain.Lease
	failWith error
}

func newMockLeaseRepo(leases ...*domain.Lease) *mockLeaseRepo {
	m := &mockLeaseRepo{leases: make(map[int64]*domain.Lease)}
	for _, l := range leases {
		m.leases[l.ID] = l
	}
	return m
}

func (m *mockLeaseRepo) GetByID(_ context.Context, id int64) (*domain.Lease, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.leases[id], nil
}

func (m *mockLeaseRepo) GetActiveByTenant(_ context.Context, tenantID int64) (*domain.Lease, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, l := range m.leases {
		if l.TenantID == tenantID && l.Status == domain.LeaseActive {
			return l, nil
		}
	}
	return nil, nil
}

func (m *mockLeaseRepo) List(_ context.Context, _, _ int) ([]domain.Lease, error) {
	var out []domain.Lease
	for _, l := range m.leases {
		out = append(out, *l)
	}
	return out, nil
}

func (m *mockLeaseRepo) ListByProperty(_ context.Context, propertyID int64) ([]domain.Lease, error) {
	var out []domain.Lease
	for _, l := range m.leases {
		if l.PropertyID == propertyID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func sampleLease(id, tenantID int64, status domain.LeaseStatus) *domain.Lease {
	return &domain.Lease{
		ID:              id,
		PropertyID:      1,
		TenantID:        tenantID,
		LeaseStartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		LeaseEndDate:    time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:     145000,
		SecurityDeposit: 145000,
		Status:          status,
	}
}

func TestGetTenantLeaseJoinsProperty(t *testing.T) {
	leaseRepo := newMockLeaseRepo(sampleLease(10, 7, domain.LeaseActive))
	propRepo := &mockPropertyRepo{properties: map[int64]*domain.Property{
		1: {ID: 1, Name: "Maple Court Apartments"},
	}}
	svc := NewLeaseService(leaseRepo, propRepo)

	got, err := svc.GetTenantLease(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasActiveLease {
		t.Fatal("expected an active lease")
	}
	if got.Lease == nil || got.Lease.ID != 10 {
		t.Fatalf("lease = %+v, want id 10", got.Lease)
	}
	if got.Property == nil || got.Property.Name != "Maple Court Apartments" {
		t.Fatalf("property = %+v, want Maple Court Apartments", got.Property)
	}
}

func TestGetTenantLeaseNoneActive(t *testing.T) {
	leaseRepo := newMockLeaseRepo(
		sampleLease(10, 7, domain.LeaseExpired),
		sampleLease(11, 7, domain.LeaseTerminated),
	)
	propRepo := &mockPropertyRepo{}
	svc := NewLeaseService(leaseRepo, propRepo)

	got, err := svc.GetTenantLease(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.HasActiveLease {
		t.Fatal("expired and terminated leases must not count as active")
	}
	if got.Lease != nil || got.Property != nil {
		t.Fatalf("inactive result must carry no lease or property, got %+v", got)
	}
}

func TestGetTenantLeaseIgnoresOtherTenants(t *testing.T) {
	leaseRepo := newMockLeaseRepo(sampleLease(10, 8, domain.LeaseActive))
	svc := NewLeaseService(leaseRepo, &mockPropertyRepo{})

	got, err := svc.GetTenantLease(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.HasActiveLease {
		t.Fatal("another tenant's lease must not leak into the dashboard")
	}
}

func TestGetTenantLeaseRepoFailure(t *testing.T) {
	leaseRepo := newMockLeaseRepo()
	leaseRepo.failWith = errors.New("connection refused")
	svc := NewLeaseService(leaseRepo, &mockPropertyRepo{})

	if _, err := svc.GetTenantLease(context.Background(), 7); err == nil {
		t.Fatal("expected error when the lease lookup fails")
	}
}

func TestParseLeaseStatus(t *testing.T) {
	for _, valid := range []string{"active", "expired", "terminated", "pending"} {
		if _, ok := domain.ParseLeaseStatus(valid); !ok {
			t.Errorf("ParseLeaseStatus(%q) rejected a valid status", valid)
		}
	}
	if _, ok := domain.ParseLeaseStatus("renewed"); ok {
		t.Error("ParseLeaseStatus accepted an unknown status")
	}
}
