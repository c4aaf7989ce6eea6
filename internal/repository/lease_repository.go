package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type LeaseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lease, error)
	GetActiveByTenant(ctx context.Context, tenantID int64) (*domain.Lease, error)
	List(ctx context.Context, limit, offset int) ([]domain.Lease, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Lease, error)
}

type leaseRepository struct {
	pool *pgxpool.Pool
}

func NewLeaseRepository(pool *pgxpool.Pool) LeaseRepository {
	return &leaseRepository{pool: pool}
}

const leaseCols = `id, property_id, tenant_id, application_id,
lease_start_date, lease_end_date, monthly_rent, security_deposit,
lease_document_url, status, created_at, updated_at`

func scanLease(row pgx.Row) (*domain.Lease, error) {
	var l domain.Lease
	err := row.Scan(
		&l.ID, &l.PropertyID, &l.TenantID, &l.ApplicationID,
		&l.LeaseStartDate, &l.LeaseEndDate, &l.MonthlyRent, &l.SecurityDeposit,
		&l.LeaseDocumentURL, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaseRepository) GetByID(ctx context.Context, id int64) (*domain.Lease, error) {
	const q = `SELECT ` + leaseCols + ` FROM leases WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	l, err := scanLease(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return l, err
}

func (r *leaseRepository) GetActiveByTenant(ctx context.Context, tenantID int64) (*domain.Lease, error) {
	const q = `SELECT ` + leaseCols + ` FROM leases
		WHERE tenant_id=$1 AND status='active'
		ORDER BY lease_start_date DESC LIMIT 1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	l, err := scanLease(r.pool.QueryRow(ctx, q, tenantID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return l, err
}

func (r *leaseRepository) List(ctx context.Context, limit, offset int) ([]domain.Lease, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + leaseCols + ` FROM leases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeases(rows)
}

func (r *leaseRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Lease, error) {
	const q = `SELECT ` + leaseCols + ` FROM leases WHERE property_id=$1 ORDER BY lease_start_date DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeases(rows)
}

func collectLeases(rows pgx.Rows) ([]domain.Lease, error) {
	var leases []domain.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *l)
	}
	return leases, rows.Err()
}
