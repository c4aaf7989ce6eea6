package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, tenantID int64, req *domain.MaintenanceReq) (*domain.MaintenanceRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, limit, offset int) ([]domain.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.MaintenanceRequest, error)
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

const maintenanceCols = `id, property_id, tenant_id, title, description,
urgency, status, images, assigned_to, completed_at, admin_notes,
created_at, updated_at`

func scanMaintenance(row pgx.Row) (*domain.MaintenanceRequest, error) {
	var m domain.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Description,
		&m.Urgency, &m.Status, &m.Images, &m.AssignedTo, &m.CompletedAt, &m.AdminNotes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, tenantID int64, req *domain.MaintenanceReq) (*domain.MaintenanceRequest, error) {
	const q = `INSERT INTO maintenance_requests (
		property_id, tenant_id, title, description, urgency, status, images
	) VALUES ($1,$2,$3,$4,$5,'open',$6)
	RETURNING ` + maintenanceCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanMaintenance(r.pool.QueryRow(ctx, q,
		req.PropertyID, tenantID, req.Title, req.Description, req.Urgency, req.Images,
	))
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	const q = `SELECT ` + maintenanceCols + ` FROM maintenance_requests WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m, err := scanMaintenance(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *maintenanceRepository) List(ctx context.Context, limit, offset int) ([]domain.MaintenanceRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + maintenanceCols + ` FROM maintenance_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMaintenance(rows)
}

func (r *maintenanceRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.MaintenanceRequest, error) {
	const q = `SELECT ` + maintenanceCols + ` FROM maintenance_requests WHERE tenant_id=$1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMaintenance(rows)
}

func (r *maintenanceRepository) Update(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.MaintenanceRequest, error) {
	const q = `
		UPDATE maintenance_requests
		SET
			status       = COALESCE($2, status),
			assigned_to  = COALESCE($3, assigned_to),
			admin_notes  = COALESCE($4, admin_notes),
			completed_at = CASE WHEN $2::text = 'completed' THEN now() ELSE completed_at END,
			updated_at   = now()
		WHERE id=$1
		RETURNING ` + maintenanceCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m, err := scanMaintenance(r.pool.QueryRow(ctx, q, id, patch.Status, patch.AssignedTo, patch.AdminNotes))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func collectMaintenance(rows pgx.Rows) ([]domain.MaintenanceRequest, error) {
	var reqs []domain.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *m)
	}
	return reqs, rows.Err()
}
