package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type UnitRepository interface {
	Create(ctx context.Context, req *domain.UnitReq) (*domain.Unit, error)
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	ListAvailableByProperty(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	Update(ctx context.Context, id int64, patch *domain.UnitPatch) (*domain.Unit, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type unitRepository struct {
	pool *pgxpool.Pool
}

func NewUnitRepository(pool *pgxpool.Pool) UnitRepository {
	return &unitRepository{pool: pool}
}

const unitCols = `id, property_id, unit_number, floor, bedrooms, bathrooms,
square_feet, rent_amount, deposit_amount, is_available, available_date,
current_tenant_id, lease_end_date, amenities, images, floor_plan_url,
created_at, updated_at`

func scanUnit(row pgx.Row) (*domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.Floor, &u.Bedrooms, &u.Bathrooms,
		&u.SquareFeet, &u.RentAmount, &u.DepositAmount, &u.IsAvailable, &u.AvailableDate,
		&u.CurrentTenantID, &u.LeaseEndDate, &u.Amenities, &u.Images, &u.FloorPlanURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unitRepository) Create(ctx context.Context, req *domain.UnitReq) (*domain.Unit, error) {
	const q = `INSERT INTO units (
		property_id, unit_number, floor, bedrooms, bathrooms,
		square_feet, rent_amount, deposit_amount, is_available, available_date,
		amenities, images, floor_plan_url
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,COALESCE($9,true),$10,$11,$12,$13)
	RETURNING ` + unitCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanUnit(r.pool.QueryRow(ctx, q,
		req.PropertyID, req.UnitNumber, req.Floor, req.Bedrooms, req.Bathrooms,
		req.SquareFeet, req.RentAmount, req.DepositAmount, req.IsAvailable, req.AvailableDate,
		req.Amenities, req.Images, req.FloorPlanURL,
	))
}

func (r *unitRepository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	const q = `SELECT ` + unitCols + ` FROM units WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUnit(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	const q = `SELECT ` + unitCols + ` FROM units WHERE property_id=$1 ORDER BY unit_number ASC`
	return r.listUnits(ctx, q, propertyID)
}

func (r *unitRepository) ListAvailableByProperty(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	const q = `SELECT ` + unitCols + ` FROM units WHERE property_id=$1 AND is_available=true ORDER BY unit_number ASC`
	return r.listUnits(ctx, q, propertyID)
}

func (r *unitRepository) listUnits(ctx context.Context, q string, propertyID int64) ([]domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, *u)
	}
	return units, rows.Err()
}

func (r *unitRepository) Update(ctx context.Context, id int64, patch *domain.UnitPatch) (*domain.Unit, error) {
	const q = `
		UPDATE units
		SET
			unit_number       = COALESCE($2,  unit_number),
			floor             = COALESCE($3,  floor),
			bedrooms          = COALESCE($4,  bedrooms),
			bathrooms         = COALESCE($5,  bathrooms),
			square_feet       = COALESCE($6,  square_feet),
			rent_amount       = COALESCE($7,  rent_amount),
			deposit_amount    = COALESCE($8,  deposit_amount),
			is_available      = COALESCE($9,  is_available),
			available_date    = COALESCE($10, available_date),
			current_tenant_id = COALESCE($11, current_tenant_id),
			lease_end_date    = COALESCE($12, lease_end_date),
			amenities         = COALESCE($13, amenities),
			images            = COALESCE($14, images),
			floor_plan_url    = COALESCE($15, floor_plan_url),
			updated_at        = now()
		WHERE id=$1
		RETURNING ` + unitCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUnit(r.pool.QueryRow(ctx, q, id,
		patch.UnitNumber, patch.Floor, patch.Bedrooms, patch.Bathrooms,
		patch.SquareFeet, patch.RentAmount, patch.DepositAmount,
		patch.IsAvailable, patch.AvailableDate, patch.CurrentTenantID, patch.LeaseEndDate,
		patch.Amenities, patch.Images, patch.FloorPlanURL,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *unitRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM units WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
