package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, req *domain.PropertyReq) (*domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, limit, offset int) ([]domain.Property, error)
	ListAvailable(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, id int64, patch *domain.PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

const propertyCols = `id, name, address, city, state, zip_code, property_type,
bedrooms, bathrooms, square_feet, rent_amount, deposit_amount,
is_available, available_date, description, amenities, pets_allowed,
utilities_included, images, floor_plan_url, virtual_tour_url,
latitude, longitude, created_at, updated_at`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.PropertyType,
		&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.RentAmount, &p.DepositAmount,
		&p.IsAvailable, &p.AvailableDate, &p.Description, &p.Amenities, &p.PetsAllowed,
		&p.UtilitiesIncluded, &p.Images, &p.FloorPlanURL, &p.VirtualTourURL,
		&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) Create(ctx context.Context, req *domain.PropertyReq) (*domain.Property, error) {
	const q = `INSERT INTO properties (
		name, address, city, state, zip_code, property_type,
		bedrooms, bathrooms, square_feet, rent_amount, deposit_amount,
		is_available, available_date, description, amenities, pets_allowed,
		utilities_included, images, floor_plan_url, virtual_tour_url,
		latitude, longitude
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	RETURNING ` + propertyCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanProperty(r.pool.QueryRow(ctx, q,
		req.Name, req.Address, req.City, req.State, req.ZipCode, req.PropertyType,
		req.Bedrooms, req.Bathrooms, req.SquareFeet, req.RentAmount, req.DepositAmount,
		req.IsAvailable, req.AvailableDate, req.Description, req.Amenities, req.PetsAllowed,
		req.UtilitiesIncluded, req.Images, req.FloorPlanURL, req.VirtualTourURL,
		req.Latitude, req.Longitude,
	))
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	const q = `SELECT ` + propertyCols + ` FROM properties WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProperty(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *propertyRepository) List(ctx context.Context, limit, offset int) ([]domain.Property, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + propertyCols + ` FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertyRepository) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	const q = `SELECT ` + propertyCols + ` FROM properties WHERE is_available=true ORDER BY rent_amount ASC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertyRepository) Update(ctx context.Context, id int64, patch *domain.PropertyPatch) (*domain.Property, error) {
	const q = `
		UPDATE properties
		SET
			name               = COALESCE($2,  name),
			address            = COALESCE($3,  address),
			city               = COALESCE($4,  city),
			state              = COALESCE($5,  state),
			zip_code           = COALESCE($6,  zip_code),
			property_type      = COALESCE($7,  property_type),
			bedrooms           = COALESCE($8,  bedrooms),
			bathrooms          = COALESCE($9,  bathrooms),
			square_feet        = COALESCE($10, square_feet),
			rent_amount        = COALESCE($11, rent_amount),
			deposit_amount     = COALESCE($12, deposit_amount),
			is_available       = COALESCE($13, is_available),
			available_date     = COALESCE($14, available_date),
			description        = COALESCE($15, description),
			amenities          = COALESCE($16, amenities),
			pets_allowed       = COALESCE($17, pets_allowed),
			utilities_included = COALESCE($18, utilities_included),
			images             = COALESCE($19, images),
			floor_plan_url     = COALESCE($20, floor_plan_url),
			virtual_tour_url   = COALESCE($21, virtual_tour_url),
			latitude           = COALESCE($22, latitude),
			longitude          = COALESCE($23, longitude),
			updated_at         = now()
		WHERE id=$1
		RETURNING ` + propertyCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProperty(r.pool.QueryRow(ctx, q, id,
		patch.Name, patch.Address, patch.City, patch.State, patch.ZipCode, patch.PropertyType,
		patch.Bedrooms, patch.Bathrooms, patch.SquareFeet, patch.RentAmount, patch.DepositAmount,
		patch.IsAvailable, patch.AvailableDate, patch.Description, patch.Amenities, patch.PetsAllowed,
		patch.UtilitiesIncluded, patch.Images, patch.FloorPlanURL, patch.VirtualTourURL,
		patch.Latitude, patch.Longitude,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM properties WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	var props []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}
