package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type TourRepository interface {
	Create(ctx context.Context, req *domain.TourBookingReq, numberOfPeople int) (*domain.TourBooking, error)
	GetByID(ctx context.Context, id int64) (*domain.TourBooking, error)
	List(ctx context.Context, limit, offset int) ([]domain.TourBooking, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.TourBooking, error)
	UpdateStatus(ctx context.Context, id int64, patch domain.TourStatusPatch, confirmedBy int64) (*domain.TourBooking, error)
	ListDueForReminder(ctx context.Context, tourDate string) ([]domain.TourBooking, error)
	MarkReminderSent(ctx context.Context, id int64) (bool, error)
}

type tourRepository struct {
	pool *pgxpool.Pool
}

func NewTourRepository(pool *pgxpool.Pool) TourRepository {
	return &tourRepository{pool: pool}
}

const tourCols = `id, property_id, full_name, email, phone,
tour_date, tour_time, number_of_people, message,
status, reminder_sent, confirmed_by, confirmed_at, admin_notes,
created_at, updated_at`

func scanTour(row pgx.Row) (*domain.TourBooking, error) {
	var t domain.TourBooking
	err := row.Scan(
		&t.ID, &t.PropertyID, &t.FullName, &t.Email, &t.Phone,
		&t.TourDate, &t.TourTime, &t.NumberOfPeople, &t.Message,
		&t.Status, &t.ReminderSent, &t.ConfirmedBy, &t.ConfirmedAt, &t.AdminNotes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tourRepository) Create(ctx context.Context, req *domain.TourBookingReq, numberOfPeople int) (*domain.TourBooking, error) {
	const q = `INSERT INTO tour_bookings (
		property_id, full_name, email, phone,
		tour_date, tour_time, number_of_people, message,
		status, reminder_sent
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'pending',false)
	RETURNING ` + tourCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanTour(r.pool.QueryRow(ctx, q,
		req.PropertyID, req.FullName, req.Email, req.Phone,
		req.TourDate, req.TourTime, numberOfPeople, req.Message,
	))
}

func (r *tourRepository) GetByID(ctx context.Context, id int64) (*domain.TourBooking, error) {
	const q = `SELECT ` + tourCols + ` FROM tour_bookings WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	t, err := scanTour(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (r *tourRepository) List(ctx context.Context, limit, offset int) ([]domain.TourBooking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + tourCols + ` FROM tour_bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTours(rows)
}

func (r *tourRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.TourBooking, error) {
	const q = `SELECT ` + tourCols + ` FROM tour_bookings WHERE property_id=$1 ORDER BY tour_date DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTours(rows)
}

func (r *tourRepository) UpdateStatus(ctx context.Context, id int64, patch domain.TourStatusPatch, confirmedBy int64) (*domain.TourBooking, error) {
	const q = `
		UPDATE tour_bookings
		SET
			status       = $2,
			admin_notes  = COALESCE($3, admin_notes),
			confirmed_by = $4,
			confirmed_at = now(),
			updated_at   = now()
		WHERE id=$1
		RETURNING ` + tourCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	t, err := scanTour(r.pool.QueryRow(ctx, q, id, patch.Status, patch.AdminNotes, confirmedBy))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return t, err
}

// ListDueForReminder selects bookings on the given calendar date that are
// still pending and have not been reminded. Confirmed bookings are
// intentionally not selected.
func (r *tourRepository) ListDueForReminder(ctx context.Context, tourDate string) ([]domain.TourBooking, error) {
	const q = `SELECT ` + tourCols + ` FROM tour_bookings
		WHERE tour_date=$1 AND reminder_sent=false AND status='pending'
		ORDER BY tour_time ASC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, tourDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTours(rows)
}

// MarkReminderSent flips reminder_sent false->true. The WHERE clause keeps
// the flag from regressing and makes the flip observable exactly once.
func (r *tourRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	const q = `UPDATE tour_bookings SET reminder_sent=true, updated_at=now()
		WHERE id=$1 AND reminder_sent=false`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func collectTours(rows pgx.Rows) ([]domain.TourBooking, error) {
	var tours []domain.TourBooking
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, *t)
	}
	return tours, rows.Err()
}
