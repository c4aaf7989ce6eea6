package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, req *domain.ContactReq) (*domain.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.ContactMessage, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactCols = `id, name, email, phone, subject, message, status, created_at`

func scanContact(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contactRepository) Create(ctx context.Context, req *domain.ContactReq) (*domain.ContactMessage, error) {
	const q = `INSERT INTO contact_messages (name, email, phone, subject, message, status)
		VALUES ($1,$2,$3,$4,$5,'new')
		RETURNING ` + contactCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanContact(r.pool.QueryRow(ctx, q, req.Name, req.Email, req.Phone, req.Subject, req.Message))
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	const q = `SELECT ` + contactCols + ` FROM contact_messages WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m, err := scanContact(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *contactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + contactCols + ` FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.ContactMessage, error) {
	const q = `UPDATE contact_messages SET status=$2 WHERE id=$1 RETURNING ` + contactCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m, err := scanContact(r.pool.QueryRow(ctx, q, id, status))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}
