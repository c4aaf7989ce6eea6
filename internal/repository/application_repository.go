package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kcoproperties/leasing-api/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, req *domain.ApplicationReq) (*domain.Application, error)
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	List(ctx context.Context, limit, offset int) ([]domain.Application, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, patch domain.ApplicationStatusPatch, reviewedBy int64) (*domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationCols = `id, property_id, user_id, status,
full_name, email, phone, date_of_birth, ssn_last4,
current_address, move_in_date, move_out_date, reason_for_leaving,
previous_landlord_name, previous_landlord_phone,
employer_name, position, monthly_income, supervisor_contact,
additional_occupants, pets, vehicles, emergency_contact_name, emergency_contact_phone,
consent_given, signature_data, signature_date, id_document_url, income_proof_url,
application_fee_paid, application_fee_amount, payment_transaction_id,
admin_notes, reviewed_by, reviewed_at,
created_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID, &a.PropertyID, &a.UserID, &a.Status,
		&a.FullName, &a.Email, &a.Phone, &a.DateOfBirth, &a.SSNLast4,
		&a.CurrentAddress, &a.MoveInDate, &a.MoveOutDate, &a.ReasonForLeaving,
		&a.PreviousLandlordName, &a.PreviousLandlordPhone,
		&a.EmployerName, &a.Position, &a.MonthlyIncome, &a.SupervisorContact,
		&a.AdditionalOccupants, &a.Pets, &a.Vehicles, &a.EmergencyContactName, &a.EmergencyContactPhone,
		&a.ConsentGiven, &a.SignatureData, &a.SignatureDate, &a.IDDocumentURL, &a.IncomeProofURL,
		&a.ApplicationFeePaid, &a.ApplicationFeeAmount, &a.PaymentTransactionID,
		&a.AdminNotes, &a.ReviewedBy, &a.ReviewedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) Create(ctx context.Context, req *domain.ApplicationReq) (*domain.Application, error) {
	const q = `INSERT INTO applications (
		property_id, user_id, status,
		full_name, email, phone, date_of_birth, ssn_last4,
		current_address, move_in_date, move_out_date, reason_for_leaving,
		previous_landlord_name, previous_landlord_phone,
		employer_name, position, monthly_income, supervisor_contact,
		additional_occupants, pets, vehicles, emergency_contact_name, emergency_contact_phone,
		consent_given, signature_data, signature_date, id_document_url, income_proof_url
	) VALUES ($1,$2,'pending',$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
	RETURNING ` + applicationCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanApplication(r.pool.QueryRow(ctx, q,
		req.PropertyID, req.UserID,
		req.FullName, req.Email, req.Phone, req.DateOfBirth, req.SSNLast4,
		req.CurrentAddress, req.MoveInDate, req.MoveOutDate, req.ReasonForLeaving,
		req.PreviousLandlordName, req.PreviousLandlordPhone,
		req.EmployerName, req.Position, req.MonthlyIncome, req.SupervisorContact,
		req.AdditionalOccupants, req.Pets, req.Vehicles, req.EmergencyContactName, req.EmergencyContactPhone,
		req.ConsentGiven, req.SignatureData, req.SignatureDate, req.IDDocumentURL, req.IncomeProofURL,
	))
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	const q = `SELECT ` + applicationCols + ` FROM applications WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	a, err := scanApplication(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *applicationRepository) List(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + applicationCols + ` FROM applications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Application, error) {
	const q = `SELECT ` + applicationCols + ` FROM applications WHERE property_id=$1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, patch domain.ApplicationStatusPatch, reviewedBy int64) (*domain.Application, error) {
	const q = `
		UPDATE applications
		SET
			status      = $2,
			admin_notes = COALESCE($3, admin_notes),
			reviewed_by = $4,
			reviewed_at = now(),
			updated_at  = now()
		WHERE id=$1
		RETURNING ` + applicationCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	a, err := scanApplication(r.pool.QueryRow(ctx, q, id, patch.Status, patch.AdminNotes, reviewedBy))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}
