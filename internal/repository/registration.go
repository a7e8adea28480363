package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

const registrationColumns = `id, user_id, user_email, bootcamp_id, bootcamp_name,
       schedule, start_date, payment_plan, status, payment_status,
       notes, version, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var r domain.Registration
	err := row.Scan(
		&r.ID, &r.UserID, &r.UserEmail, &r.BootcampID, &r.BootcampName,
		&r.Schedule, &r.StartDate, &r.PaymentPlan, &r.Status, &r.PaymentStatus,
		&r.Notes, &r.Version, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (` + registrationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(
		ctx, query,
		reg.ID, reg.UserID, reg.UserEmail, reg.BootcampID, reg.BootcampName,
		reg.Schedule, reg.StartDate, reg.PaymentPlan, reg.Status, reg.PaymentStatus,
		reg.Notes, reg.Version, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if !validID(id) {
		return nil, domain.ErrRegistrationNotFound
	}

	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *RegistrationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

// Update applies the non-nil fields and bumps the version. With an
// expected version the row is only touched when it still carries it.
func (r *RegistrationRepository) Update(
	ctx context.Context,
	id string,
	upd domain.RegistrationUpdate,
) (*domain.Registration, error) {
	if !validID(id) {
		return nil, domain.ErrRegistrationNotFound
	}

	var status, paymentStatus, notes, expected any
	if upd.Status != nil {
		status = string(*upd.Status)
	}
	if upd.PaymentStatus != nil {
		paymentStatus = string(*upd.PaymentStatus)
	}
	if upd.Notes != nil {
		notes = *upd.Notes
	}
	if upd.ExpectedVersion != nil {
		expected = *upd.ExpectedVersion
	}

	query := `UPDATE registrations
			  SET status = COALESCE($2::text, status),
			      payment_status = COALESCE($3::text, payment_status),
			      notes = COALESCE($4::text, notes),
			      version = version + 1,
			      updated_at = $5
			  WHERE id = $1
			    AND ($6::int IS NULL OR version = $6::int)
			  RETURNING ` + registrationColumns

	reg, err := scanRegistration(r.db.QueryRowContext(
		ctx, query, id, status, paymentStatus, notes, upd.UpdatedAt, expected,
	))
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	// nothing updated: either the row is gone or its version moved on
	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM registrations WHERE id = $1)`
	if err = r.db.QueryRowContext(ctx, existsQuery, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if !exists {
		return nil, domain.ErrRegistrationNotFound
	}
	return nil, domain.ErrVersionConflict
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrRegistrationNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}
