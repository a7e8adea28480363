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

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (id, email, role, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Email, a.Role, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, role, created_at
			  FROM admins
			  WHERE lower(email) = lower($1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	query := `SELECT id, email, role, created_at
			  FROM admins
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Admin, 0)
	for rows.Next() {
		var a domain.Admin
		if err = rows.Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

// Delete removes the entry unless it is the last one. The roster is locked
// for the duration so two concurrent removals cannot empty it.
func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrAdminNotFound
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM admins FOR UPDATE`)
		if err != nil {
			return fmt.Errorf("lock admins: %w", err)
		}

		var total int
		found := false
		for rows.Next() {
			var current string
			if err = rows.Scan(&current); err != nil {
				rows.Close()
				return fmt.Errorf("scan admin id: %w", err)
			}
			total++
			if current == id {
				found = true
			}
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return fmt.Errorf("lock admins: %w", err)
		}

		if !found {
			return domain.ErrAdminNotFound
		}
		if total <= 1 {
			return domain.ErrLastAdmin
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete admin: %w", err)
		}
		return nil
	})
}
