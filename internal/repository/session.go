package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// SessionRepository records signed-out sessions until their tokens expire.
type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SessionRepository) Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error {
	query := `INSERT INTO revoked_sessions (session_id, expires_at)
			  VALUES ($1, $2)
			  ON CONFLICT (session_id) DO NOTHING`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, expiresAt); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *SessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM revoked_sessions
				WHERE session_id = $1 AND expires_at > now()
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sessionID)
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}

	var revoked bool
	if err = row.Scan(&revoked); err != nil {
		return false, fmt.Errorf("scan session: %w", err)
	}
	return revoked, nil
}

// PurgeExpired drops revocations whose tokens can no longer be presented.
func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM revoked_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge rows affected: %w", err)
	}
	return n, nil
}
