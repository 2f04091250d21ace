package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Login attempt identifier types
const (
	IdentifierEmail = "email"
	IdentifierIP    = "ip"
)

// LoginAttemptRepository records failed logins for throttling
type LoginAttemptRepository struct {
	db Queryer
}

// NewLoginAttemptRepository creates a new LoginAttemptRepository
func NewLoginAttemptRepository(db Queryer) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

// Record stores one failed attempt
func (r *LoginAttemptRepository) Record(ctx context.Context, identifier, identifierType string, at time.Time) error {
	query := r.db.Rebind(`INSERT INTO login_attempts (identifier, identifier_type, attempted_at) VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, identifier, identifierType, at); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

// CountSince returns how many attempts were recorded after since, and the
// time of the latest one. last is zero when count is zero.
func (r *LoginAttemptRepository) CountSince(ctx context.Context, identifier, identifierType string, since time.Time) (count int, last time.Time, err error) {
	query := r.db.Rebind(`
		SELECT COUNT(*) AS attempts, MAX(attempted_at) AS last_attempt
		FROM login_attempts
		WHERE identifier = ? AND identifier_type = ? AND attempted_at > ?`)

	var row struct {
		Attempts    int          `db:"attempts"`
		LastAttempt sql.NullTime `db:"last_attempt"`
	}
	if err := r.db.GetContext(ctx, &row, query, identifier, identifierType, since); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to count login attempts: %w", err)
	}

	return row.Attempts, row.LastAttempt.Time, nil
}

// DeleteBefore removes attempts older than cutoff
func (r *LoginAttemptRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind(`DELETE FROM login_attempts WHERE attempted_at < ?`)

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup login attempts: %w", err)
	}
	return result.RowsAffected()
}
