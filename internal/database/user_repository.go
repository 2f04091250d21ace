package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, status, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db Queryer
}

// NewUserRepository creates a new user repository
func NewUserRepository(db Queryer) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetByID retrieves a user by ID. Returns sql.ErrNoRows if absent.
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Returns sql.ErrNoRows if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?`)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateStatus sets a user's status. Returns sql.ErrNoRows if the user does not exist.
func (r *UserRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status models.UserStatus) error {
	query := r.db.Rebind(`UPDATE users SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, status, userID)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM users WHERE role = ?`)

	var count int64
	if err := r.db.GetContext(ctx, &count, query, role); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
