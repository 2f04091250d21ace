package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

// AgencyRepository handles database operations for agencies
type AgencyRepository struct {
	db Queryer
}

// NewAgencyRepository creates a new AgencyRepository
func NewAgencyRepository(db Queryer) *AgencyRepository {
	return &AgencyRepository{db: db}
}

// GetByUserID retrieves the agency controlled by a user. Returns
// sql.ErrNoRows if the user has no agency.
func (r *AgencyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Agency, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, agency_name, created_at
		FROM agencies
		WHERE user_id = ?
	`)

	var agency models.Agency
	if err := r.db.GetContext(ctx, &agency, query, userID); err != nil {
		return nil, err
	}
	return &agency, nil
}

// GetByID retrieves an agency by ID
func (r *AgencyRepository) GetByID(ctx context.Context, agencyID uuid.UUID) (*models.Agency, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, agency_name, created_at
		FROM agencies
		WHERE id = ?
	`)

	var agency models.Agency
	if err := r.db.GetContext(ctx, &agency, query, agencyID); err != nil {
		return nil, err
	}
	return &agency, nil
}

// List returns all agencies ordered by name
func (r *AgencyRepository) List(ctx context.Context) ([]models.Agency, error) {
	query := `
		SELECT id, user_id, agency_name, created_at
		FROM agencies
		ORDER BY agency_name
	`

	agencies := []models.Agency{}
	if err := r.db.SelectContext(ctx, &agencies, query); err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	return agencies, nil
}
