package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

const busColumns = `id, agency_id, registration_no, bus_type, capacity, created_at, updated_at`

// BusRepository handles database operations for buses
type BusRepository struct {
	db Queryer
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db Queryer) *BusRepository {
	return &BusRepository{db: db}
}

// Create creates a new bus
func (r *BusRepository) Create(ctx context.Context, bus *models.Bus) error {
	query := r.db.Rebind(`
		INSERT INTO buses (
			id, agency_id, registration_no, bus_type, capacity, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		bus.ID, bus.AgencyID, bus.RegistrationNo, bus.BusType, bus.Capacity, bus.CreatedAt, bus.UpdatedAt,
	)
	return translateError(err)
}

// GetByID retrieves a bus by ID. Returns sql.ErrNoRows if absent.
func (r *BusRepository) GetByID(ctx context.Context, busID uuid.UUID) (*models.Bus, error) {
	query := r.db.Rebind(`SELECT ` + busColumns + ` FROM buses WHERE id = ?`)

	var bus models.Bus
	if err := r.db.GetContext(ctx, &bus, query, busID); err != nil {
		return nil, err
	}
	return &bus, nil
}

// GetByIDForUpdate retrieves a bus and locks its row until the surrounding
// transaction ends. Schedule writes for the same bus serialize on this lock.
func (r *BusRepository) GetByIDForUpdate(ctx context.Context, busID uuid.UUID) (*models.Bus, error) {
	query := r.db.Rebind(`SELECT ` + busColumns + ` FROM buses WHERE id = ? FOR UPDATE`)

	var bus models.Bus
	if err := r.db.GetContext(ctx, &bus, query, busID); err != nil {
		return nil, err
	}
	return &bus, nil
}

// ListByAgency retrieves all buses of an agency
func (r *BusRepository) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Bus, error) {
	query := r.db.Rebind(`
		SELECT ` + busColumns + `
		FROM buses
		WHERE agency_id = ?
		ORDER BY created_at DESC
	`)

	buses := []models.Bus{}
	if err := r.db.SelectContext(ctx, &buses, query, agencyID); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}
	return buses, nil
}

// Update overwrites registration number, type and capacity
func (r *BusRepository) Update(ctx context.Context, bus *models.Bus) error {
	query := r.db.Rebind(`
		UPDATE buses
		SET registration_no = ?, bus_type = ?, capacity = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, bus.RegistrationNo, bus.BusType, bus.Capacity, bus.UpdatedAt, bus.ID)
	if err != nil {
		return translateError(err)
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

// Delete deletes a bus. Returns ErrReferenced while schedules still point at it.
func (r *BusRepository) Delete(ctx context.Context, busID uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM buses WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, busID)
	if err != nil {
		return translateError(err)
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

// Count counts all buses
func (r *BusRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM buses`); err != nil {
		return 0, fmt.Errorf("failed to count buses: %w", err)
	}
	return count, nil
}
