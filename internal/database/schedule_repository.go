package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

// Reads join both cities so callers get names without a second lookup
const scheduleSelect = `
	SELECT
		s.id, s.bus_id, s.departure_time, s.arrival_time, s.base_fare,
		s.source_city_id, s.dest_city_id, s.created_at, s.updated_at,
		src.city_name AS source_city_name, dst.city_name AS dest_city_name
	FROM schedules s
	JOIN cities src ON src.id = s.source_city_id
	JOIN cities dst ON dst.id = s.dest_city_id
`

// ScheduleRepository handles database operations for schedules
type ScheduleRepository struct {
	db Queryer
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db Queryer) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := r.db.Rebind(`
		INSERT INTO schedules (
			id, bus_id, departure_time, arrival_time, base_fare,
			source_city_id, dest_city_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID, schedule.BusID, schedule.DepartureTime, schedule.ArrivalTime, schedule.BaseFare,
		schedule.SourceCityID, schedule.DestCityID, schedule.CreatedAt, schedule.UpdatedAt,
	)
	return translateError(err)
}

// GetByID retrieves a schedule by ID. Returns sql.ErrNoRows if absent.
func (r *ScheduleRepository) GetByID(ctx context.Context, scheduleID uuid.UUID) (*models.Schedule, error) {
	query := r.db.Rebind(scheduleSelect + ` WHERE s.id = ?`)

	var schedule models.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, scheduleID); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ListByBus retrieves every schedule of a bus ordered by departure
func (r *ScheduleRepository) ListByBus(ctx context.Context, busID uuid.UUID) ([]models.Schedule, error) {
	query := r.db.Rebind(scheduleSelect + ` WHERE s.bus_id = ? ORDER BY s.departure_time`)

	schedules := []models.Schedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, busID); err != nil {
		return nil, fmt.Errorf("failed to list schedules for bus: %w", err)
	}
	return schedules, nil
}

// ListByAgency retrieves the schedules of every bus owned by an agency
func (r *ScheduleRepository) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Schedule, error) {
	query := r.db.Rebind(scheduleSelect + `
		JOIN buses b ON b.id = s.bus_id
		WHERE b.agency_id = ?
		ORDER BY s.departure_time
	`)

	schedules := []models.Schedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, agencyID); err != nil {
		return nil, fmt.Errorf("failed to list schedules for agency: %w", err)
	}
	return schedules, nil
}

// Update overwrites times, fare and cities of a schedule
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	query := r.db.Rebind(`
		UPDATE schedules
		SET departure_time = ?, arrival_time = ?, base_fare = ?,
			source_city_id = ?, dest_city_id = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		schedule.DepartureTime, schedule.ArrivalTime, schedule.BaseFare,
		schedule.SourceCityID, schedule.DestCityID, schedule.UpdatedAt, schedule.ID,
	)
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

// Delete deletes a schedule. Returns ErrReferenced while bookings still point at it.
func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM schedules WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, scheduleID)
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
