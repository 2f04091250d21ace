package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/shopspring/decimal"
)

// bookingRecordSelect resolves the whole reference chain of a booking in one
// statement. Outer joins keep bookings with dangling references visible so the
// assembler can report them instead of silently dropping rows.
const bookingRecordSelect = `
	SELECT
		bk.id AS booking_id, bk.booking_ref_no, bk.booking_date, bk.journey_date,
		bk.total_fare, bk.status,
		u.id AS user_id, u.email AS user_email,
		u.first_name AS user_first_name, u.last_name AS user_last_name,
		s.id AS schedule_id,
		b.id AS bus_id, b.registration_no AS bus_registration_no, b.bus_type,
		a.id AS agency_id, a.agency_name,
		src.id AS source_city_id, src.city_name AS source_city_name,
		dst.id AS dest_city_id, dst.city_name AS dest_city_name
	FROM bookings bk
	LEFT JOIN users u ON u.id = bk.user_id
	LEFT JOIN schedules s ON s.id = bk.schedule_id
	LEFT JOIN buses b ON b.id = s.bus_id
	LEFT JOIN agencies a ON a.id = b.agency_id
	LEFT JOIN cities src ON src.id = s.source_city_id
	LEFT JOIN cities dst ON dst.id = s.dest_city_id
`

const bookingRecordOrder = ` ORDER BY bk.booking_date DESC, bk.id`

// BookingRepository handles read operations for bookings
type BookingRepository struct {
	db Queryer
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db Queryer) *BookingRepository {
	return &BookingRepository{db: db}
}

// ListRecords returns every booking with its references resolved
func (r *BookingRepository) ListRecords(ctx context.Context) ([]models.BookingRecord, error) {
	records := []models.BookingRecord{}
	if err := r.db.SelectContext(ctx, &records, bookingRecordSelect+bookingRecordOrder); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return records, nil
}

// ListRecordsByBus returns bookings whose schedule runs on the given bus
func (r *BookingRepository) ListRecordsByBus(ctx context.Context, busID uuid.UUID) ([]models.BookingRecord, error) {
	query := r.db.Rebind(bookingRecordSelect + ` WHERE s.bus_id = ?` + bookingRecordOrder)

	records := []models.BookingRecord{}
	if err := r.db.SelectContext(ctx, &records, query, busID); err != nil {
		return nil, fmt.Errorf("failed to list bookings for bus: %w", err)
	}
	return records, nil
}

// ListRecordsByAgency returns bookings whose schedule runs on a bus of the agency
func (r *BookingRepository) ListRecordsByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.BookingRecord, error) {
	query := r.db.Rebind(bookingRecordSelect + ` WHERE b.agency_id = ?` + bookingRecordOrder)

	records := []models.BookingRecord{}
	if err := r.db.SelectContext(ctx, &records, query, agencyID); err != nil {
		return nil, fmt.Errorf("failed to list bookings for agency: %w", err)
	}
	return records, nil
}

// Count counts all bookings
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings`); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// TotalRevenue sums the fares of all bookings that were not cancelled
func (r *BookingRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query := r.db.Rebind(`SELECT COALESCE(SUM(total_fare), 0) FROM bookings WHERE status <> ?`)

	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, models.BookingStatusCancelled); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum booking revenue: %w", err)
	}
	return total, nil
}
