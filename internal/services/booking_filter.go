package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
)

// FilterKind tags which variant a BookingFilter holds
type FilterKind int

const (
	NoFilter FilterKind = iota
	ByBus
	ByAgency
)

func (k FilterKind) String() string {
	switch k {
	case ByBus:
		return "bus"
	case ByAgency:
		return "agency"
	default:
		return "none"
	}
}

// BookingFilter selects a set of bookings. ID is meaningful only for ByBus and
// ByAgency.
type BookingFilter struct {
	Kind FilterKind
	ID   uuid.UUID
}

// NewBookingFilter picks the narrowest filter supplied: a bus wins over an
// agency, and no filter selects everything.
func NewBookingFilter(agencyID, busID *uuid.UUID) BookingFilter {
	switch {
	case busID != nil:
		return BookingFilter{Kind: ByBus, ID: *busID}
	case agencyID != nil:
		return BookingFilter{Kind: ByAgency, ID: *agencyID}
	default:
		return BookingFilter{Kind: NoFilter}
	}
}

// fetch runs the store query matching the filter variant
func (f BookingFilter) fetch(ctx context.Context, repo *database.BookingRepository) ([]models.BookingRecord, error) {
	switch f.Kind {
	case ByBus:
		return repo.ListRecordsByBus(ctx, f.ID)
	case ByAgency:
		return repo.ListRecordsByAgency(ctx, f.ID)
	default:
		return repo.ListRecords(ctx)
	}
}
