package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2) share
// an instant. Touching intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// HasOverlap reports whether [start,end) overlaps any schedule in existing.
// A schedule whose ID equals exclude is skipped so an update is not compared
// against its own current interval; pass uuid.Nil on create.
func HasOverlap(existing []models.Schedule, start, end time.Time, exclude uuid.UUID) bool {
	for _, s := range existing {
		if exclude != uuid.Nil && s.ID == exclude {
			continue
		}
		if Overlaps(s.DepartureTime, s.ArrivalTime, start, end) {
			return true
		}
	}
	return false
}
