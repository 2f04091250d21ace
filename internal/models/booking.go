package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingRecord is one row of the booking join: the booking plus every entity it
// references. Joined columns are nullable because the join is outer; a NULL
// there means the referenced row is missing.
type BookingRecord struct {
	BookingID    uuid.UUID       `db:"booking_id"`
	BookingRefNo string          `db:"booking_ref_no"`
	BookingDate  time.Time       `db:"booking_date"`
	JourneyDate  time.Time       `db:"journey_date"`
	TotalFare    decimal.Decimal `db:"total_fare"`
	Status       string          `db:"status"`

	UserID        uuid.NullUUID  `db:"user_id"`
	UserEmail     sql.NullString `db:"user_email"`
	UserFirstName sql.NullString `db:"user_first_name"`
	UserLastName  sql.NullString `db:"user_last_name"`

	ScheduleID uuid.NullUUID `db:"schedule_id"`

	BusID             uuid.NullUUID  `db:"bus_id"`
	BusRegistrationNo sql.NullString `db:"bus_registration_no"`
	BusType           sql.NullString `db:"bus_type"`

	AgencyID   uuid.NullUUID  `db:"agency_id"`
	AgencyName sql.NullString `db:"agency_name"`

	SourceCityID   uuid.NullUUID  `db:"source_city_id"`
	SourceCityName sql.NullString `db:"source_city_name"`
	DestCityID     uuid.NullUUID  `db:"dest_city_id"`
	DestCityName   sql.NullString `db:"dest_city_name"`
}

// BookingView is the flattened read representation of a booking used for
// listing, search and reports
type BookingView struct {
	BookingID    uuid.UUID       `json:"booking_id"`
	BookingRefNo string          `json:"booking_ref_no"`
	BookingDate  time.Time       `json:"booking_date"`
	JourneyDate  time.Time       `json:"journey_date"`
	TotalFare    decimal.Decimal `json:"total_fare"`
	Status       BookingStatus   `json:"status"`

	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`

	ScheduleID uuid.UUID `json:"schedule_id"`

	BusID          uuid.UUID `json:"bus_id"`
	RegistrationNo string    `json:"registration_no"`
	BusType        string    `json:"bus_type"`

	AgencyID   uuid.UUID `json:"agency_id"`
	AgencyName string    `json:"agency_name"`

	SourceCityID   uuid.UUID `json:"source_city_id"`
	SourceCityName string    `json:"source_city_name"`
	DestCityID     uuid.UUID `json:"dest_city_id"`
	DestCityName   string    `json:"dest_city_name"`
}
