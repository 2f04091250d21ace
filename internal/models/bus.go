package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusType represents the type/category of bus
type BusType string

const (
	BusTypeACSleeper    BusType = "AC_SLEEPER"
	BusTypeNonACSleeper BusType = "NON_AC_SLEEPER"
	BusTypeACSeater     BusType = "AC_SEATER"
	BusTypeNonACSeater  BusType = "NON_AC_SEATER"
)

// ParseBusType maps an externally supplied category onto the closed BusType set
func ParseBusType(s string) (BusType, bool) {
	switch t := BusType(strings.ToUpper(strings.TrimSpace(s))); t {
	case BusTypeACSleeper, BusTypeNonACSleeper, BusTypeACSeater, BusTypeNonACSeater:
		return t, true
	}
	return "", false
}

// Bus represents a bus owned by an agency
type Bus struct {
	ID             uuid.UUID `json:"bus_id" db:"id"`
	AgencyID       uuid.UUID `json:"agency_id" db:"agency_id"`
	RegistrationNo string    `json:"registration_no" db:"registration_no"`
	BusType        BusType   `json:"bus_type" db:"bus_type"`
	Capacity       int       `json:"capacity" db:"capacity"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// BusRequest is used both to create and to overwrite a bus
type BusRequest struct {
	RegistrationNo string `json:"registration_no" binding:"required"`
	BusType        string `json:"bus_type" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,gt=0"`
}

// Validate validates the BusRequest. The bus type is checked separately so the
// caller can report it with its own code.
func (req *BusRequest) Validate() error {
	if strings.TrimSpace(req.RegistrationNo) == "" {
		return errors.New("registration_no is required")
	}

	if req.Capacity <= 0 {
		return errors.New("capacity must be greater than 0")
	}

	return nil
}
