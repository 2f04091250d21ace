package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Schedule is one trip of a bus between two cities over [DepartureTime, ArrivalTime)
type Schedule struct {
	ID            uuid.UUID       `json:"schedule_id" db:"id"`
	BusID         uuid.UUID       `json:"bus_id" db:"bus_id"`
	DepartureTime time.Time       `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time       `json:"arrival_time" db:"arrival_time"`
	BaseFare      decimal.Decimal `json:"base_fare" db:"base_fare"`
	SourceCityID  uuid.UUID       `json:"source_city_id" db:"source_city_id"`
	DestCityID    uuid.UUID       `json:"dest_city_id" db:"dest_city_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`

	// Joined from cities on read
	SourceCityName string `json:"source_city" db:"source_city_name"`
	DestCityName   string `json:"dest_city" db:"dest_city_name"`
}

// ScheduleRequest is used both to create and to update a schedule. BusID is
// only read on create.
type ScheduleRequest struct {
	BusID         uuid.UUID       `json:"bus_id"`
	DepartureTime time.Time       `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time       `json:"arrival_time" binding:"required"`
	BaseFare      decimal.Decimal `json:"base_fare"`
	SourceCity    string          `json:"source_city" binding:"required"`
	DestCity      string          `json:"dest_city" binding:"required"`
}

// Validate validates the ScheduleRequest
func (req *ScheduleRequest) Validate() error {
	if req.DepartureTime.IsZero() || req.ArrivalTime.IsZero() {
		return errors.New("departure_time and arrival_time are required")
	}

	if !req.DepartureTime.Before(req.ArrivalTime) {
		return errors.New("departure_time must be before arrival_time")
	}

	if req.BaseFare.IsNegative() {
		return errors.New("base_fare cannot be negative")
	}

	if strings.TrimSpace(req.SourceCity) == "" || strings.TrimSpace(req.DestCity) == "" {
		return errors.New("source_city and dest_city are required")
	}

	return nil
}
