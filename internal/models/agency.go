package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Agency is the operator entity controlled by exactly one agent user
type Agency struct {
	ID         uuid.UUID `json:"agency_id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	AgencyName string    `json:"agency_name" db:"agency_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// City is a source or destination referenced by schedules. Names are unique.
type City struct {
	ID        uuid.UUID `json:"city_id" db:"id"`
	CityName  string    `json:"city_name" db:"city_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCityRequest represents the admin request to add a city
type CreateCityRequest struct {
	CityName string `json:"city_name" binding:"required"`
}

// Normalize trims the city name in place
func (req *CreateCityRequest) Normalize() {
	req.CityName = strings.TrimSpace(req.CityName)
}
