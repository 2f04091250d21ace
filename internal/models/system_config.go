package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// GlobalConfigKey is the fixed key of the single configuration row
const GlobalConfigKey = "global"

// SystemConfig holds the fare parameters applied by the booking flow
type SystemConfig struct {
	ConfigKey     string          `json:"-" db:"config_key"`
	ServiceTaxPct decimal.Decimal `json:"service_tax_pct" db:"service_tax_pct"`
	BookingFee    decimal.Decimal `json:"booking_fee" db:"booking_fee"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// SystemConfigRequest represents the admin request to change fare parameters
type SystemConfigRequest struct {
	ServiceTaxPct decimal.Decimal `json:"service_tax_pct"`
	BookingFee    decimal.Decimal `json:"booking_fee"`
}

var hundred = decimal.NewFromInt(100)

// Validate validates the SystemConfigRequest
func (req *SystemConfigRequest) Validate() error {
	if req.ServiceTaxPct.IsNegative() || req.ServiceTaxPct.GreaterThan(hundred) {
		return errors.New("service_tax_pct must be between 0 and 100")
	}

	if req.BookingFee.IsNegative() {
		return errors.New("booking_fee cannot be negative")
	}

	return nil
}

// SystemStats is a point-in-time snapshot of global counters. Each counter is
// read independently.
type SystemStats struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalBookings int64           `json:"total_bookings"`
	ActiveBuses   int64           `json:"active_buses"`
	ActiveAgents  int64           `json:"active_agents"`
}
