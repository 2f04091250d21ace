package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditLoginSuccess      = "login_success"
	AuditLoginFailed       = "login_failed"
	AuditRateLimited       = "rate_limit_violation"
	AuditUserStatusChanged = "user_status_changed"
	AuditCityCreated       = "city_created"
	AuditConfigUpdated     = "config_updated"
	AuditReportExported    = "report_exported"
)

// AuditDetails is stored as a JSON document
type AuditDetails map[string]interface{}

// Value implements the driver.Valuer interface. JSON is sent as text so the
// same statement works on Postgres JSONB and MySQL JSON columns.
func (d AuditDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements the sql.Scanner interface
func (d *AuditDetails) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into AuditDetails", value)
	}
}

// AuditEvent is one security relevant action. UserID is nil for events
// raised before the caller is identified.
type AuditEvent struct {
	ID         uuid.UUID    `json:"audit_id" db:"id"`
	UserID     *uuid.UUID   `json:"user_id,omitempty" db:"user_id"`
	Action     string       `json:"action" db:"action"`
	EntityType string       `json:"entity_type" db:"entity_type"`
	EntityID   *uuid.UUID   `json:"entity_id,omitempty" db:"entity_id"`
	IPAddress  string       `json:"ip_address" db:"ip_address"`
	UserAgent  string       `json:"user_agent" db:"user_agent"`
	Details    AuditDetails `json:"details,omitempty" db:"details"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
