package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
)

const auditColumns = `id, user_id, action, entity_type, entity_id, ip_address, user_agent, details, created_at`

// AuditRepository handles the audit_logs table
type AuditRepository struct {
	db Queryer
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db Queryer) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an event
func (r *AuditRepository) Create(ctx context.Context, event *models.AuditEvent) error {
	query := r.db.Rebind(`INSERT INTO audit_logs (` + auditColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.UserID, event.Action, event.EntityType, event.EntityID,
		event.IPAddress, event.UserAgent, event.Details, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log audit event: %w", err)
	}
	return nil
}

// ListByUser returns the most recent events of a user, newest first
func (r *AuditRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEvent, error) {
	query := r.db.Rebind(`SELECT ` + auditColumns + ` FROM audit_logs WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`)

	events := []models.AuditEvent{}
	if err := r.db.SelectContext(ctx, &events, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

// DeleteOlderThan removes events created before cutoff
func (r *AuditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind(`DELETE FROM audit_logs WHERE created_at < ?`)

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old audit logs: %w", err)
	}
	return result.RowsAffected()
}
