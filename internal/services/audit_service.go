package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// AuditService records security events and administrative changes
type AuditService struct {
	store  *database.Store
	logger *logrus.Logger
	now    func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(store *database.Store, logger *logrus.Logger) *AuditService {
	return &AuditService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// RequestMeta identifies where a request came from
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// LogLogin logs a login attempt. userID is nil when the email matched no
// account or the attempt was rejected before lookup.
func (s *AuditService) LogLogin(ctx context.Context, userID *uuid.UUID, email string, meta RequestMeta, success bool, reason string) error {
	details := models.AuditDetails{
		"email":       email,
		"success":     success,
		"device_info": utils.ParseUserAgent(meta.UserAgent),
	}
	if reason != "" {
		details["reason"] = reason
	}

	action := models.AuditLoginFailed
	if success {
		action = models.AuditLoginSuccess
	}

	return s.logEvent(ctx, &models.AuditEvent{
		UserID:     userID,
		Action:     action,
		EntityType: "user",
		EntityID:   userID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Details:    details,
	})
}

// LogRateLimitViolation logs a login rejected by the throttle
func (s *AuditService) LogRateLimitViolation(ctx context.Context, email, limitType string, retryAfter time.Time, meta RequestMeta) error {
	return s.logEvent(ctx, &models.AuditEvent{
		Action:     models.AuditRateLimited,
		EntityType: "rate_limit",
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Details: models.AuditDetails{
			"email":       email,
			"limit_type":  limitType,
			"retry_after": retryAfter.UTC(),
			"device_info": utils.ParseUserAgent(meta.UserAgent),
		},
	})
}

// LogAdminAction logs a change made by an administrator
func (s *AuditService) LogAdminAction(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID *uuid.UUID, meta RequestMeta, details map[string]interface{}) error {
	return s.logEvent(ctx, &models.AuditEvent{
		UserID:     &actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Details:    details,
	})
}

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

// RecentEvents returns the latest events recorded for a user. A non-positive
// limit means the default page size; larger limits are capped.
func (s *AuditService) RecentEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditPageSize
	} else if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	return s.store.Audit.ListByUser(ctx, userID, limit)
}

// CleanupOldAuditLogs removes events older than the retention period
func (s *AuditService) CleanupOldAuditLogs(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.store.Audit.DeleteOlderThan(ctx, s.now().Add(-olderThan))
}

func (s *AuditService) logEvent(ctx context.Context, event *models.AuditEvent) error {
	event.ID = uuid.New()
	event.CreatedAt = s.now().UTC()

	if err := s.store.Audit.Create(ctx, event); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"action":      event.Action,
		"entity_type": event.EntityType,
		"ip":          event.IPAddress,
	}).Debug("Audit event recorded")
	return nil
}
