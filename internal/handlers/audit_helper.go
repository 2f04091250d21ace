package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/middleware"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/goswift/booking-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// Auditor records security events and administrative changes
type Auditor interface {
	LogLogin(ctx context.Context, userID *uuid.UUID, email string, meta services.RequestMeta, success bool, reason string) error
	LogRateLimitViolation(ctx context.Context, email, limitType string, retryAfter time.Time, meta services.RequestMeta) error
	LogAdminAction(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID *uuid.UUID, meta services.RequestMeta, details map[string]interface{}) error
	RecentEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEvent, error)
}

func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		IPAddress: utils.ClientIP(c),
		UserAgent: utils.UserAgent(c),
	}
}

// logAuditError logs an audit failure without failing the request
func logAuditError(logger *logrus.Logger, c *gin.Context, operation string, err error) {
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"operation":  operation,
			"request_id": c.GetString(middleware.RequestIDKey),
		}).Error("Audit write failed")
	}
}

func (h *AuthHandler) safeLogLogin(c *gin.Context, userID *uuid.UUID, email string, success bool, reason string) {
	err := h.auditor.LogLogin(c.Request.Context(), userID, email, requestMeta(c), success, reason)
	logAuditError(h.logger, c, "LogLogin", err)
}

func (h *AuthHandler) safeLogRateLimitViolation(c *gin.Context, email, limitType string, retryAfter time.Time) {
	err := h.auditor.LogRateLimitViolation(c.Request.Context(), email, limitType, retryAfter, requestMeta(c))
	logAuditError(h.logger, c, "LogRateLimitViolation", err)
}

func (h *AdminHandler) safeLogAdminAction(c *gin.Context, action, entityType string, entityID *uuid.UUID, details map[string]interface{}) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		return
	}
	err := h.auditor.LogAdminAction(c.Request.Context(), userCtx.UserID, action, entityType, entityID, requestMeta(c), details)
	logAuditError(h.logger, c, "LogAdminAction", err)
}
