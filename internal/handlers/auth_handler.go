package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/goswift/booking-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// AuthService issues access tokens
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// LoginLimiter throttles repeated failed logins
type LoginLimiter interface {
	CheckLoginRateLimit(ctx context.Context, email, ip string) error
	RecordFailedLogin(ctx context.Context, email, ip string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService AuthService
	limiter     LoginLimiter
	auditor     Auditor
	logger      *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, limiter LoginLimiter, auditor Auditor, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
		auditor:     auditor,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required", "INVALID_REQUEST")
		return
	}

	ctx := c.Request.Context()
	ip := utils.ClientIP(c)

	if err := h.limiter.CheckLoginRateLimit(ctx, req.Email, ip); err != nil {
		var rateErr *services.RateLimitError
		if errors.As(err, &rateErr) {
			h.safeLogRateLimitViolation(c, req.Email, rateErr.Type, rateErr.RetryAfter)

			retryAfter := int(time.Until(rateErr.RetryAfter).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, ErrorResponse{
				Error:   "rate_limited",
				Message: rateErr.Message,
				Code:    "TOO_MANY_ATTEMPTS",
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		code := services.CodeOf(err)
		if code == services.CodeInvalidLogin {
			if recErr := h.limiter.RecordFailedLogin(ctx, req.Email, ip); recErr != nil {
				h.logger.WithError(recErr).Error("Failed to record login attempt")
			}
		}
		if code != "" {
			h.safeLogLogin(c, services.AccountOf(err), req.Email, false, code)
		}
		respondError(c, h.logger, err)
		return
	}

	h.safeLogLogin(c, &resp.UserID, req.Email, true, "")
	c.JSON(http.StatusOK, resp)
}
