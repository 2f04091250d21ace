package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goswift/booking-backend/internal/config"
	"github.com/goswift/booking-backend/internal/database"
)

// RateLimitService throttles repeated failed logins per email and per IP
type RateLimitService struct {
	store *database.Store
	cfg   config.SecurityConfig
	now   func() time.Time
}

// NewRateLimitService creates a new rate limit service
func NewRateLimitService(store *database.Store, cfg config.SecurityConfig) *RateLimitService {
	return &RateLimitService{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// RateLimitError represents a rate limit exceeded error
type RateLimitError struct {
	Message    string
	RetryAfter time.Time
	Type       string // "email" or "ip"
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// CheckLoginRateLimit returns a *RateLimitError when email or ip has used up
// its failed attempts inside the login window
func (s *RateLimitService) CheckLoginRateLimit(ctx context.Context, email, ip string) error {
	email = normalizeEmail(email)
	if email != "" {
		if err := s.check(ctx, email, database.IdentifierEmail, s.cfg.MaxLoginAttemptsPerEmail,
			"Too many failed logins for this account"); err != nil {
			return err
		}
	}

	if ip != "" {
		if err := s.check(ctx, ip, database.IdentifierIP, s.cfg.MaxLoginAttemptsPerIP,
			"Too many failed logins from this IP address"); err != nil {
			return err
		}
	}

	return nil
}

func (s *RateLimitService) check(ctx context.Context, identifier, identifierType string, limit int, message string) error {
	count, last, err := s.store.LoginAttempts.CountSince(ctx, identifier, identifierType, s.now().Add(-s.cfg.LoginWindow))
	if err != nil {
		return fmt.Errorf("failed to check %s rate limit: %w", identifierType, err)
	}

	if count >= limit {
		retryAfter := last.Add(s.cfg.LoginWindow)
		return &RateLimitError{
			Message:    fmt.Sprintf("%s. Please try again after %s", message, retryAfter.UTC().Format("15:04:05")),
			RetryAfter: retryAfter,
			Type:       identifierType,
		}
	}
	return nil
}

// RecordFailedLogin counts one failed attempt against email and ip
func (s *RateLimitService) RecordFailedLogin(ctx context.Context, email, ip string) error {
	now := s.now()
	email = normalizeEmail(email)

	if email != "" {
		if err := s.store.LoginAttempts.Record(ctx, email, database.IdentifierEmail, now); err != nil {
			return err
		}
	}

	if ip != "" {
		if err := s.store.LoginAttempts.Record(ctx, ip, database.IdentifierIP, now); err != nil {
			return err
		}
	}

	return nil
}

// CleanupExpiredRateLimits removes attempts that fell out of the window
func (s *RateLimitService) CleanupExpiredRateLimits(ctx context.Context) (int64, error) {
	return s.store.LoginAttempts.DeleteBefore(ctx, s.now().Add(-s.cfg.LoginWindow))
}
