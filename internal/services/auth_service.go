package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues access tokens for admin and agent accounts
type AuthService struct {
	store      *database.Store
	jwtService *jwt.Service
	logger     *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(store *database.Store, jwtService *jwt.Service, logger *logrus.Logger) *AuthService {
	return &AuthService{
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks email and password and returns a signed access token
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.store.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, unauthorized(CodeInvalidLogin, "invalid email or password")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.WithField("user_id", user.ID).Warn("Failed login attempt")
		return nil, &AccountError{UserID: user.ID, Err: unauthorized(CodeInvalidLogin, "invalid email or password")}
	}

	if user.Status != models.UserStatusActive {
		return nil, &AccountError{
			UserID: user.ID,
			Err:    unauthorized(CodeAccountInactive, "account is %s", strings.ToLower(string(user.Status))),
		}
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtService.AccessTokenExpiry().Seconds()),
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
