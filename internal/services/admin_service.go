package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AdminService handles platform wide administration: users, cities,
// agencies, booking search, statistics and fare configuration
type AdminService struct {
	store  *database.Store
	logger *logrus.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(store *database.Store, logger *logrus.Logger) *AdminService {
	return &AdminService{
		store:  store,
		logger: logger,
	}
}

// ListUsers returns every user
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users.List(ctx)
}

// UpdateUserStatus changes the account status of a user
func (s *AdminService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, status string) (*models.User, error) {
	newStatus := models.UserStatus(status)
	if !newStatus.Valid() {
		return nil, invalid(CodeInvalidStatus, "unknown user status %q", status)
	}

	var user *models.User
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		if err := tx.Users.UpdateStatus(ctx, userID, newStatus); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound(CodeUserNotFound, "user not found")
			}
			return err
		}

		var err error
		user, err = tx.Users.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"status":  newStatus,
	}).Info("User status updated")

	return user, nil
}

// AddCity registers a city. Names are unique.
func (s *AdminService) AddCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error) {
	req.Normalize()
	if req.CityName == "" {
		return nil, invalid(CodeInvalidRequest, "city_name is required")
	}

	city := &models.City{
		ID:        uuid.New(),
		CityName:  req.CityName,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Cities.Create(ctx, city); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, conflict(CodeDuplicate, "city %q already exists", req.CityName)
		}
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	s.logger.WithField("city", city.CityName).Info("City added")
	return city, nil
}

// ListCities returns every city
func (s *AdminService) ListCities(ctx context.Context) ([]models.City, error) {
	return s.store.Cities.List(ctx)
}

// ListAgencies returns every agency
func (s *AdminService) ListAgencies(ctx context.Context) ([]models.Agency, error) {
	return s.store.Agencies.List(ctx)
}

// ListBusesByAgency returns the buses of one agency
func (s *AdminService) ListBusesByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Bus, error) {
	if _, err := s.store.Agencies.GetByID(ctx, agencyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeAgencyNotFound, "agency not found")
		}
		return nil, fmt.Errorf("failed to load agency: %w", err)
	}
	return s.store.Buses.ListByAgency(ctx, agencyID)
}

// ListBookings returns every booking
func (s *AdminService) ListBookings(ctx context.Context) ([]models.BookingView, error) {
	return s.SearchBookings(ctx, BookingFilter{Kind: NoFilter})
}

// SearchBookings returns the bookings selected by filter
func (s *AdminService) SearchBookings(ctx context.Context, filter BookingFilter) ([]models.BookingView, error) {
	records, err := filter.fetch(ctx, s.store.Bookings)
	if err != nil {
		return nil, err
	}

	views, err := ToViews(records)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"filter": filter.Kind.String(),
			"id":     filter.ID,
		}).Error("Broken booking reference")
		return nil, err
	}
	return views, nil
}

// GlobalStats reads the platform counters. Each counter is read on its own;
// the snapshot is not transactional.
func (s *AdminService) GlobalStats(ctx context.Context) (*models.SystemStats, error) {
	revenue, err := s.store.Bookings.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.Bookings.Count(ctx)
	if err != nil {
		return nil, err
	}

	buses, err := s.store.Buses.Count(ctx)
	if err != nil {
		return nil, err
	}

	agents, err := s.store.Users.CountByRole(ctx, models.RoleAgent)
	if err != nil {
		return nil, err
	}

	return &models.SystemStats{
		TotalRevenue:  revenue,
		TotalBookings: bookings,
		ActiveBuses:   buses,
		ActiveAgents:  agents,
	}, nil
}

// GetConfig returns the global fare configuration, creating it on first access
func (s *AdminService) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	var cfg *models.SystemConfig
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		var err error
		cfg, err = tx.Configs.GetOrCreate(ctx, models.GlobalConfigKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateConfig sets the service tax percentage and booking fee
func (s *AdminService) UpdateConfig(ctx context.Context, req *models.SystemConfigRequest) (*models.SystemConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(CodeInvalidRequest, "%s", err.Error())
	}

	var cfg *models.SystemConfig
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		var err error
		cfg, err = tx.Configs.GetOrCreate(ctx, models.GlobalConfigKey)
		if err != nil {
			return err
		}

		cfg.ServiceTaxPct = req.ServiceTaxPct
		cfg.BookingFee = req.BookingFee
		cfg.UpdatedAt = time.Now().UTC()

		return tx.Configs.Save(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"service_tax_pct": cfg.ServiceTaxPct.String(),
		"booking_fee":     cfg.BookingFee.String(),
	}).Info("System config updated")

	return cfg, nil
}
