package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AgentService manages the buses and schedules of the caller's agency. Every
// mutation resolves the caller's agency and checks ownership of the target
// inside the same transaction as the write.
type AgentService struct {
	store  *database.Store
	logger *logrus.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(store *database.Store, logger *logrus.Logger) *AgentService {
	return &AgentService{
		store:  store,
		logger: logger,
	}
}

// AddBus registers a new bus under the caller's agency
func (s *AgentService) AddBus(ctx context.Context, actorID uuid.UUID, req *models.BusRequest) (*models.Bus, error) {
	busType, err := validateBusRequest(req)
	if err != nil {
		return nil, err
	}

	agency, err := ResolveAgency(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bus := &models.Bus{
		ID:             uuid.New(),
		AgencyID:       agency.ID,
		RegistrationNo: strings.TrimSpace(req.RegistrationNo),
		BusType:        busType,
		Capacity:       req.Capacity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Buses.Create(ctx, bus); err != nil {
		return nil, busWriteError(err, "failed to create bus")
	}

	s.logger.WithFields(logrus.Fields{
		"actor_id":  actorID,
		"agency_id": agency.ID,
		"bus_id":    bus.ID,
	}).Info("Bus created")

	return bus, nil
}

// ListMyBuses returns the buses of the caller's agency
func (s *AgentService) ListMyBuses(ctx context.Context, actorID uuid.UUID) ([]models.Bus, error) {
	agency, err := ResolveAgency(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Buses.ListByAgency(ctx, agency.ID)
}

// UpdateBus overwrites registration number, type and capacity of a bus the
// caller's agency owns
func (s *AgentService) UpdateBus(ctx context.Context, actorID, busID uuid.UUID, req *models.BusRequest) (*models.Bus, error) {
	busType, err := validateBusRequest(req)
	if err != nil {
		return nil, err
	}

	var bus *models.Bus
	err = s.store.WithTx(ctx, func(tx *database.Store) error {
		agency, err := ResolveAgency(ctx, tx, actorID)
		if err != nil {
			return err
		}

		bus, err = ownedBus(ctx, tx, agency, busID, true)
		if err != nil {
			return err
		}

		bus.RegistrationNo = strings.TrimSpace(req.RegistrationNo)
		bus.BusType = busType
		bus.Capacity = req.Capacity
		bus.UpdatedAt = time.Now().UTC()

		if err := tx.Buses.Update(ctx, bus); err != nil {
			return busWriteError(err, "failed to update bus")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"actor_id": actorID, "bus_id": busID}).Info("Bus updated")
	return bus, nil
}

// DeleteBus removes a bus the caller's agency owns. A bus that still has
// schedules cannot be deleted.
func (s *AgentService) DeleteBus(ctx context.Context, actorID, busID uuid.UUID) error {
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		agency, err := ResolveAgency(ctx, tx, actorID)
		if err != nil {
			return err
		}

		if _, err := ownedBus(ctx, tx, agency, busID, true); err != nil {
			return err
		}

		if err := tx.Buses.Delete(ctx, busID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound(CodeBusNotFound, "bus not found")
			}
			if errors.Is(err, database.ErrReferenced) {
				return conflict(CodeInUse, "bus still has schedules")
			}
			return fmt.Errorf("failed to delete bus: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"actor_id": actorID, "bus_id": busID}).Info("Bus deleted")
	return nil
}

// AddSchedule creates a schedule on one of the caller's buses. Lookup,
// ownership, conflict check, city resolution and insert run in one
// transaction with the bus row locked, so two overlapping schedules for the
// same bus can never both commit.
func (s *AgentService) AddSchedule(ctx context.Context, actorID uuid.UUID, req *models.ScheduleRequest) (*models.Schedule, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(CodeInvalidRequest, "%s", err.Error())
	}
	if req.BusID == uuid.Nil {
		return nil, invalid(CodeInvalidRequest, "bus_id is required")
	}

	departure := req.DepartureTime.UTC()
	arrival := req.ArrivalTime.UTC()

	var schedule *models.Schedule
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		agency, err := ResolveAgency(ctx, tx, actorID)
		if err != nil {
			return err
		}

		bus, err := ownedBus(ctx, tx, agency, req.BusID, true)
		if err != nil {
			return err
		}

		existing, err := tx.Schedules.ListByBus(ctx, bus.ID)
		if err != nil {
			return err
		}
		if HasOverlap(existing, departure, arrival, uuid.Nil) {
			return conflict(CodeScheduleConflict, "bus is already scheduled during this time")
		}

		source, err := resolveCity(ctx, tx, req.SourceCity)
		if err != nil {
			return err
		}
		dest, err := resolveCity(ctx, tx, req.DestCity)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		schedule = &models.Schedule{
			ID:             uuid.New(),
			BusID:          bus.ID,
			DepartureTime:  departure,
			ArrivalTime:    arrival,
			BaseFare:       req.BaseFare,
			SourceCityID:   source.ID,
			DestCityID:     dest.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
			SourceCityName: source.CityName,
			DestCityName:   dest.CityName,
		}

		if err := tx.Schedules.Create(ctx, schedule); err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"actor_id":    actorID,
		"bus_id":      schedule.BusID,
		"schedule_id": schedule.ID,
		"departure":   schedule.DepartureTime,
		"arrival":     schedule.ArrivalTime,
	}).Info("Schedule created")

	return schedule, nil
}

// ListMySchedules returns the schedules of every bus of the caller's agency
func (s *AgentService) ListMySchedules(ctx context.Context, actorID uuid.UUID) ([]models.Schedule, error) {
	agency, err := ResolveAgency(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Schedules.ListByAgency(ctx, agency.ID)
}

// UpdateSchedule overwrites times and fare of a schedule and re-resolves a
// city only when its name changed. A change of times is checked against the
// bus's other schedules.
func (s *AgentService) UpdateSchedule(ctx context.Context, actorID, scheduleID uuid.UUID, req *models.ScheduleRequest) (*models.Schedule, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(CodeInvalidRequest, "%s", err.Error())
	}

	departure := req.DepartureTime.UTC()
	arrival := req.ArrivalTime.UTC()

	var schedule *models.Schedule
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		agency, err := ResolveAgency(ctx, tx, actorID)
		if err != nil {
			return err
		}

		schedule, err = loadSchedule(ctx, tx, scheduleID)
		if err != nil {
			return err
		}

		if _, err := ownedBus(ctx, tx, agency, schedule.BusID, true); err != nil {
			return err
		}

		if !departure.Equal(schedule.DepartureTime) || !arrival.Equal(schedule.ArrivalTime) {
			existing, err := tx.Schedules.ListByBus(ctx, schedule.BusID)
			if err != nil {
				return err
			}
			if HasOverlap(existing, departure, arrival, schedule.ID) {
				return conflict(CodeScheduleConflict, "bus is already scheduled during this time")
			}
		}

		schedule.DepartureTime = departure
		schedule.ArrivalTime = arrival
		schedule.BaseFare = req.BaseFare

		if name := strings.TrimSpace(req.SourceCity); name != schedule.SourceCityName {
			city, err := resolveCity(ctx, tx, name)
			if err != nil {
				return err
			}
			schedule.SourceCityID = city.ID
			schedule.SourceCityName = city.CityName
		}

		if name := strings.TrimSpace(req.DestCity); name != schedule.DestCityName {
			city, err := resolveCity(ctx, tx, name)
			if err != nil {
				return err
			}
			schedule.DestCityID = city.ID
			schedule.DestCityName = city.CityName
		}

		schedule.UpdatedAt = time.Now().UTC()
		if err := tx.Schedules.Update(ctx, schedule); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound(CodeScheduleNotFound, "schedule not found")
			}
			return fmt.Errorf("failed to update schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"actor_id": actorID, "schedule_id": scheduleID}).Info("Schedule updated")
	return schedule, nil
}

// DeleteSchedule removes a schedule on one of the caller's buses. A schedule
// that still has bookings cannot be deleted.
func (s *AgentService) DeleteSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) error {
	err := s.store.WithTx(ctx, func(tx *database.Store) error {
		agency, err := ResolveAgency(ctx, tx, actorID)
		if err != nil {
			return err
		}

		schedule, err := loadSchedule(ctx, tx, scheduleID)
		if err != nil {
			return err
		}

		if _, err := ownedBus(ctx, tx, agency, schedule.BusID, false); err != nil {
			return err
		}

		if err := tx.Schedules.Delete(ctx, scheduleID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound(CodeScheduleNotFound, "schedule not found")
			}
			if errors.Is(err, database.ErrReferenced) {
				return conflict(CodeInUse, "schedule still has bookings")
			}
			return fmt.Errorf("failed to delete schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"actor_id": actorID, "schedule_id": scheduleID}).Info("Schedule deleted")
	return nil
}

// ListAgencyBookings returns the bookings made on the caller's buses
func (s *AgentService) ListAgencyBookings(ctx context.Context, actorID uuid.UUID) ([]models.BookingView, error) {
	agency, err := ResolveAgency(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}

	records, err := NewBookingFilter(&agency.ID, nil).fetch(ctx, s.store.Bookings)
	if err != nil {
		return nil, err
	}

	views, err := ToViews(records)
	if err != nil {
		s.logger.WithError(err).WithField("agency_id", agency.ID).Error("Broken booking reference")
		return nil, err
	}
	return views, nil
}

func validateBusRequest(req *models.BusRequest) (models.BusType, error) {
	if err := req.Validate(); err != nil {
		return "", invalid(CodeInvalidRequest, "%s", err.Error())
	}

	busType, ok := models.ParseBusType(req.BusType)
	if !ok {
		return "", invalid(CodeInvalidBusType, "unknown bus type %q", req.BusType)
	}
	return busType, nil
}

func loadSchedule(ctx context.Context, store *database.Store, scheduleID uuid.UUID) (*models.Schedule, error) {
	schedule, err := store.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeScheduleNotFound, "schedule not found")
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return schedule, nil
}

func resolveCity(ctx context.Context, store *database.Store, name string) (*models.City, error) {
	name = strings.TrimSpace(name)

	city, err := store.Cities.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeCityNotFound, "city %q not found", name)
		}
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	return city, nil
}

// busWriteError maps constraint violations of a bus write
func busWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, database.ErrDuplicate):
		return conflict(CodeDuplicate, "registration number already in use")
	case errors.Is(err, sql.ErrNoRows):
		return notFound(CodeBusNotFound, "bus not found")
	}
	return fmt.Errorf("%s: %w", msg, err)
}
