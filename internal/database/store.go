package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store groups the repositories of the directory and provides the
// transaction boundary used by multi-step mutations.
type Store struct {
	db *sqlx.DB
	tx *sqlx.Tx

	Users     *UserRepository
	Agencies  *AgencyRepository
	Cities    *CityRepository
	Buses     *BusRepository
	Schedules *ScheduleRepository
	Bookings  *BookingRepository
	Configs   *SystemConfigRepository

	Audit         *AuditRepository
	LoginAttempts *LoginAttemptRepository
}

// NewStore creates a Store whose repositories run directly on db
func NewStore(db *sqlx.DB) *Store {
	return newStore(db, nil, db)
}

func newStore(db *sqlx.DB, tx *sqlx.Tx, q Queryer) *Store {
	return &Store{
		db:        db,
		tx:        tx,
		Users:     NewUserRepository(q),
		Agencies:  NewAgencyRepository(q),
		Cities:    NewCityRepository(q),
		Buses:     NewBusRepository(q),
		Schedules: NewScheduleRepository(q),
		Bookings:  NewBookingRepository(q),
		Configs:   NewSystemConfigRepository(q),

		Audit:         NewAuditRepository(q),
		LoginAttempts: NewLoginAttemptRepository(q),
	}
}

// WithTx runs fn with a Store bound to a single transaction. The transaction
// commits only if fn returns nil. Calling WithTx on a Store that is already
// transactional reuses the open transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks the underlying connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
