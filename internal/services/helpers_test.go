package services

import (
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var (
	userCols     = []string{"id", "email", "password_hash", "first_name", "last_name", "phone", "role", "status", "created_at", "updated_at"}
	agencyCols   = []string{"id", "user_id", "agency_name", "created_at"}
	busCols      = []string{"id", "agency_id", "registration_no", "bus_type", "capacity", "created_at", "updated_at"}
	cityCols     = []string{"id", "city_name", "created_at"}
	scheduleCols = []string{
		"id", "bus_id", "departure_time", "arrival_time", "base_fare",
		"source_city_id", "dest_city_id", "created_at", "updated_at",
		"source_city_name", "dest_city_name",
	}
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return database.NewStore(sqlx.NewDb(mockDB, "postgres")), mock
}

// expectAgency queues the two lookups ResolveAgency performs for an actor
// that controls agencyID
func expectAgency(mock sqlmock.Sqlmock, actorID, agencyID uuid.UUID) {
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(actorID).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(
			actorID.String(), "agent@goswift.test", "hash", "Ruwan", "Jayasinghe", nil,
			"ROLE_AGENT", "ACTIVE", now, now,
		))
	mock.ExpectQuery(`FROM agencies\s+WHERE user_id = \$1`).
		WithArgs(actorID).
		WillReturnRows(sqlmock.NewRows(agencyCols).AddRow(agencyID.String(), actorID.String(), "Ruwan Travels", now))
}

func expectLockedBus(mock sqlmock.Sqlmock, busID, agencyID uuid.UUID) {
	now := time.Now()
	mock.ExpectQuery(`FROM buses WHERE id = \$1 FOR UPDATE`).
		WithArgs(busID).
		WillReturnRows(sqlmock.NewRows(busCols).AddRow(busID.String(), agencyID.String(), "NC-4455", "AC_SEATER", 45, now, now))
}

func expectCity(mock sqlmock.Sqlmock, name string) uuid.UUID {
	id := uuid.New()
	mock.ExpectQuery(`FROM cities WHERE city_name = \$1`).
		WithArgs(name).
		WillReturnRows(sqlmock.NewRows(cityCols).AddRow(id.String(), name, time.Now()))
	return id
}

// at returns a fixed day at the given hour, UTC
func at(hour int) time.Time {
	return time.Date(2026, 5, 4, hour, 0, 0, 0, time.UTC)
}
