package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleRowColumns = []string{
	"id", "bus_id", "departure_time", "arrival_time", "base_fare",
	"source_city_id", "dest_city_id", "created_at", "updated_at",
	"source_city_name", "dest_city_name",
}

func TestListSchedulesByBus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)
	busID := uuid.New()
	dep := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`FROM schedules s (.+) WHERE s.bus_id = \$1 ORDER BY s.departure_time`).
		WithArgs(busID).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns).AddRow(
			uuid.NewString(), busID.String(), dep, dep.Add(3*time.Hour), "1250.50",
			uuid.NewString(), uuid.NewString(), now, now,
			"Colombo", "Kandy",
		))

	schedules, err := repo.ListByBus(context.Background(), busID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(schedules[0].BaseFare))
	assert.Equal(t, "Colombo", schedules[0].SourceCityName)
	assert.Equal(t, "Kandy", schedules[0].DestCityName)
	assert.Equal(t, dep, schedules[0].DepartureTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSchedulesByAgency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)
	agencyID := uuid.New()

	mock.ExpectQuery(`JOIN buses b ON b.id = s.bus_id\s+WHERE b.agency_id = \$1`).
		WithArgs(agencyID).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns))

	schedules, err := repo.ListByAgency(context.Background(), agencyID)
	require.NoError(t, err)
	assert.Empty(t, schedules)
	assert.NotNil(t, schedules)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScheduleByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)
	scheduleID := uuid.New()

	mock.ExpectQuery(`WHERE s.id = \$1`).
		WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns))

	schedule, err := repo.GetByID(context.Background(), scheduleID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, schedule)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAndUpdateSchedule(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	dep := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	schedule := &models.Schedule{
		ID:            uuid.New(),
		BusID:         uuid.New(),
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2 * time.Hour),
		BaseFare:      decimal.NewFromInt(900),
		SourceCityID:  uuid.New(),
		DestCityID:    uuid.New(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	mock.ExpectExec(`INSERT INTO schedules`).
		WithArgs(schedule.ID, schedule.BusID, dep, dep.Add(2*time.Hour), sqlmock.AnyArg(),
			schedule.SourceCityID, schedule.DestCityID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, schedule))

	mock.ExpectExec(`UPDATE schedules`).
		WithArgs(dep, dep.Add(2*time.Hour), sqlmock.AnyArg(), schedule.SourceCityID, schedule.DestCityID, sqlmock.AnyArg(), schedule.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, schedule), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSchedule(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)
	scheduleID := uuid.New()

	mock.ExpectExec(`DELETE FROM schedules WHERE id = \$1`).
		WithArgs(scheduleID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), scheduleID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
