package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleRequest(busID uuid.UUID, from, to int) *models.ScheduleRequest {
	return &models.ScheduleRequest{
		BusID:         busID,
		DepartureTime: at(from),
		ArrivalTime:   at(to),
		BaseFare:      decimal.NewFromInt(1800),
		SourceCity:    "Colombo",
		DestCity:      "Kandy",
	}
}

// existingSchedules queues the bus's current schedules
func existingSchedules(mock sqlmock.Sqlmock, busID uuid.UUID, intervals ...[2]int) {
	rows := sqlmock.NewRows(scheduleCols)
	now := time.Now()
	for _, iv := range intervals {
		rows.AddRow(
			uuid.NewString(), busID.String(), at(iv[0]), at(iv[1]), "1800",
			uuid.NewString(), uuid.NewString(), now, now, "Colombo", "Kandy",
		)
	}
	mock.ExpectQuery(`WHERE s.bus_id = \$1 ORDER BY s.departure_time`).
		WithArgs(busID).
		WillReturnRows(rows)
}

func TestResolveAgency(t *testing.T) {
	ctx := context.Background()

	t.Run("User Not Found", func(t *testing.T) {
		store, mock := newTestStore(t)
		actorID := uuid.New()

		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(actorID).
			WillReturnRows(sqlmock.NewRows(userCols))

		agency, err := ResolveAgency(ctx, store, actorID)
		assert.Nil(t, agency)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeUserNotFound, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Agency For User", func(t *testing.T) {
		store, mock := newTestStore(t)
		actorID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(actorID).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(
				actorID.String(), "c@goswift.test", "h", "C", "C", nil, "ROLE_CUSTOMER", "ACTIVE", now, now))
		mock.ExpectQuery(`FROM agencies`).
			WithArgs(actorID).
			WillReturnRows(sqlmock.NewRows(agencyCols))

		_, err := ResolveAgency(ctx, store, actorID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeAgencyNotFound, CodeOf(err))
		assert.Equal(t, "no agency for user", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		store, mock := newTestStore(t)
		actorID, agencyID := uuid.New(), uuid.New()
		expectAgency(mock, actorID, agencyID)

		agency, err := ResolveAgency(ctx, store, actorID)
		require.NoError(t, err)
		assert.Equal(t, agencyID, agency.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddSchedule(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID := uuid.New(), uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		existingSchedules(mock, busID, [2]int{9, 12})
		sourceID := expectCity(mock, "Colombo")
		destID := expectCity(mock, "Kandy")
		mock.ExpectExec(`INSERT INTO schedules`).
			WithArgs(sqlmock.AnyArg(), busID, at(12), at(14), sqlmock.AnyArg(), sourceID, destID, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		schedule, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 12, 14))
		require.NoError(t, err)
		assert.Equal(t, busID, schedule.BusID)
		assert.Equal(t, sourceID, schedule.SourceCityID)
		assert.Equal(t, "Kandy", schedule.DestCityName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Overlap Rolls Back", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		existingSchedules(mock, busID, [2]int{9, 12})
		mock.ExpectRollback()

		schedule, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 11, 13))
		assert.Nil(t, schedule)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, CodeScheduleConflict, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown City Rolls Back", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		existingSchedules(mock, busID)
		expectCity(mock, "Colombo")
		mock.ExpectQuery(`FROM cities WHERE city_name`).
			WithArgs("Kandy").
			WillReturnRows(sqlmock.NewRows(cityCols))
		mock.ExpectRollback()

		_, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 9, 12))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeCityNotFound, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bus Of Another Agency", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, uuid.New())
		mock.ExpectRollback()

		_, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 9, 12))
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, CodeNotOwner, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Bus", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		mock.ExpectQuery(`FROM buses WHERE id = \$1 FOR UPDATE`).
			WithArgs(busID).
			WillReturnRows(sqlmock.NewRows(busCols))
		mock.ExpectRollback()

		_, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 9, 12))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeBusNotFound, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid Interval Never Touches Store", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		_, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 14, 12))
		assert.ErrorIs(t, err, ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Bus B1 runs 09:00-12:00. 11:00-13:00 is rejected; 12:00-14:00 is accepted.
func TestAddScheduleTouchingBoundaryScenario(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID := uuid.New(), uuid.New(), uuid.New()
	store, mock := newTestStore(t)
	svc := NewAgentService(store, testLogger())

	mock.ExpectBegin()
	expectAgency(mock, actorID, agencyID)
	expectLockedBus(mock, busID, agencyID)
	existingSchedules(mock, busID, [2]int{9, 12})
	mock.ExpectRollback()

	_, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 11, 13))
	require.ErrorIs(t, err, ErrConflict)

	mock.ExpectBegin()
	expectAgency(mock, actorID, agencyID)
	expectLockedBus(mock, busID, agencyID)
	existingSchedules(mock, busID, [2]int{9, 12})
	expectCity(mock, "Colombo")
	expectCity(mock, "Kandy")
	mock.ExpectExec(`INSERT INTO schedules`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	schedule, err := svc.AddSchedule(ctx, actorID, scheduleRequest(busID, 12, 14))
	require.NoError(t, err)
	assert.Equal(t, at(12), schedule.DepartureTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddBus(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		expectAgency(mock, actorID, agencyID)
		mock.ExpectExec(`INSERT INTO buses`).
			WithArgs(sqlmock.AnyArg(), agencyID, "NC-4455", models.BusTypeNonACSeater, 50, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		bus, err := svc.AddBus(ctx, actorID, &models.BusRequest{RegistrationNo: " NC-4455 ", BusType: "non_ac_seater", Capacity: 50})
		require.NoError(t, err)
		assert.Equal(t, agencyID, bus.AgencyID)
		assert.Equal(t, "NC-4455", bus.RegistrationNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Bus Type", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		_, err := svc.AddBus(ctx, actorID, &models.BusRequest{RegistrationNo: "NC-1", BusType: "DOUBLE_DECKER", Capacity: 80})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, CodeInvalidBusType, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Registration", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		expectAgency(mock, actorID, agencyID)
		mock.ExpectExec(`INSERT INTO buses`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := svc.AddBus(ctx, actorID, &models.BusRequest{RegistrationNo: "NC-1", BusType: "AC_SEATER", Capacity: 40})
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, CodeDuplicate, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBus(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID := uuid.New(), uuid.New(), uuid.New()
	req := &models.BusRequest{RegistrationNo: "NC-9999", BusType: "AC_SLEEPER", Capacity: 32}

	t.Run("Owner Overwrites Fields", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		mock.ExpectExec(`UPDATE buses`).
			WithArgs("NC-9999", models.BusTypeACSleeper, 32, sqlmock.AnyArg(), busID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		bus, err := svc.UpdateBus(ctx, actorID, busID, req)
		require.NoError(t, err)
		assert.Equal(t, models.BusTypeACSleeper, bus.BusType)
		assert.Equal(t, 32, bus.Capacity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// An agent of AG2 targeting a bus of AG1 is rejected and nothing is written
	t.Run("Other Agency Is Rejected", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, uuid.New())
		mock.ExpectRollback()

		_, err := svc.UpdateBus(ctx, actorID, busID, req)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteBus(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID := uuid.New(), uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		mock.ExpectExec(`DELETE FROM buses`).WithArgs(busID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, svc.DeleteBus(ctx, actorID, busID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent Bus", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		mock.ExpectQuery(`FROM buses WHERE id`).WithArgs(busID).WillReturnRows(sqlmock.NewRows(busCols))
		mock.ExpectRollback()

		err := svc.DeleteBus(ctx, actorID, busID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bus With Schedules", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectLockedBus(mock, busID, agencyID)
		mock.ExpectExec(`DELETE FROM buses`).WithArgs(busID).WillReturnError(&pq.Error{Code: "23503"})
		mock.ExpectRollback()

		err := svc.DeleteBus(ctx, actorID, busID)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, CodeInUse, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func expectSchedule(mock sqlmock.Sqlmock, scheduleID, busID uuid.UUID, from, to int) {
	now := time.Now()
	mock.ExpectQuery(`WHERE s.id = \$1`).
		WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows(scheduleCols).AddRow(
			scheduleID.String(), busID.String(), at(from), at(to), "1800",
			uuid.NewString(), uuid.NewString(), now, now, "Colombo", "Kandy",
		))
}

func TestUpdateSchedule(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID, scheduleID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("Same Cities Skip Lookup", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectSchedule(mock, scheduleID, busID, 9, 12)
		expectLockedBus(mock, busID, agencyID)
		mock.ExpectExec(`UPDATE schedules`).
			WithArgs(at(9), at(12), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), scheduleID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := scheduleRequest(uuid.Nil, 9, 12)
		req.BaseFare = decimal.NewFromInt(2000)

		schedule, err := svc.UpdateSchedule(ctx, actorID, scheduleID, req)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2000).Equal(schedule.BaseFare))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Changed City Is Resolved", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectSchedule(mock, scheduleID, busID, 9, 12)
		expectLockedBus(mock, busID, agencyID)
		galleID := expectCity(mock, "Galle")
		mock.ExpectExec(`UPDATE schedules`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := scheduleRequest(uuid.Nil, 9, 12)
		req.DestCity = "Galle"

		schedule, err := svc.UpdateSchedule(ctx, actorID, scheduleID, req)
		require.NoError(t, err)
		assert.Equal(t, galleID, schedule.DestCityID)
		assert.Equal(t, "Galle", schedule.DestCityName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("New Times Exclude Itself", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectSchedule(mock, scheduleID, busID, 9, 12)
		expectLockedBus(mock, busID, agencyID)
		now := time.Now()
		mock.ExpectQuery(`WHERE s.bus_id = \$1`).
			WithArgs(busID).
			WillReturnRows(sqlmock.NewRows(scheduleCols).
				AddRow(scheduleID.String(), busID.String(), at(9), at(12), "1800",
					uuid.NewString(), uuid.NewString(), now, now, "Colombo", "Kandy").
				AddRow(uuid.NewString(), busID.String(), at(14), at(16), "1800",
					uuid.NewString(), uuid.NewString(), now, now, "Colombo", "Kandy"))
		mock.ExpectExec(`UPDATE schedules`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := svc.UpdateSchedule(ctx, actorID, scheduleID, scheduleRequest(uuid.Nil, 10, 14))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("New Times Overlap Another", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectSchedule(mock, scheduleID, busID, 9, 12)
		expectLockedBus(mock, busID, agencyID)
		existingSchedules(mock, busID, [2]int{14, 16})
		mock.ExpectRollback()

		_, err := svc.UpdateSchedule(ctx, actorID, scheduleID, scheduleRequest(uuid.Nil, 10, 15))
		assert.ErrorIs(t, err, ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Schedule Not Found", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		mock.ExpectQuery(`WHERE s.id = \$1`).WithArgs(scheduleID).WillReturnRows(sqlmock.NewRows(scheduleCols))
		mock.ExpectRollback()

		_, err := svc.UpdateSchedule(ctx, actorID, scheduleID, scheduleRequest(uuid.Nil, 9, 12))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeScheduleNotFound, CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID, scheduleID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("Has Bookings", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectBegin()
		expectAgency(mock, actorID, agencyID)
		expectSchedule(mock, scheduleID, busID, 9, 12)
		mock.ExpectQuery(`FROM buses WHERE id = \$1`).
			WithArgs(busID).
			WillReturnRows(sqlmock.NewRows(busCols).AddRow(busID.String(), agencyID.String(), "NC-1", "AC_SEATER", 45, time.Now(), time.Now()))
		mock.ExpectExec(`DELETE FROM schedules`).WithArgs(scheduleID).WillReturnError(&pq.Error{Code: "23503"})
		mock.ExpectRollback()

		err := svc.DeleteSchedule(ctx, actorID, scheduleID)
		assert.True(t, errors.Is(err, ErrConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAgencyBookings(t *testing.T) {
	store, mock := newTestStore(t)
	svc := NewAgentService(store, testLogger())
	actorID, agencyID := uuid.New(), uuid.New()

	expectAgency(mock, actorID, agencyID)
	mock.ExpectQuery(`WHERE b.agency_id = \$1`).
		WithArgs(agencyID).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingValues(uuid.New(), agencyID)...))

	views, err := svc.ListAgencyBookings(context.Background(), actorID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, agencyID, views[0].AgencyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMyBusesAndSchedules(t *testing.T) {
	ctx := context.Background()
	actorID, agencyID, busID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	t.Run("Buses Scoped To Agency", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		expectAgency(mock, actorID, agencyID)
		mock.ExpectQuery(`FROM buses\s+WHERE agency_id = \$1`).
			WithArgs(agencyID).
			WillReturnRows(sqlmock.NewRows(busCols).
				AddRow(busID.String(), agencyID.String(), "NC-4455", "AC_SEATER", 45, now, now))

		buses, err := svc.ListMyBuses(ctx, actorID)
		require.NoError(t, err)
		require.Len(t, buses, 1)
		assert.Equal(t, busID, buses[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Schedules Scoped To Agency", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		expectAgency(mock, actorID, agencyID)
		mock.ExpectQuery(`WHERE b.agency_id = \$1`).
			WithArgs(agencyID).
			WillReturnRows(sqlmock.NewRows(scheduleCols).AddRow(
				uuid.NewString(), busID.String(), at(9), at(12), "1800",
				uuid.NewString(), uuid.NewString(), now, now, "Colombo", "Kandy",
			))

		schedules, err := svc.ListMySchedules(ctx, actorID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "Kandy", schedules[0].DestCityName)
		assert.Equal(t, at(9), schedules[0].DepartureTime)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Actor Without Agency", func(t *testing.T) {
		store, mock := newTestStore(t)
		svc := NewAgentService(store, testLogger())

		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(actorID).
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err := svc.ListMySchedules(ctx, actorID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
