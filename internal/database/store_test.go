package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM buses`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
		mock.ExpectCommit()

		err := store.WithTx(ctx, func(tx *Store) error {
			_, err := tx.Buses.Count(ctx)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback On Error", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := store.WithTx(ctx, func(tx *Store) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nested Reuses Transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := store.WithTx(ctx, func(tx *Store) error {
			return tx.WithTx(ctx, func(inner *Store) error {
				assert.Same(t, tx, inner)
				return nil
			})
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

var configRowColumns = []string{"config_key", "service_tax_pct", "booking_fee", "updated_at"}

func TestSystemConfigGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSystemConfigRepository(db)

		mock.ExpectQuery(`FROM system_config\s+WHERE config_key = \$1`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns).AddRow("global", "5.00", "25.00", time.Now()))

		cfg, err := repo.GetOrCreate(ctx, models.GlobalConfigKey)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(cfg.ServiceTaxPct))
		assert.True(t, decimal.NewFromInt(25).Equal(cfg.BookingFee))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent Is Created", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSystemConfigRepository(db)

		mock.ExpectQuery(`FROM system_config`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns))
		mock.ExpectExec(`INSERT INTO system_config[\s\S]+ON CONFLICT \(config_key\) DO NOTHING`).
			WithArgs(models.GlobalConfigKey, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		cfg, err := repo.GetOrCreate(ctx, models.GlobalConfigKey)
		require.NoError(t, err)
		assert.Equal(t, models.GlobalConfigKey, cfg.ConfigKey)
		assert.True(t, cfg.ServiceTaxPct.IsZero())
		assert.True(t, cfg.BookingFee.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Created Concurrently", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSystemConfigRepository(db)

		mock.ExpectQuery(`FROM system_config`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns))
		mock.ExpectExec(`INSERT INTO system_config`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`FROM system_config`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns).AddRow("global", "7.50", "10.00", time.Now()))

		cfg, err := repo.GetOrCreate(ctx, models.GlobalConfigKey)
		require.NoError(t, err)
		assert.Equal(t, "7.5", cfg.ServiceTaxPct.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique Violation Reloads Row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSystemConfigRepository(db)

		mock.ExpectQuery(`FROM system_config`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns))
		mock.ExpectExec(`INSERT INTO system_config`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "system_config_pkey"})
		mock.ExpectQuery(`FROM system_config`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns).AddRow("global", "0", "0", time.Now()))

		cfg, err := repo.GetOrCreate(ctx, models.GlobalConfigKey)
		require.NoError(t, err)
		assert.Equal(t, models.GlobalConfigKey, cfg.ConfigKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MySQL Uses Insert Ignore", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()
		repo := NewSystemConfigRepository(sqlx.NewDb(mockDB, "mysql"))

		mock.ExpectQuery(`FROM system_config\s+WHERE config_key = \?`).
			WithArgs(models.GlobalConfigKey).
			WillReturnRows(sqlmock.NewRows(configRowColumns))
		mock.ExpectExec(`INSERT IGNORE INTO system_config`).
			WithArgs(models.GlobalConfigKey, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		cfg, err := repo.GetOrCreate(ctx, models.GlobalConfigKey)
		require.NoError(t, err)
		assert.True(t, cfg.BookingFee.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSystemConfigSave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSystemConfigRepository(db)

	cfg := &models.SystemConfig{
		ConfigKey:     models.GlobalConfigKey,
		ServiceTaxPct: decimal.NewFromInt(8),
		BookingFee:    decimal.NewFromInt(30),
		UpdatedAt:     time.Now(),
	}

	mock.ExpectExec(`UPDATE system_config`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), models.GlobalConfigKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), cfg))
	assert.NoError(t, mock.ExpectationsWereMet())
}
