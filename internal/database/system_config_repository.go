package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goswift/booking-backend/internal/models"
	"github.com/shopspring/decimal"
)

// SystemConfigRepository handles the keyed configuration row
type SystemConfigRepository struct {
	db Queryer
}

// NewSystemConfigRepository creates a new SystemConfigRepository
func NewSystemConfigRepository(db Queryer) *SystemConfigRepository {
	return &SystemConfigRepository{db: db}
}

// Get retrieves the configuration stored under key. Returns sql.ErrNoRows if absent.
func (r *SystemConfigRepository) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	query := r.db.Rebind(`
		SELECT config_key, service_tax_pct, booking_fee, updated_at
		FROM system_config
		WHERE config_key = ?
	`)

	var cfg models.SystemConfig
	if err := r.db.GetContext(ctx, &cfg, query, key); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetOrCreate returns the configuration stored under key, inserting a zero
// valued row first if none exists. A row created concurrently by another
// caller is returned instead of failing.
func (r *SystemConfigRepository) GetOrCreate(ctx context.Context, key string) (*models.SystemConfig, error) {
	cfg, err := r.Get(ctx, key)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get system config: %w", err)
	}

	cfg = &models.SystemConfig{
		ConfigKey:     key,
		ServiceTaxPct: decimal.Zero,
		BookingFee:    decimal.Zero,
		UpdatedAt:     time.Now().UTC(),
	}

	result, err := r.db.ExecContext(ctx, r.insertIfAbsentQuery(), cfg.ConfigKey, cfg.ServiceTaxPct, cfg.BookingFee, cfg.UpdatedAt)
	if err != nil {
		if err = translateError(err); errors.Is(err, ErrDuplicate) {
			return r.getCreatedElsewhere(ctx, key)
		}
		return nil, fmt.Errorf("failed to create system config: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return r.getCreatedElsewhere(ctx, key)
	}

	return cfg, nil
}

// insertIfAbsentQuery leaves an existing row untouched on every supported driver
func (r *SystemConfigRepository) insertIfAbsentQuery() string {
	if r.db.DriverName() == "mysql" {
		return `
			INSERT IGNORE INTO system_config (config_key, service_tax_pct, booking_fee, updated_at)
			VALUES (?, ?, ?, ?)
		`
	}
	return r.db.Rebind(`
		INSERT INTO system_config (config_key, service_tax_pct, booking_fee, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (config_key) DO NOTHING
	`)
}

func (r *SystemConfigRepository) getCreatedElsewhere(ctx context.Context, key string) (*models.SystemConfig, error) {
	cfg, err := r.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to reload system config: %w", err)
	}
	return cfg, nil
}

// Save overwrites the fare parameters of an existing configuration row
func (r *SystemConfigRepository) Save(ctx context.Context, cfg *models.SystemConfig) error {
	query := r.db.Rebind(`
		UPDATE system_config
		SET service_tax_pct = ?, booking_fee = ?, updated_at = ?
		WHERE config_key = ?
	`)

	result, err := r.db.ExecContext(ctx, query, cfg.ServiceTaxPct, cfg.BookingFee, cfg.UpdatedAt, cfg.ConfigKey)
	if err != nil {
		return fmt.Errorf("failed to save system config: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
