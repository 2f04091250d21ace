package database

import (
	"context"
	"fmt"

	"github.com/goswift/booking-backend/internal/models"
)

// CityRepository handles database operations for cities
type CityRepository struct {
	db Queryer
}

// NewCityRepository creates a new CityRepository
func NewCityRepository(db Queryer) *CityRepository {
	return &CityRepository{db: db}
}

// Create inserts a city. Returns ErrDuplicate if the name is taken.
func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	query := r.db.Rebind(`INSERT INTO cities (id, city_name, created_at) VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, city.ID, city.CityName, city.CreatedAt); err != nil {
		return translateError(err)
	}
	return nil
}

// GetByName looks a city up by its unique name. Returns sql.ErrNoRows if absent.
func (r *CityRepository) GetByName(ctx context.Context, name string) (*models.City, error) {
	query := r.db.Rebind(`SELECT id, city_name, created_at FROM cities WHERE city_name = ?`)

	var city models.City
	if err := r.db.GetContext(ctx, &city, query, name); err != nil {
		return nil, err
	}
	return &city, nil
}

// List returns all cities ordered by name
func (r *CityRepository) List(ctx context.Context) ([]models.City, error) {
	cities := []models.City{}
	if err := r.db.SelectContext(ctx, &cities, `SELECT id, city_name, created_at FROM cities ORDER BY city_name`); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}
