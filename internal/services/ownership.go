package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/models"
)

// ResolveAgency maps an actor to the agency it controls. It fails with
// USER_NOT_FOUND when the actor does not exist and AGENCY_NOT_FOUND when no
// agency is bound to it.
func ResolveAgency(ctx context.Context, store *database.Store, actorID uuid.UUID) (*models.Agency, error) {
	if _, err := store.Users.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	agency, err := store.Agencies.GetByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeAgencyNotFound, "no agency for user")
		}
		return nil, fmt.Errorf("failed to load agency: %w", err)
	}

	return agency, nil
}

// ownedBus loads a bus and checks it belongs to agency. With lock set the bus
// row stays locked until the surrounding transaction ends.
func ownedBus(ctx context.Context, store *database.Store, agency *models.Agency, busID uuid.UUID, lock bool) (*models.Bus, error) {
	get := store.Buses.GetByID
	if lock {
		get = store.Buses.GetByIDForUpdate
	}

	bus, err := get(ctx, busID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(CodeBusNotFound, "bus not found")
		}
		return nil, fmt.Errorf("failed to load bus: %w", err)
	}

	if bus.AgencyID != agency.ID {
		return nil, unauthorized(CodeNotOwner, "bus does not belong to your agency")
	}

	return bus, nil
}
