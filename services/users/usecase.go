package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// UserUC defines the interface for the user/vehicle directory. The trip and
// booking lifecycle managers consume the lookup subset of this interface.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/yavijexpress/services/users UserUC
type UserUC interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetUserVehicles(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error)
	IncrementTotalRides(ctx context.Context, userID uuid.UUID) error

	// PurgeUser removes the user and everything tied to them: vehicles, trips
	// they drive and bookings they placed. This is the only place cascaded
	// deletion lives; lifecycle operations never delete rows.
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}
