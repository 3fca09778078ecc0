package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// UserRepo defines the interface for user/vehicle data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/yavijexpress/services/users UserRepo
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error)
	IncrementTotalRides(ctx context.Context, userID uuid.UUID) error

	// PurgeUserData deletes the user row together with their vehicles, driven
	// trips, placed bookings and dependent payments in one transaction
	PurgeUserData(ctx context.Context, userID uuid.UUID) error
}
