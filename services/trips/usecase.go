package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/yavijexpress/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, driverID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error)
	CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) error
	StartTrip(ctx context.Context, tripID uuid.UUID, req *models.SoberDeclarationRequest) error
	CompleteTrip(ctx context.Context, tripID uuid.UUID) error
	CheckAndUpdateTripStatuses(ctx context.Context) error
	SearchTrips(ctx context.Context, req *models.TripSearchRequest) ([]*models.TripResponse, error)
	GetDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.TripResponse, error)
	GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripResponse, error)
	GetUpcomingTrips(ctx context.Context) ([]*models.TripResponse, error)
}

// BookingLifecycle is the subset of booking lifecycle operations the trip
// manager drives when a trip is cancelled, completed or resized
type BookingLifecycle interface {
	CancelBookingsForTrip(ctx context.Context, tripID uuid.UUID, reason string) ([]*models.Booking, error)
	CompleteBookingsForTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)
	ConfirmedSeatCount(ctx context.Context, tripID uuid.UUID) (int, error)
	ConfirmedPassengerIDs(ctx context.Context, tripID uuid.UUID) ([]uuid.UUID, error)
}

// UserDirectory resolves users and vehicles and tracks completed ride counts
type UserDirectory interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	IncrementTotalRides(ctx context.Context, userID uuid.UUID) error
}
