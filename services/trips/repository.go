package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations.
// It is the only component allowed to write a trip's seat inventory and status.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/yavijexpress/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// UpdateTripStatus transitions a trip from an expected status to the next
	// one. It returns false without error when the trip was no longer in the
	// expected status, so stale writers cannot overwrite a terminal state.
	UpdateTripStatus(ctx context.Context, tripID uuid.UUID, expected, next models.TripStatus) (bool, error)

	// MarkTripStarted records the sober declaration and moves a SCHEDULED trip
	// to ONGOING in a single conditional write.
	MarkTripStarted(ctx context.Context, tripID uuid.UUID) (bool, error)

	// ReserveSeats conditionally decrements available seats on a bookable trip.
	// It returns false without error when the trip had fewer seats available,
	// which the caller reports as an insufficient-seats conflict.
	ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) (bool, error)
	RestoreSeats(ctx context.Context, tripID uuid.UUID, seats int) error

	SearchTrips(ctx context.Context, req *models.TripSearchRequest) ([]*models.Trip, error)
	GetTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	GetTripsDepartingBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error)

	// Batch sweep transitions, idempotent under repeated invocation
	AdvanceDepartedTrips(ctx context.Context, now time.Time) (int64, error)
	CompleteArrivedTrips(ctx context.Context, now time.Time) (int64, error)
}
