package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// TripGW defines the interface for trip notification publishing.
// Publish failures are returned so the caller can log them, but they must
// never abort the lifecycle operation that triggered the notification.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/yavijexpress/services/trips TripGW
type TripGW interface {
	PublishTripCreated(ctx context.Context, trip *models.Trip) error
	PublishTripUpdated(ctx context.Context, trip *models.Trip, passengerIDs []uuid.UUID) error
	PublishTripCancelled(ctx context.Context, trip *models.Trip, reason string, passengerIDs []uuid.UUID) error
	PublishTripStarted(ctx context.Context, trip *models.Trip) error
	PublishTripCompleted(ctx context.Context, trip *models.Trip, passengerIDs []uuid.UUID) error
}
