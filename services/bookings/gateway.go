package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// BookingGW defines the interface for booking notification publishing.
// Publish failures are returned so the caller can log them, but they must
// never abort the lifecycle operation that triggered the notification.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/yavijexpress/services/bookings BookingGW
type BookingGW interface {
	PublishBookingRequested(ctx context.Context, booking *models.Booking, trip *models.Trip) error
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking, trip *models.Trip, driver *models.User, vehicle *models.Vehicle) error
	PublishBookingDenied(ctx context.Context, booking *models.Booking, trip *models.Trip) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking, trip *models.Trip, reason string) error
}

// PaymentGW triggers refunds at the external payment service. Refund failures
// are surfaced as warnings on the cancellation response, never as a failed
// cancellation.
// go:generate mockgen -destination=mocks/mock_payment.go -package=mocks github.com/piresc/yavijexpress/services/bookings PaymentGW
type PaymentGW interface {
	Refund(ctx context.Context, paymentID uuid.UUID, reason string) error
}
