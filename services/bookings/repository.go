package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/yavijexpress/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// GetActiveByTripAndPassenger returns the passenger's non-cancelled booking
	// on the trip, or nil when there is none
	GetActiveByTripAndPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Booking, error)

	// ConfirmBooking moves a PENDING booking to CONFIRMED and stores the pickup
	// OTP. A false result means the booking was no longer pending.
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, otp string) (bool, error)

	// TransitionStatus conditionally moves a booking between statuses; a
	// CANCELLED target also stamps cancelled_at. False means the booking was
	// not in the expected status, so terminal states are never overwritten.
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, expected, next models.BookingStatus) (bool, error)

	// MarkPickupVerified stamps pickup_verified_at on a CONFIRMED booking
	MarkPickupVerified(ctx context.Context, bookingID uuid.UUID) (bool, error)

	GetBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)
	GetBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)
	GetBookingsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error)
	GetConfirmedByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)
	CountConfirmedSeats(ctx context.Context, tripID uuid.UUID) (int, error)

	// GetStalePendingBookings lists PENDING bookings booked before the cutoff
	GetStalePendingBookings(ctx context.Context, cutoff time.Time) ([]*models.Booking, error)

	// GetPaymentByBookingID returns the booking's payment, or nil when unpaid
	GetPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
}
