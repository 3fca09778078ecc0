package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// BookingUC defines the interface for booking lifecycle business logic.
// The bulk *ForTrip operations are driven by the trip lifecycle manager when a
// trip is cancelled or completed.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/yavijexpress/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, passengerID uuid.UUID, req *models.BookingRequest) (*models.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error)
	DenyBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*models.BookingResponse, error)
	VerifyPickupOtp(ctx context.Context, bookingID uuid.UUID, otp string) (*models.BookingResponse, error)
	AutoCancelPendingBookings(ctx context.Context) error

	GetPassengerBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingResponse, error)
	GetTripBookings(ctx context.Context, tripID uuid.UUID) ([]*models.BookingResponse, error)
	GetDriverBookings(ctx context.Context, driverID uuid.UUID) ([]*models.BookingResponse, error)
	GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error)

	CancelBookingsForTrip(ctx context.Context, tripID uuid.UUID, reason string) ([]*models.Booking, error)
	CompleteBookingsForTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error)
	ConfirmedSeatCount(ctx context.Context, tripID uuid.UUID) (int, error)
	ConfirmedPassengerIDs(ctx context.Context, tripID uuid.UUID) ([]uuid.UUID, error)
}

// TripInventory is the seat/status surface of the trip lifecycle manager.
// Seat inventory is owned by the trip side; bookings never write it directly.
type TripInventory interface {
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) (bool, error)
	RestoreSeats(ctx context.Context, tripID uuid.UUID, seats int) error
}

// UserDirectory resolves users and vehicles and tracks completed ride counts
type UserDirectory interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	IncrementTotalRides(ctx context.Context, userID uuid.UUID) error
}
