package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// BookingRepo provides Postgres-backed booking data access
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, trip_id, passenger_id, seats_booked, total_amount, status,
	pickup_otp, pickup_verified_at, special_requests, booked_at,
	cancelled_at, payment_id
`

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, trip_id, passenger_id, seats_booked, total_amount, status,
			special_requests, booked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.SeatsBooked,
		booking.TotalAmount,
		booking.Status,
		booking.SpecialRequests,
		booking.BookedAt,
	)

	return err
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking := &models.Booking{}
	err := r.db.GetContext(ctx, booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("Booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// GetActiveByTripAndPassenger returns the passenger's non-cancelled booking on
// the trip, or nil when there is none
func (r *BookingRepo) GetActiveByTripAndPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE trip_id = $1 AND passenger_id = $2 AND status != $3
		LIMIT 1
	`

	booking := &models.Booking{}
	err := r.db.GetContext(ctx, booking, query, tripID, passengerID, models.BookingStatusCancelled)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}

	return booking, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED and stores its pickup OTP
func (r *BookingRepo) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, otp string) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, pickup_otp = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.BookingStatusConfirmed, otp, bookingID, models.BookingStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to confirm booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// TransitionStatus conditionally moves a booking between statuses. A CANCELLED
// target also stamps cancelled_at; zero rows affected means the booking was
// not in the expected status.
func (r *BookingRepo) TransitionStatus(ctx context.Context, bookingID uuid.UUID, expected, next models.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`
	if next == models.BookingStatusCancelled {
		query = `UPDATE bookings SET status = $1, cancelled_at = NOW() WHERE id = $2 AND status = $3`
	}

	result, err := r.db.ExecContext(ctx, query, next, bookingID, expected)
	if err != nil {
		return false, fmt.Errorf("failed to transition booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// MarkPickupVerified stamps pickup_verified_at on a CONFIRMED booking
func (r *BookingRepo) MarkPickupVerified(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET pickup_verified_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, bookingID, models.BookingStatusConfirmed)
	if err != nil {
		return false, fmt.Errorf("failed to mark pickup verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetBookingsByPassenger retrieves all bookings placed by a passenger, newest first
func (r *BookingRepo) GetBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE passenger_id = $1 ORDER BY booked_at DESC`

	found := []*models.Booking{}
	err := r.db.SelectContext(ctx, &found, query, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list passenger bookings: %w", err)
	}

	return found, nil
}

// GetBookingsByTrip retrieves all bookings on a trip
func (r *BookingRepo) GetBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE trip_id = $1 ORDER BY booked_at ASC`

	found := []*models.Booking{}
	err := r.db.SelectContext(ctx, &found, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip bookings: %w", err)
	}

	return found, nil
}

// GetBookingsByDriver retrieves bookings across all trips offered by a driver
func (r *BookingRepo) GetBookingsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error) {
	query := `
		SELECT b.id, b.trip_id, b.passenger_id, b.seats_booked, b.total_amount,
		       b.status, b.pickup_otp, b.pickup_verified_at, b.special_requests,
		       b.booked_at, b.cancelled_at, b.payment_id
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE t.driver_id = $1
		ORDER BY b.booked_at DESC
	`

	found := []*models.Booking{}
	err := r.db.SelectContext(ctx, &found, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver bookings: %w", err)
	}

	return found, nil
}

// GetConfirmedByTrip retrieves the CONFIRMED bookings on a trip
func (r *BookingRepo) GetConfirmedByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE trip_id = $1 AND status = $2
		ORDER BY booked_at ASC
	`

	found := []*models.Booking{}
	err := r.db.SelectContext(ctx, &found, query, tripID, models.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}

	return found, nil
}

// CountConfirmedSeats sums the seats held by CONFIRMED bookings on a trip
func (r *BookingRepo) CountConfirmedSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(seats_booked), 0)
		FROM bookings
		WHERE trip_id = $1 AND status = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, tripID, models.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed seats: %w", err)
	}

	return count, nil
}

// GetStalePendingBookings lists PENDING bookings booked before the cutoff
func (r *BookingRepo) GetStalePendingBookings(ctx context.Context, cutoff time.Time) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND booked_at < $2
		ORDER BY booked_at ASC
	`

	found := []*models.Booking{}
	err := r.db.SelectContext(ctx, &found, query, models.BookingStatusPending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending bookings: %w", err)
	}

	return found, nil
}

// GetPaymentByBookingID returns the booking's payment, or nil when unpaid
func (r *BookingRepo) GetPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	payment := &models.Payment{}
	err := r.db.GetContext(ctx, payment, query, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking payment: %w", err)
	}

	return payment, nil
}
