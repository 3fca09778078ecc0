package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

func newBookingRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewBookingRepository(&models.Config{}, sqlxDB), mock
}

func TestConfirmBooking_StoresOtpWhilePending(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusConfirmed, "482913", bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ConfirmBooking(context.Background(), bookingID, "482913")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmBooking_NoLongerPending(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusConfirmed, "123456", bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ConfirmBooking(context.Background(), bookingID, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_CancelStampsCancelledAt(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status = \\$1, cancelled_at = NOW\\(\\)").
		WithArgs(models.BookingStatusCancelled, bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.TransitionStatus(context.Background(), bookingID, models.BookingStatusPending, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_CompleteWithoutCancelledAt(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE").
		WithArgs(models.BookingStatusCompleted, bookingID, models.BookingStatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.TransitionStatus(context.Background(), bookingID, models.BookingStatusConfirmed, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPickupVerified_RequiresConfirmed(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.BookingStatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkPickupVerified(context.Background(), bookingID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByTripAndPassenger_NoneIsNil(t *testing.T) {
	repo, mock := newBookingRepo(t)
	tripID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(tripID, passengerID, models.BookingStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.GetActiveByTripAndPassenger(context.Background(), tripID, passengerID)
	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByID_NotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBookingByID(context.Background(), bookingID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountConfirmedSeats(t *testing.T) {
	repo, mock := newBookingRepo(t)
	tripID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(tripID, models.BookingStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5))

	count, err := repo.CountConfirmedSeats(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStalePendingBookings(t *testing.T) {
	repo, mock := newBookingRepo(t)
	cutoff := time.Now().Add(-30 * time.Minute)
	bookingID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "passenger_id", "seats_booked", "total_amount", "status",
		"pickup_otp", "pickup_verified_at", "special_requests", "booked_at",
		"cancelled_at", "payment_id",
	}).AddRow(
		bookingID, uuid.New(), uuid.New(), 2, 200000.0, models.BookingStatusPending,
		nil, nil, "", cutoff.Add(-10*time.Minute), nil, nil,
	)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(models.BookingStatusPending, cutoff).
		WillReturnRows(rows)

	found, err := repo.GetStalePendingBookings(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bookingID, found[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentByBookingID_UnpaidIsNil(t *testing.T) {
	repo, mock := newBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payment, err := repo.GetPaymentByBookingID(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Nil(t, payment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
