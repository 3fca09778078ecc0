package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/bookings"
	"github.com/piresc/yavijexpress/services/bookings/mocks"
)

type bookingUCFixture struct {
	cfg         *models.Config
	bookingRepo *mocks.MockBookingRepo
	bookingGW   *mocks.MockBookingGW
	paymentGW   *mocks.MockPaymentGW
	trips       *mocks.MockTripInventory
	users       *mocks.MockUserDirectory
	uc          bookings.BookingUC
}

func newBookingUCFixture(t *testing.T) (*bookingUCFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{}
	cfg.Trips.MinLeadMinutes = 30
	cfg.Bookings.PendingTimeoutMinutes = 30

	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	f := &bookingUCFixture{
		cfg:         cfg,
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		bookingGW:   mocks.NewMockBookingGW(ctrl),
		paymentGW:   mocks.NewMockPaymentGW(ctrl),
		trips:       mocks.NewMockTripInventory(ctrl),
		users:       mocks.NewMockUserDirectory(ctrl),
	}
	f.uc = NewBookingUC(cfg, f.bookingRepo, f.bookingGW, f.paymentGW, f.trips, f.users, log)
	return f, ctrl
}

func (f *bookingUCFixture) allowEnrichment(trip *models.Trip) {
	f.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).
		Return(&models.User{Name: "Siti", Mobile: "+628222222222"}, nil).AnyTimes()
	f.users.EXPECT().GetVehicle(gomock.Any(), gomock.Any()).
		Return(&models.Vehicle{Model: "Avanza", VehicleNumber: "B 1234 XY"}, nil).AnyTimes()
	f.trips.EXPECT().GetTripByID(gomock.Any(), gomock.Any()).Return(trip, nil).AnyTimes()
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func bookableTrip(tripID, driverID uuid.UUID, availableSeats int) *models.Trip {
	return &models.Trip{
		ID:             tripID,
		FromLocation:   "Jakarta",
		ToLocation:     "Bandung",
		DepartureTime:  time.Now().Add(2 * time.Hour),
		PricePerSeat:   100000,
		TotalSeats:     4,
		AvailableSeats: availableSeats,
		Status:         models.TripStatusScheduled,
		IsActive:       true,
		DriverID:       driverID,
		VehicleID:      uuid.New(),
	}
}

// Exercises the seat inventory invariant on a 4-seat trip: a 3-seat booking
// leaves 1 available, a 2-seat request is refused, a 1-seat booking exhausts
// the inventory.
func TestCreateBooking_SeatInventorySequence(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	driverID := uuid.New()
	trip := bookableTrip(tripID, driverID, 4)
	f.allowEnrichment(trip)

	available := 4
	f.trips.EXPECT().ReserveSeats(gomock.Any(), tripID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, seats int) (bool, error) {
			if available < seats {
				return false, nil
			}
			available -= seats
			return true, nil
		}).Times(3)
	f.bookingRepo.EXPECT().GetActiveByTripAndPassenger(gomock.Any(), tripID, gomock.Any()).
		Return(nil, nil).Times(3)
	f.bookingRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.bookingGW.EXPECT().PublishBookingRequested(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	first, err := f.uc.CreateBooking(context.Background(), uuid.New(), &models.BookingRequest{
		TripID: tripID.String(), Seats: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, first.Status)
	assert.Equal(t, float64(300000), first.TotalAmount)

	_, err = f.uc.CreateBooking(context.Background(), uuid.New(), &models.BookingRequest{
		TripID: tripID.String(), Seats: 2,
	})
	assert.True(t, apperrors.IsConflict(err))

	third, err := f.uc.CreateBooking(context.Background(), uuid.New(), &models.BookingRequest{
		TripID: tripID.String(), Seats: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, third.SeatsBooked)
	assert.Equal(t, 0, available)
}

func TestCreateBooking_RestoresSeatsWhenInsertFails(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 4)
	passengerID := uuid.New()

	f.users.EXPECT().GetUser(gomock.Any(), passengerID).
		Return(&models.User{ID: passengerID, Name: "Siti"}, nil)
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.bookingRepo.EXPECT().GetActiveByTripAndPassenger(gomock.Any(), tripID, passengerID).
		Return(nil, nil)
	f.trips.EXPECT().ReserveSeats(gomock.Any(), tripID, 2).Return(true, nil)
	f.bookingRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 2).Return(nil)

	_, err := f.uc.CreateBooking(context.Background(), passengerID, &models.BookingRequest{
		TripID: tripID.String(), Seats: 2,
	})
	assert.Error(t, err)
}

func TestCreateBooking_RejectsDuplicateActiveBooking(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 4)
	passengerID := uuid.New()

	f.users.EXPECT().GetUser(gomock.Any(), passengerID).
		Return(&models.User{ID: passengerID}, nil)
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.bookingRepo.EXPECT().GetActiveByTripAndPassenger(gomock.Any(), tripID, passengerID).
		Return(&models.Booking{ID: uuid.New(), Status: models.BookingStatusPending}, nil)

	_, err := f.uc.CreateBooking(context.Background(), passengerID, &models.BookingRequest{
		TripID: tripID.String(), Seats: 1,
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateBooking_RejectsClosedWindow(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 4)
	trip.DepartureTime = time.Now().Add(10 * time.Minute)
	passengerID := uuid.New()

	f.users.EXPECT().GetUser(gomock.Any(), passengerID).
		Return(&models.User{ID: passengerID}, nil)
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.CreateBooking(context.Background(), passengerID, &models.BookingRequest{
		TripID: tripID.String(), Seats: 1,
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCreateBooking_RejectsDriverOwnTrip(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	driverID := uuid.New()
	trip := bookableTrip(tripID, driverID, 4)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).
		Return(&models.User{ID: driverID}, nil)
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.CreateBooking(context.Background(), driverID, &models.BookingRequest{
		TripID: tripID.String(), Seats: 1,
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestConfirmBooking_IssuesSixDigitOtp(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 4)
	f.allowEnrichment(trip)

	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, TripID: tripID, Status: models.BookingStatusPending}, nil)

	var issued string
	f.bookingRepo.EXPECT().ConfirmBooking(gomock.Any(), bookingID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, otp string) (bool, error) {
			issued = otp
			return true, nil
		})
	f.bookingGW.EXPECT().
		PublishBookingConfirmed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := f.uc.ConfirmBooking(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, resp.Status)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), issued)
	require.NotNil(t, resp.PickupOtp)
	assert.Equal(t, issued, *resp.PickupOtp)
}

func TestConfirmBooking_RejectsNonPending(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusConfirmed}, nil)

	_, err := f.uc.ConfirmBooking(context.Background(), bookingID)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestVerifyPickupOtp_RoundTrip(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 4)
	f.allowEnrichment(trip)

	otp := "482913"
	booking := &models.Booking{
		ID:        bookingID,
		TripID:    tripID,
		Status:    models.BookingStatusConfirmed,
		PickupOtp: &otp,
	}

	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil).Times(2)
	f.bookingRepo.EXPECT().MarkPickupVerified(gomock.Any(), bookingID).Return(true, nil)

	_, err := f.uc.VerifyPickupOtp(context.Background(), bookingID, "000000")
	assert.True(t, apperrors.IsBadRequest(err))

	resp, err := f.uc.VerifyPickupOtp(context.Background(), bookingID, "482913")
	require.NoError(t, err)
	assert.NotNil(t, resp.PickupVerifiedAt)
}

func TestVerifyPickupOtp_RejectsUnconfirmed(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusPending}, nil)

	_, err := f.uc.VerifyPickupOtp(context.Background(), bookingID, "123456")
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCancelBooking_RestoresSeatsAndRefunds(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	paymentID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 2)

	f.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).
		Return(&models.User{Name: "Siti"}, nil).AnyTimes()
	f.users.EXPECT().GetVehicle(gomock.Any(), gomock.Any()).
		Return(&models.Vehicle{}, nil).AnyTimes()
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil).AnyTimes()

	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{
			ID: bookingID, TripID: tripID, SeatsBooked: 2,
			Status: models.BookingStatusConfirmed,
		}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 2).Return(nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).
		Return(&models.Payment{ID: paymentID, BookingID: bookingID, Status: models.PaymentStatusSuccess}, nil).
		Times(2)
	f.paymentGW.EXPECT().Refund(gomock.Any(), paymentID, "plans changed").Return(nil)
	f.bookingGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any(), gomock.Any(), "plans changed").
		Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), bookingID, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, resp.Status)
	assert.Empty(t, resp.Warning)
}

func TestCancelBooking_RefundFailureIsWarningNotError(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	paymentID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 2)

	f.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).
		Return(&models.User{Name: "Siti"}, nil).AnyTimes()
	f.users.EXPECT().GetVehicle(gomock.Any(), gomock.Any()).
		Return(&models.Vehicle{}, nil).AnyTimes()
	f.trips.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil).AnyTimes()

	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{
			ID: bookingID, TripID: tripID, SeatsBooked: 1,
			Status: models.BookingStatusConfirmed,
		}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 1).Return(nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).
		Return(&models.Payment{ID: paymentID, Status: models.PaymentStatusSuccess}, nil).
		Times(2)
	f.paymentGW.EXPECT().Refund(gomock.Any(), paymentID, gomock.Any()).
		Return(errors.New("payment service down"))
	f.bookingGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), bookingID, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, resp.Status)
	assert.NotEmpty(t, resp.Warning)
}

func TestCancelBooking_TerminalStatesRejected(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	for _, status := range []models.BookingStatus{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		bookingID := uuid.New()
		f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
			Return(&models.Booking{ID: bookingID, Status: status}, nil)

		_, err := f.uc.CancelBooking(context.Background(), bookingID, "too late")
		assert.True(t, apperrors.IsBadRequest(err), "status %s", status)
	}
}

func TestDenyBooking_RestoresSeats(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 2)
	f.allowEnrichment(trip)

	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{
			ID: bookingID, TripID: tripID, SeatsBooked: 2,
			Status: models.BookingStatusPending,
		}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingID, models.BookingStatusPending, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 2).Return(nil)
	f.bookingGW.EXPECT().PublishBookingDenied(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.DenyBooking(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, resp.Status)
}

func TestAutoCancelPendingBookings_CancelsStaleOnes(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	bookingID := uuid.New()
	trip := bookableTrip(tripID, uuid.New(), 2)
	f.allowEnrichment(trip)

	stale := &models.Booking{
		ID: bookingID, TripID: tripID, SeatsBooked: 1,
		Status:   models.BookingStatusPending,
		BookedAt: time.Now().Add(-45 * time.Minute),
	}

	f.bookingRepo.EXPECT().GetStalePendingBookings(gomock.Any(), gomock.Any()).
		Return([]*models.Booking{stale}, nil)
	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(stale, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingID, models.BookingStatusPending, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 1).Return(nil)
	f.bookingGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any(), gomock.Any(), "Auto-cancelled due to timeout").
		Return(nil)

	err := f.uc.AutoCancelPendingBookings(context.Background())
	require.NoError(t, err)
}

func TestAutoCancelPendingBookings_SkipsRacedBooking(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	stale := &models.Booking{ID: bookingID, Status: models.BookingStatusPending}

	f.bookingRepo.EXPECT().GetStalePendingBookings(gomock.Any(), gomock.Any()).
		Return([]*models.Booking{stale}, nil)
	// confirmed concurrently between the sweep query and the cancel
	f.bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusPending}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingID, models.BookingStatusPending, models.BookingStatusCancelled).
		Return(false, nil)

	err := f.uc.AutoCancelPendingBookings(context.Background())
	require.NoError(t, err)
}

func TestCancelBookingsForTrip_RefundsEachConfirmedBooking(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	paymentA := uuid.New()
	paymentB := uuid.New()
	bookingA := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), SeatsBooked: 1, Status: models.BookingStatusConfirmed}
	bookingB := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), SeatsBooked: 2, Status: models.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().GetConfirmedByTrip(gomock.Any(), tripID).
		Return([]*models.Booking{bookingA, bookingB}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingA.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), bookingB.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 1).Return(nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 2).Return(nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingA.ID).
		Return(&models.Payment{ID: paymentA, Status: models.PaymentStatusSuccess}, nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingB.ID).
		Return(&models.Payment{ID: paymentB, Status: models.PaymentStatusSuccess}, nil)
	f.paymentGW.EXPECT().Refund(gomock.Any(), paymentA, "trip cancelled").Return(nil)
	f.paymentGW.EXPECT().Refund(gomock.Any(), paymentB, "trip cancelled").Return(nil)

	cancelled, err := f.uc.CancelBookingsForTrip(context.Background(), tripID, "trip cancelled")
	require.NoError(t, err)
	assert.Len(t, cancelled, 2)
	for _, b := range cancelled {
		assert.Equal(t, models.BookingStatusCancelled, b.Status)
	}
}

// A failed status write on one booking must not strand the rest of the trip's
// bookings; the trip is already cancelled, so the cascade has to keep going.
func TestCancelBookingsForTrip_ContinuesPastFailedBooking(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	first := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), SeatsBooked: 1, Status: models.BookingStatusConfirmed}
	second := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), SeatsBooked: 1, Status: models.BookingStatusConfirmed}
	third := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), SeatsBooked: 2, Status: models.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().GetConfirmedByTrip(gomock.Any(), tripID).
		Return([]*models.Booking{first, second, third}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), first.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), second.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(false, errors.New("connection reset"))
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), third.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled).
		Return(true, nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 1).Return(nil)
	f.trips.EXPECT().RestoreSeats(gomock.Any(), tripID, 2).Return(nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), first.ID).Return(nil, nil)
	f.bookingRepo.EXPECT().GetPaymentByBookingID(gomock.Any(), third.ID).Return(nil, nil)

	cancelled, err := f.uc.CancelBookingsForTrip(context.Background(), tripID, "trip cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled, 2)
	assert.Equal(t, first.ID, cancelled[0].ID)
	assert.Equal(t, third.ID, cancelled[1].ID)
}

func TestCompleteBookingsForTrip_ContinuesPastFailedBooking(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	first := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), Status: models.BookingStatusConfirmed}
	second := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: uuid.New(), Status: models.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().GetConfirmedByTrip(gomock.Any(), tripID).
		Return([]*models.Booking{first, second}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), first.ID, models.BookingStatusConfirmed, models.BookingStatusCompleted).
		Return(false, errors.New("connection reset"))
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), second.ID, models.BookingStatusConfirmed, models.BookingStatusCompleted).
		Return(true, nil)
	f.users.EXPECT().IncrementTotalRides(gomock.Any(), second.PassengerID).Return(nil)

	completed, err := f.uc.CompleteBookingsForTrip(context.Background(), tripID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, second.ID, completed[0].ID)
}

func TestCompleteBookingsForTrip_BumpsPassengerCounters(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	passengerID := uuid.New()
	booking := &models.Booking{ID: uuid.New(), TripID: tripID, PassengerID: passengerID, Status: models.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().GetConfirmedByTrip(gomock.Any(), tripID).
		Return([]*models.Booking{booking}, nil)
	f.bookingRepo.EXPECT().
		TransitionStatus(gomock.Any(), booking.ID, models.BookingStatusConfirmed, models.BookingStatusCompleted).
		Return(true, nil)
	f.users.EXPECT().IncrementTotalRides(gomock.Any(), passengerID).Return(nil)

	completed, err := f.uc.CompleteBookingsForTrip(context.Background(), tripID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, models.BookingStatusCompleted, completed[0].Status)
}

func TestConfirmedSeatCount_Delegates(t *testing.T) {
	f, ctrl := newBookingUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.bookingRepo.EXPECT().CountConfirmedSeats(gomock.Any(), tripID).Return(3, nil)

	count, err := f.uc.ConfirmedSeatCount(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
