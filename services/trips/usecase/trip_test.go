package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/trips"
	"github.com/piresc/yavijexpress/services/trips/mocks"
)

type tripUCFixture struct {
	cfg      *models.Config
	tripRepo *mocks.MockTripRepo
	tripGW   *mocks.MockTripGW
	bookings *mocks.MockBookingLifecycle
	users    *mocks.MockUserDirectory
	uc       trips.TripUC
}

func newTripUCFixture(t *testing.T) (*tripUCFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{}
	cfg.Trips.MinLeadMinutes = 30
	cfg.Trips.UpdateLockMinutes = 60
	cfg.Trips.AvgSpeedKmh = 60.0
	cfg.Trips.DefaultDuration = 2

	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	f := &tripUCFixture{
		cfg:      cfg,
		tripRepo: mocks.NewMockTripRepo(ctrl),
		tripGW:   mocks.NewMockTripGW(ctrl),
		bookings: mocks.NewMockBookingLifecycle(ctrl),
		users:    mocks.NewMockUserDirectory(ctrl),
	}
	f.uc = NewTripUC(cfg, f.tripRepo, f.tripGW, f.bookings, f.users, log)
	return f, ctrl
}

func activeDriver(id uuid.UUID) *models.User {
	return &models.User{ID: id, Name: "Budi", Mobile: "+628111111111", Role: "driver", IsActive: true}
}

func activeVehicle(id, ownerID uuid.UUID) *models.Vehicle {
	return &models.Vehicle{ID: id, UserID: ownerID, Model: "Avanza", VehicleNumber: "B 1234 XY", IsActive: true}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCreateTrip_Success(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	departure := time.Now().Add(2 * time.Hour)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil)
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, driverID), nil)
	f.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	f.tripGW.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CreateTrip(context.Background(), driverID, &models.TripRequest{
		VehicleID:     vehicleID.String(),
		FromLocation:  "Jakarta",
		ToLocation:    "Bandung",
		DepartureTime: &departure,
		PricePerSeat:  floatPtr(150000),
		TotalSeats:    intPtr(4),
		DistanceKm:    floatPtr(150),
	})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusScheduled, resp.Status)
	assert.Equal(t, 4, resp.AvailableSeats)
	assert.False(t, resp.SoberDeclaration)
	// 150 km at 60 km/h, truncated to whole hours
	assert.Equal(t, departure.Add(2*time.Hour), resp.ExpectedArrivalTime)
	assert.Equal(t, "Budi", resp.DriverName)
}

func TestCreateTrip_DefaultArrivalWithoutDistance(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	departure := time.Now().Add(3 * time.Hour)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil)
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, driverID), nil)
	f.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	f.tripGW.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CreateTrip(context.Background(), driverID, &models.TripRequest{
		VehicleID:     vehicleID.String(),
		FromLocation:  "Jakarta",
		ToLocation:    "Semarang",
		DepartureTime: &departure,
		PricePerSeat:  floatPtr(200000),
		TotalSeats:    intPtr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, departure.Add(2*time.Hour), resp.ExpectedArrivalTime)
}

func TestCreateTrip_RejectsShortLead(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	departure := time.Now().Add(10 * time.Minute)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil)
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, driverID), nil)

	_, err := f.uc.CreateTrip(context.Background(), driverID, &models.TripRequest{
		VehicleID:     vehicleID.String(),
		FromLocation:  "Jakarta",
		ToLocation:    "Bandung",
		DepartureTime: &departure,
		PricePerSeat:  floatPtr(150000),
		TotalSeats:    intPtr(4),
	})

	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCreateTrip_RejectsForeignVehicle(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	departure := time.Now().Add(2 * time.Hour)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil)
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, uuid.New()), nil)

	_, err := f.uc.CreateTrip(context.Background(), driverID, &models.TripRequest{
		VehicleID:     vehicleID.String(),
		FromLocation:  "Jakarta",
		ToLocation:    "Bandung",
		DepartureTime: &departure,
		PricePerSeat:  floatPtr(150000),
		TotalSeats:    intPtr(4),
	})

	assert.True(t, apperrors.IsBadRequest(err))
}

// A negative distance would put the expected arrival before departure and the
// status sweep would complete the trip as soon as it starts.
func TestCreateTrip_RejectsNegativeDistance(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	departure := time.Now().Add(2 * time.Hour)

	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil)
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, driverID), nil)

	_, err := f.uc.CreateTrip(context.Background(), driverID, &models.TripRequest{
		VehicleID:     vehicleID.String(),
		FromLocation:  "Jakarta",
		ToLocation:    "Bandung",
		DepartureTime: &departure,
		PricePerSeat:  floatPtr(150000),
		TotalSeats:    intPtr(4),
		DistanceKm:    floatPtr(-150),
	})

	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUpdateTrip_RejectsNegativeDistance(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := &models.Trip{
		ID:            tripID,
		Status:        models.TripStatusScheduled,
		DepartureTime: time.Now().Add(3 * time.Hour),
		DriverID:      uuid.New(),
		VehicleID:     uuid.New(),
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.UpdateTrip(context.Background(), tripID, &models.TripRequest{DistanceKm: floatPtr(-10)})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUpdateTrip_SeatResizeKeepsConfirmedSeats(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := &models.Trip{
		ID:             tripID,
		Status:         models.TripStatusScheduled,
		DepartureTime:  time.Now().Add(3 * time.Hour),
		TotalSeats:     6,
		AvailableSeats: 4,
		DriverID:       uuid.New(),
		VehicleID:      uuid.New(),
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.bookings.EXPECT().ConfirmedSeatCount(gomock.Any(), tripID).Return(2, nil)
	f.tripRepo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *models.Trip) error {
			assert.Equal(t, 3, updated.TotalSeats)
			assert.Equal(t, 1, updated.AvailableSeats)
			return nil
		})
	f.bookings.EXPECT().ConfirmedPassengerIDs(gomock.Any(), tripID).Return([]uuid.UUID{uuid.New()}, nil)
	f.tripGW.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(activeDriver(trip.DriverID), nil).AnyTimes()
	f.users.EXPECT().GetVehicle(gomock.Any(), gomock.Any()).Return(activeVehicle(trip.VehicleID, trip.DriverID), nil).AnyTimes()

	_, err := f.uc.UpdateTrip(context.Background(), tripID, &models.TripRequest{TotalSeats: intPtr(3)})
	require.NoError(t, err)
}

func TestUpdateTrip_RejectsSeatReductionBelowConfirmed(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := &models.Trip{
		ID:            tripID,
		Status:        models.TripStatusScheduled,
		DepartureTime: time.Now().Add(3 * time.Hour),
		TotalSeats:    6,
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.bookings.EXPECT().ConfirmedSeatCount(gomock.Any(), tripID).Return(4, nil)

	_, err := f.uc.UpdateTrip(context.Background(), tripID, &models.TripRequest{TotalSeats: intPtr(3)})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUpdateTrip_RejectsInsideLockWindow(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := &models.Trip{
		ID:            tripID,
		Status:        models.TripStatusScheduled,
		DepartureTime: time.Now().Add(30 * time.Minute),
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.UpdateTrip(context.Background(), tripID, &models.TripRequest{Notes: "bring snacks"})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCancelTrip_CascadesToConfirmedBookings(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusScheduled, DriverID: uuid.New()}
	passengerA := uuid.New()
	passengerB := uuid.New()

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.tripRepo.EXPECT().
		UpdateTripStatus(gomock.Any(), tripID, models.TripStatusScheduled, models.TripStatusCancelled).
		Return(true, nil)
	f.bookings.EXPECT().CancelBookingsForTrip(gomock.Any(), tripID, "vehicle broke down").
		Return([]*models.Booking{
			{ID: uuid.New(), PassengerID: passengerA, Status: models.BookingStatusCancelled},
			{ID: uuid.New(), PassengerID: passengerB, Status: models.BookingStatusCancelled},
		}, nil)
	f.tripGW.EXPECT().
		PublishTripCancelled(gomock.Any(), gomock.Any(), "vehicle broke down", []uuid.UUID{passengerA, passengerB}).
		Return(nil)

	err := f.uc.CancelTrip(context.Background(), tripID, "vehicle broke down")
	require.NoError(t, err)
}

func TestCancelTrip_AlreadyCancelled(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCancelled}, nil)

	err := f.uc.CancelTrip(context.Background(), tripID, "whatever")
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCancelTrip_LostRaceIsConflict(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusScheduled}, nil)
	f.tripRepo.EXPECT().
		UpdateTripStatus(gomock.Any(), tripID, models.TripStatusScheduled, models.TripStatusCancelled).
		Return(false, nil)

	err := f.uc.CancelTrip(context.Background(), tripID, "changed my mind")
	assert.True(t, apperrors.IsConflict(err))
}

func TestStartTrip_RequiresSoberDeclaration(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusScheduled}, nil)

	err := f.uc.StartTrip(context.Background(), tripID, &models.SoberDeclarationRequest{SoberDeclaration: false})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestStartTrip_Success(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusScheduled, DriverID: uuid.New()}, nil)
	f.tripRepo.EXPECT().MarkTripStarted(gomock.Any(), tripID).Return(true, nil)
	f.tripGW.EXPECT().PublishTripStarted(gomock.Any(), gomock.Any()).Return(nil)

	err := f.uc.StartTrip(context.Background(), tripID, &models.SoberDeclarationRequest{SoberDeclaration: true})
	require.NoError(t, err)
}

func TestStartTrip_NotScheduled(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)

	err := f.uc.StartTrip(context.Background(), tripID, &models.SoberDeclarationRequest{SoberDeclaration: true})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCompleteTrip_CompletesBookingsAndCounters(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing, DriverID: driverID}, nil)
	f.tripRepo.EXPECT().
		UpdateTripStatus(gomock.Any(), tripID, models.TripStatusOngoing, models.TripStatusCompleted).
		Return(true, nil)
	f.bookings.EXPECT().CompleteBookingsForTrip(gomock.Any(), tripID).
		Return([]*models.Booking{{ID: uuid.New(), PassengerID: passengerID}}, nil)
	f.users.EXPECT().IncrementTotalRides(gomock.Any(), driverID).Return(nil)
	f.tripGW.EXPECT().
		PublishTripCompleted(gomock.Any(), gomock.Any(), []uuid.UUID{passengerID}).
		Return(nil)

	err := f.uc.CompleteTrip(context.Background(), tripID)
	require.NoError(t, err)
}

func TestCompleteTrip_RejectsNonOngoing(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusScheduled}, nil)

	err := f.uc.CompleteTrip(context.Background(), tripID)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCheckAndUpdateTripStatuses_RunsBothSweeps(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	f.tripRepo.EXPECT().AdvanceDepartedTrips(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	f.tripRepo.EXPECT().CompleteArrivedTrips(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := f.uc.CheckAndUpdateTripStatuses(context.Background())
	require.NoError(t, err)
}

func TestCheckAndUpdateTripStatuses_SecondRunNoTransitions(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	f.tripRepo.EXPECT().AdvanceDepartedTrips(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.tripRepo.EXPECT().CompleteArrivedTrips(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := f.uc.CheckAndUpdateTripStatuses(context.Background())
	require.NoError(t, err)
}

func TestCheckAndUpdateTripStatuses_SweepError(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	f.tripRepo.EXPECT().AdvanceDepartedTrips(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down"))

	err := f.uc.CheckAndUpdateTripStatuses(context.Background())
	assert.Error(t, err)
}

func TestSearchTrips_DefaultsToOneSeat(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	f.tripRepo.EXPECT().SearchTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.TripSearchRequest) ([]*models.Trip, error) {
			assert.Equal(t, 1, req.RequiredSeats)
			return []*models.Trip{}, nil
		})

	found, err := f.uc.SearchTrips(context.Background(), &models.TripSearchRequest{FromLocation: "Jakarta"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGetUpcomingTrips_FiltersInactiveAndNonScheduled(t *testing.T) {
	f, ctrl := newTripUCFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleID := uuid.New()
	scheduled := &models.Trip{ID: uuid.New(), Status: models.TripStatusScheduled, IsActive: true, DriverID: driverID, VehicleID: vehicleID}
	cancelled := &models.Trip{ID: uuid.New(), Status: models.TripStatusCancelled, IsActive: true, DriverID: driverID, VehicleID: vehicleID}
	inactive := &models.Trip{ID: uuid.New(), Status: models.TripStatusScheduled, IsActive: false, DriverID: driverID, VehicleID: vehicleID}

	f.tripRepo.EXPECT().GetTripsDepartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Trip{scheduled, cancelled, inactive}, nil)
	f.users.EXPECT().GetUser(gomock.Any(), driverID).Return(activeDriver(driverID), nil).AnyTimes()
	f.users.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(activeVehicle(vehicleID, driverID), nil).AnyTimes()

	found, err := f.uc.GetUpcomingTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, scheduled.ID, found[0].ID)
}
