package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	bookings trips.BookingLifecycle
	users    trips.UserDirectory
	log      *logger.AppLogger
}

// NewTripUC creates a new trip lifecycle use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
	bookings trips.BookingLifecycle,
	users trips.UserDirectory,
	log *logger.AppLogger,
) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		bookings: bookings,
		users:    users,
		log:      log,
	}
}

func (uc *tripUC) minLead() time.Duration {
	return time.Duration(uc.cfg.Trips.MinLeadMinutes) * time.Minute
}

// CreateTrip validates the driver's vehicle and schedule and creates a
// SCHEDULED trip with its full seat inventory available.
func (uc *tripUC) CreateTrip(ctx context.Context, driverID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error) {
	driver, err := uc.users.GetUser(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.VehicleID == "" {
		return nil, apperrors.BadRequest("Vehicle ID is required")
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := uc.users.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != driverID {
		return nil, apperrors.BadRequest("Vehicle does not belong to driver")
	}
	if !vehicle.IsActive {
		return nil, apperrors.BadRequest("Vehicle is not active")
	}

	if req.FromLocation == "" || req.ToLocation == "" {
		return nil, apperrors.BadRequest("From and to locations are required")
	}
	if req.DepartureTime == nil {
		return nil, apperrors.BadRequest("Departure time is required")
	}
	if req.DepartureTime.Before(time.Now().Add(uc.minLead())) {
		return nil, apperrors.BadRequest("Departure time must be at least 30 minutes from now")
	}
	if req.PricePerSeat == nil || *req.PricePerSeat <= 0 {
		return nil, apperrors.BadRequest("Price per seat must be positive")
	}
	if req.TotalSeats == nil || *req.TotalSeats <= 0 {
		return nil, apperrors.BadRequest("Total seats must be positive")
	}
	if req.DistanceKm != nil && *req.DistanceKm < 0 {
		return nil, apperrors.BadRequest("Distance must not be negative")
	}

	trip := &models.Trip{
		ID:               uuid.New(),
		FromLocation:     req.FromLocation,
		ToLocation:       req.ToLocation,
		DepartureTime:    *req.DepartureTime,
		PricePerSeat:     *req.PricePerSeat,
		TotalSeats:       *req.TotalSeats,
		AvailableSeats:   *req.TotalSeats,
		Status:           models.TripStatusScheduled,
		RoutePolyline:    req.RoutePolyline,
		Notes:            req.Notes,
		SoberDeclaration: false,
		IsActive:         true,
		DriverID:         driverID,
		VehicleID:        vehicleID,
	}
	if req.IsFlexible != nil {
		trip.IsFlexible = *req.IsFlexible
	}
	trip.ExpectedArrivalTime = uc.estimateArrival(*req.DepartureTime, req.DistanceKm)
	trip.DistanceKm = req.DistanceKm

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, apperrors.Wrap("failed to create trip", err)
	}

	if err := uc.tripGW.PublishTripCreated(ctx, trip); err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": trip.ID}).
			WithError(err).Warn("trip created notification failed")
	}

	return uc.toTripResponse(ctx, trip, driver, vehicle), nil
}

// estimateArrival derives the expected arrival time from the distance at an
// assumed 60 km/h average, truncated to whole hours; without a distance the
// trip defaults to a two-hour duration.
func (uc *tripUC) estimateArrival(departure time.Time, distanceKm *float64) time.Time {
	if distanceKm != nil {
		hours := int64(*distanceKm / uc.cfg.Trips.AvgSpeedKmh)
		return departure.Add(time.Duration(hours) * time.Hour)
	}
	return departure.Add(time.Duration(uc.cfg.Trips.DefaultDuration) * time.Hour)
}

// UpdateTrip applies partial edits to a SCHEDULED trip outside the pre-departure
// lock window. Reducing total seats below the confirmed seat count is rejected.
func (uc *tripUC) UpdateTrip(ctx context.Context, tripID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.Status != models.TripStatusScheduled {
		return nil, apperrors.BadRequest("Can only update scheduled trips")
	}
	lockWindow := time.Duration(uc.cfg.Trips.UpdateLockMinutes) * time.Minute
	if trip.DepartureTime.Before(time.Now().Add(lockWindow)) {
		return nil, apperrors.BadRequest("Cannot update trip within 1 hour of departure")
	}

	if req.FromLocation != "" {
		trip.FromLocation = req.FromLocation
	}
	if req.ToLocation != "" {
		trip.ToLocation = req.ToLocation
	}
	if req.DepartureTime != nil {
		if req.DepartureTime.Before(time.Now().Add(uc.minLead())) {
			return nil, apperrors.BadRequest("Departure time must be at least 30 minutes from now")
		}
		trip.DepartureTime = *req.DepartureTime
	}
	if req.PricePerSeat != nil {
		if *req.PricePerSeat <= 0 {
			return nil, apperrors.BadRequest("Price per seat must be positive")
		}
		trip.PricePerSeat = *req.PricePerSeat
	}
	if req.TotalSeats != nil {
		bookedSeats, err := uc.bookings.ConfirmedSeatCount(ctx, tripID)
		if err != nil {
			return nil, apperrors.Wrap("failed to count booked seats", err)
		}
		if *req.TotalSeats < bookedSeats {
			return nil, apperrors.BadRequest("Cannot reduce seats below already booked seats")
		}
		trip.TotalSeats = *req.TotalSeats
		trip.AvailableSeats = *req.TotalSeats - bookedSeats
	}
	if req.RoutePolyline != "" {
		trip.RoutePolyline = req.RoutePolyline
	}
	if req.DistanceKm != nil {
		if *req.DistanceKm < 0 {
			return nil, apperrors.BadRequest("Distance must not be negative")
		}
		trip.DistanceKm = req.DistanceKm
	}
	if req.IsFlexible != nil {
		trip.IsFlexible = *req.IsFlexible
	}
	if req.Notes != "" {
		trip.Notes = req.Notes
	}

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, apperrors.Wrap("failed to update trip", err)
	}

	passengerIDs, err := uc.bookings.ConfirmedPassengerIDs(ctx, tripID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": tripID}).
			WithError(err).Warn("failed to resolve confirmed passengers for update notification")
	} else if err := uc.tripGW.PublishTripUpdated(ctx, trip, passengerIDs); err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": tripID}).
			WithError(err).Warn("trip updated notification failed")
	}

	return uc.enrichTripResponse(ctx, trip), nil
}

// CancelTrip cancels a non-terminal trip and cascades the cancellation to its
// confirmed bookings, triggering refunds for paid ones.
func (uc *tripUC) CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) error {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return err
	}

	switch trip.Status {
	case models.TripStatusCancelled:
		return apperrors.BadRequest("Trip is already cancelled")
	case models.TripStatusCompleted:
		return apperrors.BadRequest("Cannot cancel completed trip")
	}

	ok, err := uc.tripRepo.UpdateTripStatus(ctx, tripID, trip.Status, models.TripStatusCancelled)
	if err != nil {
		return apperrors.Wrap("failed to cancel trip", err)
	}
	if !ok {
		return apperrors.Conflict("Trip status changed, please retry")
	}

	cancelled, err := uc.bookings.CancelBookingsForTrip(ctx, tripID, reason)
	if err != nil {
		return apperrors.Wrap("failed to cancel trip bookings", err)
	}

	passengerIDs := make([]uuid.UUID, 0, len(cancelled))
	for _, b := range cancelled {
		passengerIDs = append(passengerIDs, b.PassengerID)
	}
	trip.Status = models.TripStatusCancelled
	if err := uc.tripGW.PublishTripCancelled(ctx, trip, reason, passengerIDs); err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": tripID}).
			WithError(err).Warn("trip cancelled notification failed")
	}

	return nil
}

// StartTrip moves a SCHEDULED trip to ONGOING. The driver's sober declaration
// is a hard precondition; this is the single authority for starting a trip.
func (uc *tripUC) StartTrip(ctx context.Context, tripID uuid.UUID, req *models.SoberDeclarationRequest) error {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return err
	}

	if trip.Status != models.TripStatusScheduled {
		return apperrors.BadRequest("Trip is not in scheduled state")
	}
	if req == nil || !req.SoberDeclaration {
		return apperrors.BadRequest("Sober declaration is required to start trip")
	}

	ok, err := uc.tripRepo.MarkTripStarted(ctx, tripID)
	if err != nil {
		return apperrors.Wrap("failed to start trip", err)
	}
	if !ok {
		return apperrors.Conflict("Trip status changed, please retry")
	}

	trip.Status = models.TripStatusOngoing
	trip.SoberDeclaration = true
	if err := uc.tripGW.PublishTripStarted(ctx, trip); err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": tripID}).
			WithError(err).Warn("trip started notification failed")
	}

	return nil
}

// CompleteTrip moves an ONGOING trip to COMPLETED, completes its confirmed
// bookings and bumps ride counters for the driver and carried passengers.
func (uc *tripUC) CompleteTrip(ctx context.Context, tripID uuid.UUID) error {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return err
	}

	if trip.Status != models.TripStatusOngoing {
		return apperrors.BadRequest("Only ongoing trips can be completed")
	}

	ok, err := uc.tripRepo.UpdateTripStatus(ctx, tripID, models.TripStatusOngoing, models.TripStatusCompleted)
	if err != nil {
		return apperrors.Wrap("failed to complete trip", err)
	}
	if !ok {
		return apperrors.Conflict("Trip status changed, please retry")
	}

	completed, err := uc.bookings.CompleteBookingsForTrip(ctx, tripID)
	if err != nil {
		return apperrors.Wrap("failed to complete trip bookings", err)
	}

	if err := uc.users.IncrementTotalRides(ctx, trip.DriverID); err != nil {
		uc.log.WithFields(logrus.Fields{"driver_id": trip.DriverID}).
			WithError(err).Warn("failed to increment driver ride count")
	}

	passengerIDs := make([]uuid.UUID, 0, len(completed))
	for _, b := range completed {
		passengerIDs = append(passengerIDs, b.PassengerID)
	}
	trip.Status = models.TripStatusCompleted
	if err := uc.tripGW.PublishTripCompleted(ctx, trip, passengerIDs); err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": tripID}).
			WithError(err).Warn("trip completed notification failed")
	}

	return nil
}

// CheckAndUpdateTripStatuses advances trip statuses from their own timestamps:
// departed SCHEDULED trips become ONGOING, arrived ONGOING trips become
// COMPLETED. Both passes are idempotent batch updates.
func (uc *tripUC) CheckAndUpdateTripStatuses(ctx context.Context) error {
	now := time.Now()

	started, err := uc.tripRepo.AdvanceDepartedTrips(ctx, now)
	if err != nil {
		return apperrors.Wrap("failed to advance departed trips", err)
	}

	completed, err := uc.tripRepo.CompleteArrivedTrips(ctx, now)
	if err != nil {
		return apperrors.Wrap("failed to complete arrived trips", err)
	}

	if started > 0 || completed > 0 {
		uc.log.WithFields(logrus.Fields{
			"started":   started,
			"completed": completed,
		}).Info("trip status sweep applied transitions")
	}

	return nil
}

// SearchTrips filters active scheduled trips by route, departure window, seat
// availability and price, sorted by departure time.
func (uc *tripUC) SearchTrips(ctx context.Context, req *models.TripSearchRequest) ([]*models.TripResponse, error) {
	if req.RequiredSeats <= 0 {
		req.RequiredSeats = 1
	}
	found, err := uc.tripRepo.SearchTrips(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap("failed to search trips", err)
	}
	return uc.enrichTripResponses(ctx, found), nil
}

// GetDriverTrips returns all trips offered by a driver
func (uc *tripUC) GetDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.TripResponse, error) {
	found, err := uc.tripRepo.GetTripsByDriver(ctx, driverID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list driver trips", err)
	}
	return uc.enrichTripResponses(ctx, found), nil
}

// GetTripDetails returns a single trip enriched with display fields
func (uc *tripUC) GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripResponse, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return uc.enrichTripResponse(ctx, trip), nil
}

// GetUpcomingTrips returns active scheduled trips departing within a week
func (uc *tripUC) GetUpcomingTrips(ctx context.Context) ([]*models.TripResponse, error) {
	now := time.Now()
	found, err := uc.tripRepo.GetTripsDepartingBetween(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, apperrors.Wrap("failed to list upcoming trips", err)
	}

	upcoming := make([]*models.Trip, 0, len(found))
	for _, trip := range found {
		if trip.Status == models.TripStatusScheduled && trip.IsActive {
			upcoming = append(upcoming, trip)
		}
	}
	return uc.enrichTripResponses(ctx, upcoming), nil
}

func (uc *tripUC) enrichTripResponses(ctx context.Context, found []*models.Trip) []*models.TripResponse {
	responses := make([]*models.TripResponse, 0, len(found))
	for _, trip := range found {
		responses = append(responses, uc.enrichTripResponse(ctx, trip))
	}
	return responses
}

// enrichTripResponse resolves driver and vehicle display fields. Directory
// lookups are non-essential for reads, so failures degrade to a bare trip.
func (uc *tripUC) enrichTripResponse(ctx context.Context, trip *models.Trip) *models.TripResponse {
	var driver *models.User
	var vehicle *models.Vehicle

	driver, err := uc.users.GetUser(ctx, trip.DriverID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": trip.ID, "driver_id": trip.DriverID}).
			WithError(err).Warn("failed to resolve driver for trip response")
	}
	vehicle, err = uc.users.GetVehicle(ctx, trip.VehicleID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": trip.ID, "vehicle_id": trip.VehicleID}).
			WithError(err).Warn("failed to resolve vehicle for trip response")
	}

	return uc.toTripResponse(ctx, trip, driver, vehicle)
}

func (uc *tripUC) toTripResponse(_ context.Context, trip *models.Trip, driver *models.User, vehicle *models.Vehicle) *models.TripResponse {
	resp := &models.TripResponse{Trip: *trip}
	if driver != nil {
		resp.DriverName = driver.Name
		resp.DriverPhone = driver.Mobile
	}
	if vehicle != nil {
		resp.VehicleModel = vehicle.Model
		resp.VehicleNumber = vehicle.VehicleNumber
	}
	return resp
}
