package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/internal/utils"
	"github.com/piresc/yavijexpress/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	paymentGW   bookings.PaymentGW
	trips       bookings.TripInventory
	users       bookings.UserDirectory
	log         *logger.AppLogger
}

// NewBookingUC creates a new booking lifecycle use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	paymentGW bookings.PaymentGW,
	trips bookings.TripInventory,
	users bookings.UserDirectory,
	log *logger.AppLogger,
) bookings.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		paymentGW:   paymentGW,
		trips:       trips,
		users:       users,
		log:         log,
	}
}

// CreateBooking places a PENDING booking after atomically reserving seats on
// the trip. A failed insert after the reservation restores the seats so
// inventory never leaks.
func (uc *bookingUC) CreateBooking(ctx context.Context, passengerID uuid.UUID, req *models.BookingRequest) (*models.BookingResponse, error) {
	passenger, err := uc.users.GetUser(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	if req.TripID == "" {
		return nil, apperrors.BadRequest("Trip ID is required")
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid trip ID")
	}
	if req.Seats <= 0 {
		return nil, apperrors.BadRequest("Seats must be positive")
	}

	trip, err := uc.trips.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusScheduled || !trip.IsActive {
		return nil, apperrors.BadRequest("Trip is not open for booking")
	}
	minLead := time.Duration(uc.cfg.Trips.MinLeadMinutes) * time.Minute
	if trip.DepartureTime.Before(time.Now().Add(minLead)) {
		return nil, apperrors.BadRequest("Booking window for this trip has closed")
	}
	if trip.DriverID == passengerID {
		return nil, apperrors.BadRequest("Driver cannot book own trip")
	}

	existing, err := uc.bookingRepo.GetActiveByTripAndPassenger(ctx, tripID, passengerID)
	if err != nil {
		return nil, apperrors.Wrap("failed to check existing booking", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("You already have an active booking on this trip")
	}

	reserved, err := uc.trips.ReserveSeats(ctx, tripID, req.Seats)
	if err != nil {
		return nil, apperrors.Wrap("failed to reserve seats", err)
	}
	if !reserved {
		return nil, apperrors.Conflict("Not enough seats available")
	}

	booking := &models.Booking{
		ID:              uuid.New(),
		TripID:          tripID,
		PassengerID:     passengerID,
		SeatsBooked:     req.Seats,
		TotalAmount:     trip.PricePerSeat * float64(req.Seats),
		Status:          models.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		BookedAt:        time.Now(),
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		if restoreErr := uc.trips.RestoreSeats(ctx, tripID, req.Seats); restoreErr != nil {
			uc.log.WithFields(logrus.Fields{"trip_id": tripID, "seats": req.Seats}).
				WithError(restoreErr).Error("failed to restore seats after booking insert failure")
		}
		return nil, apperrors.Wrap("failed to create booking", err)
	}

	if err := uc.bookingGW.PublishBookingRequested(ctx, booking, trip); err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": booking.ID}).
			WithError(err).Warn("booking requested notification failed")
	}

	resp := uc.enrichBookingResponse(ctx, booking)
	resp.PassengerName = passenger.Name
	return resp, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED, issuing the pickup OTP
// the passenger presents to the driver at boarding.
func (uc *bookingUC) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.BadRequest("Booking is not in pending state")
	}

	otp, err := utils.GeneratePickupOTP()
	if err != nil {
		return nil, apperrors.Wrap("failed to generate pickup OTP", err)
	}

	ok, err := uc.bookingRepo.ConfirmBooking(ctx, bookingID, otp)
	if err != nil {
		return nil, apperrors.Wrap("failed to confirm booking", err)
	}
	if !ok {
		return nil, apperrors.Conflict("Booking status changed, please retry")
	}
	booking.Status = models.BookingStatusConfirmed
	booking.PickupOtp = &otp

	trip, err := uc.trips.GetTripByID(ctx, booking.TripID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": bookingID, "trip_id": booking.TripID}).
			WithError(err).Warn("failed to resolve trip for confirmation notification")
	} else {
		driver, vehicle := uc.resolveDriverAndVehicle(ctx, trip)
		if err := uc.bookingGW.PublishBookingConfirmed(ctx, booking, trip, driver, vehicle); err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": bookingID}).
				WithError(err).Warn("booking confirmed notification failed")
		}
	}

	return uc.enrichBookingResponse(ctx, booking), nil
}

// DenyBooking rejects a PENDING booking, releasing its reserved seats
func (uc *bookingUC) DenyBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.BadRequest("Booking is not in pending state")
	}

	ok, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, models.BookingStatusPending, models.BookingStatusCancelled)
	if err != nil {
		return nil, apperrors.Wrap("failed to deny booking", err)
	}
	if !ok {
		return nil, apperrors.Conflict("Booking status changed, please retry")
	}
	booking.Status = models.BookingStatusCancelled

	if err := uc.trips.RestoreSeats(ctx, booking.TripID, booking.SeatsBooked); err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": bookingID, "trip_id": booking.TripID}).
			WithError(err).Error("failed to restore seats for denied booking")
	}

	if trip, err := uc.trips.GetTripByID(ctx, booking.TripID); err == nil {
		if err := uc.bookingGW.PublishBookingDenied(ctx, booking, trip); err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": bookingID}).
				WithError(err).Warn("booking denied notification failed")
		}
	}

	return uc.enrichBookingResponse(ctx, booking), nil
}

// CancelBooking cancels a PENDING or CONFIRMED booking, restores its seats and
// refunds a successful payment. A failed refund does not fail the
// cancellation; it surfaces as a warning on the response.
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*models.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return nil, apperrors.BadRequest("Booking is already cancelled")
	case models.BookingStatusCompleted:
		return nil, apperrors.BadRequest("Cannot cancel completed booking")
	}

	held := booking.Status
	ok, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, held, models.BookingStatusCancelled)
	if err != nil {
		return nil, apperrors.Wrap("failed to cancel booking", err)
	}
	if !ok {
		return nil, apperrors.Conflict("Booking status changed, please retry")
	}
	booking.Status = models.BookingStatusCancelled

	if held.HoldsSeats() {
		if err := uc.trips.RestoreSeats(ctx, booking.TripID, booking.SeatsBooked); err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": bookingID, "trip_id": booking.TripID}).
				WithError(err).Error("failed to restore seats for cancelled booking")
		}
	}

	resp := uc.enrichBookingResponse(ctx, booking)
	if warn := uc.refundBooking(ctx, booking, reason); warn != "" {
		resp.Warning = warn
	}

	if trip, err := uc.trips.GetTripByID(ctx, booking.TripID); err == nil {
		if err := uc.bookingGW.PublishBookingCancelled(ctx, booking, trip, reason); err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": bookingID}).
				WithError(err).Warn("booking cancelled notification failed")
		}
	}

	return resp, nil
}

// refundBooking refunds the booking's successful payment, if any. The returned
// string is a human-readable warning when the refund could not be completed.
func (uc *bookingUC) refundBooking(ctx context.Context, booking *models.Booking, reason string) string {
	payment, err := uc.bookingRepo.GetPaymentByBookingID(ctx, booking.ID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": booking.ID}).
			WithError(err).Error("failed to look up payment for refund")
		return "Booking cancelled but refund status could not be determined"
	}
	if payment == nil || payment.Status != models.PaymentStatusSuccess {
		return ""
	}

	if err := uc.paymentGW.Refund(ctx, payment.ID, reason); err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "payment_id": payment.ID}).
			WithError(err).Error("refund request failed")
		return "Booking cancelled but refund failed, please contact support"
	}
	return ""
}

// VerifyPickupOtp checks the OTP presented by the driver against a CONFIRMED
// booking and records the pickup time. It never changes the trip's status;
// trips start only through the driver's explicit start action.
func (uc *bookingUC) VerifyPickupOtp(ctx context.Context, bookingID uuid.UUID, otp string) (*models.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, apperrors.BadRequest("Booking is not confirmed")
	}
	if booking.PickupOtp == nil || otp == "" || otp != *booking.PickupOtp {
		return nil, apperrors.BadRequest("Invalid OTP")
	}

	ok, err := uc.bookingRepo.MarkPickupVerified(ctx, bookingID)
	if err != nil {
		return nil, apperrors.Wrap("failed to record pickup verification", err)
	}
	if !ok {
		return nil, apperrors.Conflict("Booking status changed, please retry")
	}
	now := time.Now()
	booking.PickupVerifiedAt = &now

	return uc.enrichBookingResponse(ctx, booking), nil
}

// AutoCancelPendingBookings cancels PENDING bookings the driver never acted on
// within the confirmation window. Each booking goes through the regular cancel
// path so seats are restored; failures are logged and the sweep continues.
func (uc *bookingUC) AutoCancelPendingBookings(ctx context.Context) error {
	timeout := time.Duration(uc.cfg.Bookings.PendingTimeoutMinutes) * time.Minute
	cutoff := time.Now().Add(-timeout)

	stale, err := uc.bookingRepo.GetStalePendingBookings(ctx, cutoff)
	if err != nil {
		return apperrors.Wrap("failed to list stale pending bookings", err)
	}

	cancelled := 0
	for _, booking := range stale {
		if _, err := uc.CancelBooking(ctx, booking.ID, "Auto-cancelled due to timeout"); err != nil {
			if apperrors.IsConflict(err) || apperrors.IsBadRequest(err) {
				// lost the race to a concurrent confirm or cancel
				continue
			}
			uc.log.WithFields(logrus.Fields{"booking_id": booking.ID}).
				WithError(err).Error("failed to auto-cancel pending booking")
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		uc.log.WithFields(logrus.Fields{"cancelled": cancelled}).
			Info("auto-cancelled stale pending bookings")
	}
	return nil
}

// CancelBookingsForTrip cancels every CONFIRMED booking on a trip, restoring
// seats and refunding paid bookings. Used when the trip itself is cancelled.
// The trip is already terminal when this runs, so a failure on one booking
// must not strand the rest; errors are logged and the cascade continues.
func (uc *bookingUC) CancelBookingsForTrip(ctx context.Context, tripID uuid.UUID, reason string) ([]*models.Booking, error) {
	confirmed, err := uc.bookingRepo.GetConfirmedByTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list confirmed bookings", err)
	}

	cancelled := make([]*models.Booking, 0, len(confirmed))
	for _, booking := range confirmed {
		ok, err := uc.bookingRepo.TransitionStatus(ctx, booking.ID, models.BookingStatusConfirmed, models.BookingStatusCancelled)
		if err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "trip_id": tripID}).
				WithError(err).Error("failed to cancel booking for cancelled trip")
			continue
		}
		if !ok {
			continue
		}
		booking.Status = models.BookingStatusCancelled

		if err := uc.trips.RestoreSeats(ctx, tripID, booking.SeatsBooked); err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "trip_id": tripID}).
				WithError(err).Error("failed to restore seats for cancelled booking")
		}
		if warn := uc.refundBooking(ctx, booking, reason); warn != "" {
			uc.log.WithFields(logrus.Fields{"booking_id": booking.ID}).
				Warn("refund incomplete for booking cancelled with trip")
		}
		cancelled = append(cancelled, booking)
	}

	return cancelled, nil
}

// CompleteBookingsForTrip completes every CONFIRMED booking on a trip and bumps
// each passenger's ride counter. Used when the trip completes. As with the
// cancel cascade, per-booking failures are logged and skipped so one bad row
// cannot strand the remaining bookings on a terminal trip.
func (uc *bookingUC) CompleteBookingsForTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Booking, error) {
	confirmed, err := uc.bookingRepo.GetConfirmedByTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list confirmed bookings", err)
	}

	completed := make([]*models.Booking, 0, len(confirmed))
	for _, booking := range confirmed {
		ok, err := uc.bookingRepo.TransitionStatus(ctx, booking.ID, models.BookingStatusConfirmed, models.BookingStatusCompleted)
		if err != nil {
			uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "trip_id": tripID}).
				WithError(err).Error("failed to complete booking for completed trip")
			continue
		}
		if !ok {
			continue
		}
		booking.Status = models.BookingStatusCompleted

		if err := uc.users.IncrementTotalRides(ctx, booking.PassengerID); err != nil {
			uc.log.WithFields(logrus.Fields{"passenger_id": booking.PassengerID}).
				WithError(err).Warn("failed to increment passenger ride count")
		}
		completed = append(completed, booking)
	}

	return completed, nil
}

// ConfirmedSeatCount returns the number of seats held by CONFIRMED bookings
func (uc *bookingUC) ConfirmedSeatCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	count, err := uc.bookingRepo.CountConfirmedSeats(ctx, tripID)
	if err != nil {
		return 0, apperrors.Wrap("failed to count confirmed seats", err)
	}
	return count, nil
}

// ConfirmedPassengerIDs returns the passengers holding CONFIRMED bookings
func (uc *bookingUC) ConfirmedPassengerIDs(ctx context.Context, tripID uuid.UUID) ([]uuid.UUID, error) {
	confirmed, err := uc.bookingRepo.GetConfirmedByTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list confirmed bookings", err)
	}
	ids := make([]uuid.UUID, 0, len(confirmed))
	for _, booking := range confirmed {
		ids = append(ids, booking.PassengerID)
	}
	return ids, nil
}

// GetPassengerBookings returns all bookings placed by a passenger
func (uc *bookingUC) GetPassengerBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingResponse, error) {
	found, err := uc.bookingRepo.GetBookingsByPassenger(ctx, passengerID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list passenger bookings", err)
	}
	return uc.enrichBookingResponses(ctx, found), nil
}

// GetTripBookings returns all bookings on a trip
func (uc *bookingUC) GetTripBookings(ctx context.Context, tripID uuid.UUID) ([]*models.BookingResponse, error) {
	found, err := uc.bookingRepo.GetBookingsByTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list trip bookings", err)
	}
	return uc.enrichBookingResponses(ctx, found), nil
}

// GetDriverBookings returns bookings across all of a driver's trips
func (uc *bookingUC) GetDriverBookings(ctx context.Context, driverID uuid.UUID) ([]*models.BookingResponse, error) {
	found, err := uc.bookingRepo.GetBookingsByDriver(ctx, driverID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list driver bookings", err)
	}
	return uc.enrichBookingResponses(ctx, found), nil
}

// GetBookingDetails returns a single booking enriched with display fields
func (uc *bookingUC) GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return uc.enrichBookingResponse(ctx, booking), nil
}

func (uc *bookingUC) enrichBookingResponses(ctx context.Context, found []*models.Booking) []*models.BookingResponse {
	responses := make([]*models.BookingResponse, 0, len(found))
	for _, booking := range found {
		responses = append(responses, uc.enrichBookingResponse(ctx, booking))
	}
	return responses
}

// enrichBookingResponse resolves passenger, trip, driver, vehicle and payment
// display fields. Lookups are non-essential for reads, so failures degrade to
// a bare booking.
func (uc *bookingUC) enrichBookingResponse(ctx context.Context, booking *models.Booking) *models.BookingResponse {
	resp := &models.BookingResponse{Booking: *booking}

	if passenger, err := uc.users.GetUser(ctx, booking.PassengerID); err == nil {
		resp.PassengerName = passenger.Name
	} else {
		uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "passenger_id": booking.PassengerID}).
			WithError(err).Warn("failed to resolve passenger for booking response")
	}

	trip, err := uc.trips.GetTripByID(ctx, booking.TripID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"booking_id": booking.ID, "trip_id": booking.TripID}).
			WithError(err).Warn("failed to resolve trip for booking response")
	} else {
		resp.TripFrom = trip.FromLocation
		resp.TripTo = trip.ToLocation
		resp.DepartureTime = trip.DepartureTime
		resp.TripNotes = trip.Notes

		driver, vehicle := uc.resolveDriverAndVehicle(ctx, trip)
		if driver != nil {
			resp.DriverName = driver.Name
			resp.DriverPhone = driver.Mobile
		}
		if vehicle != nil {
			resp.VehicleModel = vehicle.Model
			resp.VehicleNumber = vehicle.VehicleNumber
		}
	}

	if payment, err := uc.bookingRepo.GetPaymentByBookingID(ctx, booking.ID); err == nil && payment != nil {
		resp.PaymentStatus = string(payment.Status)
	}

	return resp
}

func (uc *bookingUC) resolveDriverAndVehicle(ctx context.Context, trip *models.Trip) (*models.User, *models.Vehicle) {
	driver, err := uc.users.GetUser(ctx, trip.DriverID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": trip.ID, "driver_id": trip.DriverID}).
			WithError(err).Warn("failed to resolve driver")
		driver = nil
	}
	vehicle, err := uc.users.GetVehicle(ctx, trip.VehicleID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{"trip_id": trip.ID, "vehicle_id": trip.VehicleID}).
			WithError(err).Warn("failed to resolve vehicle")
		vehicle = nil
	}
	return driver, vehicle
}
