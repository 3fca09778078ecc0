package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/internal/utils"
)

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

func bookingIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// CreateBooking handles a passenger requesting seats on a trip
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	passengerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), passengerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// ConfirmBooking handles the driver accepting a pending booking
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.ConfirmBooking(c.Request().Context(), bookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking confirmed successfully", booking)
}

// DenyBooking handles the driver rejecting a pending booking
func (h *BookingHandler) DenyBooking(c echo.Context) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.DenyBooking(c.Request().Context(), bookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking denied", booking)
}

// CancelBooking handles booking cancellation by either party
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	type cancelBody struct {
		Reason string `json:"reason"`
	}
	var req cancelBody
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, req.Reason)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// VerifyPickupOtp handles the driver verifying a passenger's pickup code
func (h *BookingHandler) VerifyPickupOtp(c echo.Context) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.VerifyPickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.VerifyPickupOtp(c.Request().Context(), bookingID, req.Otp)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup verified successfully", booking)
}

// GetPassengerBookings lists the authenticated passenger's bookings
func (h *BookingHandler) GetPassengerBookings(c echo.Context) error {
	passengerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	found, err := h.bookingUC.GetPassengerBookings(c.Request().Context(), passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", found)
}

// GetDriverBookings lists bookings across the authenticated driver's trips
func (h *BookingHandler) GetDriverBookings(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	found, err := h.bookingUC.GetDriverBookings(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", found)
}

// GetTripBookings lists all bookings on a trip
func (h *BookingHandler) GetTripBookings(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	found, err := h.bookingUC.GetTripBookings(c.Request().Context(), tripID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", found)
}

// GetBookingDetails returns a single booking
func (h *BookingHandler) GetBookingDetails(c echo.Context) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBookingDetails(c.Request().Context(), bookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}
