package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/internal/utils"
)

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

func tripIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// CreateTrip handles trip creation by a driver
func (h *TripHandler) CreateTrip(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// UpdateTrip handles edits to a scheduled trip
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), tripID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// CancelTrip handles trip cancellation
func (h *TripHandler) CancelTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	type cancelBody struct {
		Reason string `json:"reason"`
	}
	var req cancelBody
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), tripID, req.Reason); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", nil)
}

// StartTrip handles the driver starting a trip with a sober declaration
func (h *TripHandler) StartTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.SoberDeclarationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.tripUC.StartTrip(c.Request().Context(), tripID, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started successfully", nil)
}

// CompleteTrip handles trip completion
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.CompleteTrip(c.Request().Context(), tripID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", nil)
}

// SearchTrips handles trip search with query parameters
func (h *TripHandler) SearchTrips(c echo.Context) error {
	req := models.TripSearchRequest{
		FromLocation: c.QueryParam("from"),
		ToLocation:   c.QueryParam("to"),
	}

	if v := c.QueryParam("seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil || seats <= 0 {
			return utils.BadRequestResponse(c, "Invalid seats parameter")
		}
		req.RequiredSeats = seats
	}
	if v := c.QueryParam("departure_date"); v != "" {
		departure, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid departure_date parameter")
		}
		req.DepartureDate = &departure
	}
	if v := c.QueryParam("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil || maxPrice <= 0 {
			return utils.BadRequestResponse(c, "Invalid max_price parameter")
		}
		req.MaxPrice = &maxPrice
	}

	found, err := h.tripUC.SearchTrips(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", found)
}

// GetDriverTrips lists the authenticated driver's trips
func (h *TripHandler) GetDriverTrips(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	found, err := h.tripUC.GetDriverTrips(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", found)
}

// GetTripDetails returns a single trip
func (h *TripHandler) GetTripDetails(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTripDetails(c.Request().Context(), tripID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// GetUpcomingTrips lists active scheduled trips departing within a week
func (h *TripHandler) GetUpcomingTrips(c echo.Context) error {
	found, err := h.tripUC.GetUpcomingTrips(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", found)
}
