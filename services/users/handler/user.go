package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/utils"
)

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// GetProfile returns the authenticated user's directory entry
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// GetMyVehicles lists the authenticated user's vehicles
func (h *UserHandler) GetMyVehicles(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicles, err := h.userUC.GetUserVehicles(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// PurgeAccount deletes the authenticated user and everything tied to them
func (h *UserHandler) PurgeAccount(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userUC.PurgeUser(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User purged successfully", nil)
}
