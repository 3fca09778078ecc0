package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/pkg/middleware"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/trips"
)

// TripHandler handles HTTP requests for trip lifecycle operations
type TripHandler struct {
	tripUC trips.TripUC
	cfg    *models.Config
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC, cfg *models.Config) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		cfg:    cfg,
	}
}

// RegisterRoutes registers trip routes on the Echo server
func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	// Public search endpoints
	e.GET("/trips/search", h.SearchTrips)
	e.GET("/trips/upcoming", h.GetUpcomingTrips)
	e.GET("/trips/:id", h.GetTripDetails)

	auth := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.POST("", h.CreateTrip)
	auth.PUT("/:id", h.UpdateTrip)
	auth.POST("/:id/cancel", h.CancelTrip)
	auth.POST("/:id/start", h.StartTrip)
	auth.POST("/:id/complete", h.CompleteTrip)
	auth.GET("/mine", h.GetDriverTrips)
}
