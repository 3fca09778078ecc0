package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/pkg/middleware"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/bookings"
)

// BookingHandler handles HTTP requests for booking lifecycle operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
	cfg       *models.Config
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC, cfg *models.Config) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		cfg:       cfg,
	}
}

// RegisterRoutes registers booking routes on the Echo server
func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.POST("", h.CreateBooking)
	auth.GET("/mine", h.GetPassengerBookings)
	auth.GET("/driver", h.GetDriverBookings)
	auth.GET("/:id", h.GetBookingDetails)
	auth.POST("/:id/confirm", h.ConfirmBooking)
	auth.POST("/:id/deny", h.DenyBooking)
	auth.POST("/:id/cancel", h.CancelBooking)
	auth.POST("/:id/verify-pickup", h.VerifyPickupOtp)

	trips := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	trips.GET("/:id/bookings", h.GetTripBookings)
}
