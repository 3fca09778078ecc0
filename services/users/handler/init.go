package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/yavijexpress/internal/pkg/middleware"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/users"
)

// UserHandler handles HTTP requests for the user/vehicle directory
type UserHandler struct {
	userUC users.UserUC
	cfg    *models.Config
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, cfg *models.Config) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		cfg:    cfg,
	}
}

// RegisterRoutes registers user routes on the Echo server
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.GET("/me", h.GetProfile)
	auth.GET("/me/vehicles", h.GetMyVehicles)
	auth.DELETE("/me", h.PurgeAccount)
}
