package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	log      *logger.AppLogger
}

// NewUserUC creates a new user directory use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, log *logger.AppLogger) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		log:      log,
	}
}

// GetUser returns a user by ID
func (uc *userUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// GetVehicle returns a vehicle by ID
func (uc *userUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return uc.userRepo.GetVehicleByID(ctx, id)
}

// GetUserVehicles returns all vehicles registered by a user
func (uc *userUC) GetUserVehicles(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	found, err := uc.userRepo.GetVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("failed to list user vehicles", err)
	}
	return found, nil
}

// IncrementTotalRides bumps the user's completed ride counter
func (uc *userUC) IncrementTotalRides(ctx context.Context, userID uuid.UUID) error {
	return uc.userRepo.IncrementTotalRides(ctx, userID)
}

// PurgeUser removes the user and all rows tied to them. Lifecycle operations
// only ever flip statuses; this is the single place rows are deleted.
func (uc *userUC) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.userRepo.PurgeUserData(ctx, userID); err != nil {
		return apperrors.Wrap("failed to purge user", err)
	}

	uc.log.WithFields(logrus.Fields{"user_id": userID}).Info("user purged")
	return nil
}
