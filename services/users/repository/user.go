package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// UserRepo provides Postgres-backed user and vehicle data access
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, mobile, role, total_rides, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetVehicleByID retrieves a vehicle by ID
func (r *UserRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, user_id, model, vehicle_number, is_active, created_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	err := r.db.GetContext(ctx, vehicle, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("Vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

// GetVehiclesByUser retrieves all vehicles registered by a user
func (r *UserRepo) GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT id, user_id, model, vehicle_number, is_active, created_at
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	vehicles := []*models.Vehicle{}
	err := r.db.SelectContext(ctx, &vehicles, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user vehicles: %w", err)
	}

	return vehicles, nil
}

// IncrementTotalRides bumps the user's completed ride counter
func (r *UserRepo) IncrementTotalRides(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET total_rides = total_rides + 1, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to increment total rides: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// PurgeUserData deletes the user together with their vehicles, driven trips,
// placed bookings and dependent payments in a single transaction
func (r *UserRepo) PurgeUserData(ctx context.Context, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin purge transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []struct {
		query string
		args  []interface{}
	}{
		{`DELETE FROM payments WHERE booking_id IN (SELECT id FROM bookings WHERE passenger_id = $1)`, []interface{}{userID}},
		{`DELETE FROM payments WHERE booking_id IN (SELECT b.id FROM bookings b JOIN trips t ON t.id = b.trip_id WHERE t.driver_id = $1)`, []interface{}{userID}},
		{`DELETE FROM bookings WHERE passenger_id = $1`, []interface{}{userID}},
		{`DELETE FROM bookings WHERE trip_id IN (SELECT id FROM trips WHERE driver_id = $1)`, []interface{}{userID}},
		{`DELETE FROM trips WHERE driver_id = $1`, []interface{}{userID}},
		{`DELETE FROM vehicles WHERE user_id = $1`, []interface{}{userID}},
		{`DELETE FROM users WHERE id = $1`, []interface{}{userID}},
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("failed to purge user data: %w", err)
		}
	}

	return tx.Commit()
}
