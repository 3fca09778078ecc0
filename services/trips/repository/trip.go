package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// TripRepo provides Postgres-backed trip data access
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

const tripColumns = `
	id, from_location, to_location, departure_time, expected_arrival_time,
	price_per_seat, total_seats, available_seats, status, distance_km,
	route_polyline, is_flexible, notes, sober_declaration, is_active,
	driver_id, vehicle_id, created_at, updated_at
`

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, from_location, to_location, departure_time, expected_arrival_time,
			price_per_seat, total_seats, available_seats, status, distance_km,
			route_polyline, is_flexible, notes, sober_declaration, is_active,
			driver_id, vehicle_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.FromLocation,
		trip.ToLocation,
		trip.DepartureTime,
		trip.ExpectedArrivalTime,
		trip.PricePerSeat,
		trip.TotalSeats,
		trip.AvailableSeats,
		trip.Status,
		trip.DistanceKm,
		trip.RoutePolyline,
		trip.IsFlexible,
		trip.Notes,
		trip.SoberDeclaration,
		trip.IsActive,
		trip.DriverID,
		trip.VehicleID,
	)

	return err
}

// GetTripByID retrieves a trip by ID
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("Trip not found")
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// UpdateTrip updates the editable fields of a trip
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			from_location = $1, to_location = $2, departure_time = $3,
			expected_arrival_time = $4, price_per_seat = $5, total_seats = $6,
			available_seats = $7, distance_km = $8, route_polyline = $9,
			is_flexible = $10, notes = $11, updated_at = NOW()
		WHERE id = $12
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.FromLocation,
		trip.ToLocation,
		trip.DepartureTime,
		trip.ExpectedArrivalTime,
		trip.PricePerSeat,
		trip.TotalSeats,
		trip.AvailableSeats,
		trip.DistanceKm,
		trip.RoutePolyline,
		trip.IsFlexible,
		trip.Notes,
		trip.ID,
	)

	return err
}

// UpdateTripStatus transitions a trip between statuses with a conditional
// write so a stale caller cannot overwrite a terminal status
func (r *TripRepo) UpdateTripStatus(ctx context.Context, tripID uuid.UUID, expected, next models.TripStatus) (bool, error) {
	query := `UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, next, tripID, expected)
	if err != nil {
		return false, fmt.Errorf("failed to update trip status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// MarkTripStarted records the sober declaration and moves a SCHEDULED trip to ONGOING
func (r *TripRepo) MarkTripStarted(ctx context.Context, tripID uuid.UUID) (bool, error) {
	query := `
		UPDATE trips
		SET status = $1, sober_declaration = TRUE, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStatusOngoing, tripID, models.TripStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to mark trip started: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ReserveSeats atomically decrements available seats on a bookable trip.
// Zero rows affected means the seats were already gone (or the trip is no
// longer SCHEDULED), which callers report as an insufficient-seats conflict.
func (r *TripRepo) ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) (bool, error) {
	query := `
		UPDATE trips
		SET available_seats = available_seats - $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND available_seats >= $1
	`

	result, err := r.db.ExecContext(ctx, query, seats, tripID, models.TripStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to reserve seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// RestoreSeats returns previously reserved seats to the trip inventory,
// clamped so the counter never exceeds the total seat count
func (r *TripRepo) RestoreSeats(ctx context.Context, tripID uuid.UUID, seats int) error {
	query := `
		UPDATE trips
		SET available_seats = LEAST(available_seats + $1, total_seats), updated_at = NOW()
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, seats, tripID)
	if err != nil {
		return fmt.Errorf("failed to restore seats: %w", err)
	}
	return nil
}

// SearchTrips filters active scheduled trips by route, minimum departure time,
// seat availability and optional maximum price, ordered by departure time
func (r *TripRepo) SearchTrips(ctx context.Context, req *models.TripSearchRequest) ([]*models.Trip, error) {
	minDeparture := time.Now()
	if req.DepartureDate != nil {
		minDeparture = *req.DepartureDate
	}

	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1
		  AND is_active = TRUE
		  AND from_location ILIKE '%' || $2 || '%'
		  AND to_location ILIKE '%' || $3 || '%'
		  AND departure_time >= $4
		  AND available_seats >= $5
		  AND ($6::numeric IS NULL OR price_per_seat <= $6)
		ORDER BY departure_time ASC
	`

	trips := []*models.Trip{}
	err := r.db.SelectContext(
		ctx,
		&trips,
		query,
		models.TripStatusScheduled,
		req.FromLocation,
		req.ToLocation,
		minDeparture,
		req.RequiredSeats,
		req.MaxPrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}

	return trips, nil
}

// GetTripsByDriver retrieves all trips offered by a driver, newest first
func (r *TripRepo) GetTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_time DESC`

	trips := []*models.Trip{}
	err := r.db.SelectContext(ctx, &trips, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver trips: %w", err)
	}

	return trips, nil
}

// GetTripsDepartingBetween retrieves trips departing inside a time window
func (r *TripRepo) GetTripsDepartingBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE departure_time BETWEEN $1 AND $2
		ORDER BY departure_time ASC
	`

	trips := []*models.Trip{}
	err := r.db.SelectContext(ctx, &trips, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list departing trips: %w", err)
	}

	return trips, nil
}

// AdvanceDepartedTrips moves SCHEDULED trips whose departure time has passed to
// ONGOING. Re-running the sweep with no elapsed time matches no rows.
func (r *TripRepo) AdvanceDepartedTrips(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE trips
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND departure_time < $3
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStatusOngoing, models.TripStatusScheduled, now)
	if err != nil {
		return 0, fmt.Errorf("failed to advance departed trips: %w", err)
	}

	return result.RowsAffected()
}

// CompleteArrivedTrips moves ONGOING trips whose expected arrival time has
// passed to COMPLETED
func (r *TripRepo) CompleteArrivedTrips(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE trips
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND expected_arrival_time < $3
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStatusCompleted, models.TripStatusOngoing, now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete arrived trips: %w", err)
	}

	return result.RowsAffected()
}
