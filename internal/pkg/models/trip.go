package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled TripStatus = "SCHEDULED"
	TripStatusOngoing   TripStatus = "ONGOING"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// IsTerminal reports whether the status admits no further transitions
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trip represents a driver-offered ride with fixed route, schedule and seat capacity
type Trip struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	FromLocation        string     `json:"from_location" db:"from_location"`
	ToLocation          string     `json:"to_location" db:"to_location"`
	DepartureTime       time.Time  `json:"departure_time" db:"departure_time"`
	ExpectedArrivalTime time.Time  `json:"expected_arrival_time" db:"expected_arrival_time"`
	PricePerSeat        float64    `json:"price_per_seat" db:"price_per_seat"`
	TotalSeats          int        `json:"total_seats" db:"total_seats"`
	AvailableSeats      int        `json:"available_seats" db:"available_seats"`
	Status              TripStatus `json:"status" db:"status"`
	DistanceKm          *float64   `json:"distance_km,omitempty" db:"distance_km"`
	RoutePolyline       string     `json:"route_polyline,omitempty" db:"route_polyline"`
	IsFlexible          bool       `json:"is_flexible" db:"is_flexible"`
	Notes               string     `json:"notes,omitempty" db:"notes"`
	SoberDeclaration    bool       `json:"sober_declaration" db:"sober_declaration"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	DriverID            uuid.UUID  `json:"driver_id" db:"driver_id"`
	VehicleID           uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// TripRequest represents the payload for creating or updating a trip
type TripRequest struct {
	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	DepartureTime *time.Time `json:"departure_time"`
	PricePerSeat  *float64   `json:"price_per_seat"`
	TotalSeats    *int       `json:"total_seats"`
	VehicleID     string     `json:"vehicle_id"`
	DistanceKm    *float64   `json:"distance_km"`
	RoutePolyline string     `json:"route_polyline"`
	IsFlexible    *bool      `json:"is_flexible"`
	Notes         string     `json:"notes"`
}

// TripSearchRequest represents trip search criteria
type TripSearchRequest struct {
	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	DepartureDate *time.Time `json:"departure_date"`
	RequiredSeats int        `json:"required_seats"`
	MaxPrice      *float64   `json:"max_price"`
}

// SoberDeclarationRequest is the driver attestation required before a trip may start
type SoberDeclarationRequest struct {
	SoberDeclaration bool `json:"sober_declaration"`
}

// TripResponse is a trip enriched with driver and vehicle display fields
type TripResponse struct {
	Trip
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleNumber string `json:"vehicle_number"`
}
