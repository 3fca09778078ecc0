package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered driver or passenger
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Mobile     string    `json:"mobile" db:"mobile"`
	Role       string    `json:"role" db:"role"`
	TotalRides int       `json:"total_rides" db:"total_rides"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Vehicle represents a vehicle registered by a driver
type Vehicle struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Model         string    `json:"model" db:"model"`
	VehicleNumber string    `json:"vehicle_number" db:"vehicle_number"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
