package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// IsTerminal reports whether the status admits no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// HoldsSeats reports whether a booking in this status holds seat inventory
func (s BookingStatus) HoldsSeats() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking represents a passenger's reservation of seats on a trip
type Booking struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	TripID           uuid.UUID     `json:"trip_id" db:"trip_id"`
	PassengerID      uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatsBooked      int           `json:"seats_booked" db:"seats_booked"`
	TotalAmount      float64       `json:"total_amount" db:"total_amount"`
	Status           BookingStatus `json:"status" db:"status"`
	PickupOtp        *string       `json:"pickup_otp,omitempty" db:"pickup_otp"`
	PickupVerifiedAt *time.Time    `json:"pickup_verified_at,omitempty" db:"pickup_verified_at"`
	SpecialRequests  string        `json:"special_requests,omitempty" db:"special_requests"`
	BookedAt         time.Time     `json:"booked_at" db:"booked_at"`
	CancelledAt      *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	PaymentID        *uuid.UUID    `json:"payment_id,omitempty" db:"payment_id"`
}

// BookingRequest represents the payload for creating a booking
type BookingRequest struct {
	TripID          string `json:"trip_id"`
	Seats           int    `json:"seats"`
	SpecialRequests string `json:"special_requests"`
}

// VerifyPickupRequest carries the OTP presented by the driver at pickup
type VerifyPickupRequest struct {
	Otp string `json:"otp"`
}

// BookingResponse is a booking enriched with trip, driver and vehicle display fields
type BookingResponse struct {
	Booking
	PassengerName string    `json:"passenger_name"`
	TripFrom      string    `json:"trip_from"`
	TripTo        string    `json:"trip_to"`
	DepartureTime time.Time `json:"departure_time"`
	TripNotes     string    `json:"trip_notes,omitempty"`
	DriverName    string    `json:"driver_name"`
	DriverPhone   string    `json:"driver_phone"`
	VehicleModel  string    `json:"vehicle_model"`
	VehicleNumber string    `json:"vehicle_number"`
	PaymentStatus string    `json:"payment_status"`
	Warning       string    `json:"warning,omitempty"`
}
