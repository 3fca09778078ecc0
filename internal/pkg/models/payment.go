package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment represents a payment made against a booking
type Payment struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	BookingID uuid.UUID     `json:"booking_id" db:"booking_id"`
	Amount    float64       `json:"amount" db:"amount"`
	Status    PaymentStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// RefundRequest is the payload sent to the payment gateway for a refund
type RefundRequest struct {
	PaymentID string `json:"payment_id"`
	Reason    string `json:"reason"`
}
