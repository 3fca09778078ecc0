package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/yavijexpress/internal/pkg/constants"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// Publisher publishes JSON messages to an NSQ topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// BookingGW publishes booking notification events to NSQ
type BookingGW struct {
	producer Publisher
}

// NewBookingGW creates a new booking notification gateway
func NewBookingGW(producer Publisher) *BookingGW {
	return &BookingGW{producer: producer}
}

// PublishBookingRequested notifies the driver about a new booking request
func (g *BookingGW) PublishBookingRequested(_ context.Context, booking *models.Booking, trip *models.Trip) error {
	event := models.NotificationEvent{
		UserID: trip.DriverID.String(),
		Title:  "New booking request",
		Body: fmt.Sprintf("A passenger requested %d seat(s) on your trip from %s to %s",
			booking.SeatsBooked, trip.FromLocation, trip.ToLocation),
		RelatedEntity: "booking",
		RelatedID:     booking.ID.String(),
		OccurredAt:    time.Now(),
	}
	return g.producer.Publish(constants.TopicBookingRequested, event)
}

// PublishBookingConfirmed sends the passenger their pickup OTP along with the
// driver and vehicle details
func (g *BookingGW) PublishBookingConfirmed(_ context.Context, booking *models.Booking, trip *models.Trip, driver *models.User, vehicle *models.Vehicle) error {
	body := fmt.Sprintf("Your booking from %s to %s is confirmed", trip.FromLocation, trip.ToLocation)
	if booking.PickupOtp != nil {
		body = fmt.Sprintf("%s. Pickup code: %s", body, *booking.PickupOtp)
	}
	if driver != nil {
		body = fmt.Sprintf("%s. Driver: %s (%s)", body, driver.Name, driver.Mobile)
	}
	if vehicle != nil {
		body = fmt.Sprintf("%s. Vehicle: %s %s", body, vehicle.Model, vehicle.VehicleNumber)
	}

	event := models.NotificationEvent{
		UserID:        booking.PassengerID.String(),
		Title:         "Booking confirmed",
		Body:          body,
		RelatedEntity: "booking",
		RelatedID:     booking.ID.String(),
		OccurredAt:    time.Now(),
	}
	return g.producer.Publish(constants.TopicBookingConfirmed, event)
}

// PublishBookingDenied notifies the passenger that the driver denied the booking
func (g *BookingGW) PublishBookingDenied(_ context.Context, booking *models.Booking, trip *models.Trip) error {
	event := models.NotificationEvent{
		UserID: booking.PassengerID.String(),
		Title:  "Booking denied",
		Body: fmt.Sprintf("Your booking request from %s to %s was denied by the driver",
			trip.FromLocation, trip.ToLocation),
		RelatedEntity: "booking",
		RelatedID:     booking.ID.String(),
		OccurredAt:    time.Now(),
	}
	return g.producer.Publish(constants.TopicBookingDenied, event)
}

// PublishBookingCancelled notifies both parties that the booking was cancelled
func (g *BookingGW) PublishBookingCancelled(_ context.Context, booking *models.Booking, trip *models.Trip, reason string) error {
	body := fmt.Sprintf("Booking from %s to %s was cancelled", trip.FromLocation, trip.ToLocation)
	if reason != "" {
		body = fmt.Sprintf("%s: %s", body, reason)
	}

	now := time.Now()
	for _, userID := range []string{booking.PassengerID.String(), trip.DriverID.String()} {
		event := models.NotificationEvent{
			UserID:        userID,
			Title:         "Booking cancelled",
			Body:          body,
			RelatedEntity: "booking",
			RelatedID:     booking.ID.String(),
			OccurredAt:    now,
		}
		if err := g.producer.Publish(constants.TopicBookingCancelled, event); err != nil {
			return err
		}
	}
	return nil
}
