package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/constants"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// Publisher publishes JSON messages to an NSQ topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// TripGW publishes trip notification events to NSQ
type TripGW struct {
	producer Publisher
}

// NewTripGW creates a new trip notification gateway
func NewTripGW(producer Publisher) *TripGW {
	return &TripGW{producer: producer}
}

// PublishTripCreated announces a newly scheduled trip
func (g *TripGW) PublishTripCreated(_ context.Context, trip *models.Trip) error {
	event := models.NotificationEvent{
		UserID:        trip.DriverID.String(),
		Title:         "Trip scheduled",
		Body:          fmt.Sprintf("Your trip from %s to %s is scheduled", trip.FromLocation, trip.ToLocation),
		RelatedEntity: "trip",
		RelatedID:     trip.ID.String(),
		OccurredAt:    time.Now(),
	}
	return g.producer.Publish(constants.TopicTripCreated, event)
}

// PublishTripUpdated notifies confirmed passengers about trip changes
func (g *TripGW) PublishTripUpdated(_ context.Context, trip *models.Trip, passengerIDs []uuid.UUID) error {
	return g.publishToPassengers(constants.TopicTripUpdated, trip, passengerIDs,
		"Trip updated",
		fmt.Sprintf("Your trip from %s to %s was updated", trip.FromLocation, trip.ToLocation))
}

// PublishTripCancelled notifies affected passengers about a cancellation
func (g *TripGW) PublishTripCancelled(_ context.Context, trip *models.Trip, reason string, passengerIDs []uuid.UUID) error {
	return g.publishToPassengers(constants.TopicTripCancelled, trip, passengerIDs,
		"Trip cancelled",
		fmt.Sprintf("Your trip from %s to %s was cancelled: %s", trip.FromLocation, trip.ToLocation, reason))
}

// PublishTripStarted announces that the driver has started the trip
func (g *TripGW) PublishTripStarted(_ context.Context, trip *models.Trip) error {
	event := models.NotificationEvent{
		UserID:        trip.DriverID.String(),
		Title:         "Trip started",
		Body:          fmt.Sprintf("Trip from %s to %s is now ongoing", trip.FromLocation, trip.ToLocation),
		RelatedEntity: "trip",
		RelatedID:     trip.ID.String(),
		OccurredAt:    time.Now(),
	}
	return g.producer.Publish(constants.TopicTripStarted, event)
}

// PublishTripCompleted notifies the driver and carried passengers of completion
func (g *TripGW) PublishTripCompleted(_ context.Context, trip *models.Trip, passengerIDs []uuid.UUID) error {
	recipients := append([]uuid.UUID{trip.DriverID}, passengerIDs...)
	return g.publishToPassengers(constants.TopicTripCompleted, trip, recipients,
		"Trip completed",
		fmt.Sprintf("Trip from %s to %s is completed", trip.FromLocation, trip.ToLocation))
}

func (g *TripGW) publishToPassengers(topic string, trip *models.Trip, recipients []uuid.UUID, title, body string) error {
	now := time.Now()
	for _, userID := range recipients {
		event := models.NotificationEvent{
			UserID:        userID.String(),
			Title:         title,
			Body:          body,
			RelatedEntity: "trip",
			RelatedID:     trip.ID.String(),
			OccurredAt:    now,
		}
		if err := g.producer.Publish(topic, event); err != nil {
			return err
		}
	}
	return nil
}
