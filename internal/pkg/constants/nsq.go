package constants

// NSQ topics for notification events
const (
	TopicTripCreated   = "trip.created"
	TopicTripUpdated   = "trip.updated"
	TopicTripCancelled = "trip.cancelled"
	TopicTripStarted   = "trip.started"
	TopicTripCompleted = "trip.completed"

	TopicBookingRequested = "booking.requested"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingDenied    = "booking.denied"
	TopicBookingCancelled = "booking.cancelled"
)
