package models

import "time"

// NotificationEvent is a fire-and-forget status-change message published to NSQ.
// Delivery failures must never abort the lifecycle operation that produced it.
type NotificationEvent struct {
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	RelatedEntity string    `json:"related_entity"`
	RelatedID     string    `json:"related_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
