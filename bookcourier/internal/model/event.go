package model

import "time"

type EventType string

const (
	EventUserCreated        EventType = "user.created"
	EventBookCreated        EventType = "book.created"
	EventBookStatusChanged  EventType = "book.status_changed"
	EventBookDeleted        EventType = "book.deleted"
	EventOrderCreated       EventType = "order.created"
	EventOrderCancelled     EventType = "order.cancelled"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventWishlistAdded      EventType = "wishlist.added"
	EventReviewCreated      EventType = "review.created"
)

// Event is a lifecycle fact published after a successful mutation.
type Event struct {
	Type       EventType `json:"type" db:"event_type"`
	EntityID   string    `json:"entityId" db:"entity_id"`
	Actor      string    `json:"actor" db:"actor"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
}

type EventStats struct {
	Type           EventType `json:"type" db:"event_type"`
	Count          int       `json:"count" db:"cnt"`
	LastOccurredAt time.Time `json:"lastOccurredAt" db:"last_occurred_at"`
}

type StatsInfo struct {
	Data []EventStats `json:"data"`
}
