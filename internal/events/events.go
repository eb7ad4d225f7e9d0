// Package events publishes catalog change notifications.
package events

import (
	"context"
	"time"
)

// Event types emitted after successful catalog writes.
const (
	DishCreated     = "dish.created"
	DishUpdated     = "dish.updated"
	DishDeleted     = "dish.deleted"
	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"
)

// Event describes a single change to a dish or category.
type Event struct {
	Type       string      `json:"type"`
	Entity     string      `json:"entity"`
	ID         int64       `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data,omitempty"`
}

// NewEvent builds an event stamped with the current UTC time.
func NewEvent(eventType, entity string, id int64, data interface{}) Event {
	return Event{
		Type:       eventType,
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
