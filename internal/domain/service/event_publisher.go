package service

import (
	"context"
	"time"
)

// Car lifecycle event types.
const (
	CarEventCreated      = "car.created"
	CarEventUpdated      = "car.updated"
	CarEventDeleted      = "car.deleted"
	CarEventImagesAdded  = "car.images_added"
	CarEventImageRemoved = "car.image_removed"
)

// CarEvent is published after a car mutation has been persisted.
type CarEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	CarID      string    `json:"car_id"`
	OwnerID    string    `json:"owner_id"`
	Images     []string  `json:"images,omitempty"` // Image URLs affected by the change
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishCarEvent(ctx context.Context, event *CarEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
