package service

import (
	"context"
)

// Donor event types.
const (
	EventDonorRegistered = "donor.registered"
	EventHistoryPurged   = "history.purged"
)

// DonorEvent represents a change to the donor registry published for
// downstream consumers (audit, analytics).
type DonorEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`
	DonorID    string `json:"donor_id,omitempty"`
	OwnerID    string `json:"owner_id"`
	BloodGroup string `json:"blood_group,omitempty"`
	Deleted    int    `json:"deleted,omitempty"` // Record count for purge events
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonorEvent publishes a donor registry event for async processing
	PublishDonorEvent(ctx context.Context, event *DonorEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
