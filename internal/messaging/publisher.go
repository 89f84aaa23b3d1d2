package messaging

import (
	"context"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// Publisher defines the interface for publishing dividend events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a dividend event
	PublishEvent(ctx context.Context, event *domain.DividendEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event.
// Used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.DividendEvent) error { return nil }

func (noopPublisher) Close() {}
