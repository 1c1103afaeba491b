package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
)

// OutboxMessage is an event stored next to the order change that produced it.
type OutboxMessage struct {
	ID          kernel.UUID
	Type        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// ListUnpublished returns at most limit messages, oldest first.
	ListUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers one message to the broker. routingKey is the
// message type.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, messageID string, body []byte) error
}
