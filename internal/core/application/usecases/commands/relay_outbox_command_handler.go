package commands

import (
	"context"
	"fmt"
	"time"

	"eats/internal/core/ports"
)

// RelayOutboxCommandHandler moves outbox messages to the event publisher.
// Messages are published in order and the batch stops at the first failure,
// so a message is never marked published before the broker accepted it.
// Delivery is at least once: a crash between publish and mark repeats the
// message.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
}

func NewRelayOutboxCommandHandler(outbox ports.OutboxRepository, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{outbox: outbox, publisher: publisher}
}

// Handle returns how many messages were published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.outbox.ListUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, fmt.Errorf("list outbox: %w", err)
	}

	published := 0
	for _, msg := range pending {
		if err = h.publisher.Publish(ctx, msg.Type, msg.ID.String(), msg.Payload); err != nil {
			return published, fmt.Errorf("publish %s %s: %w", msg.Type, msg.ID, err)
		}
		if err = h.outbox.MarkPublished(ctx, msg.ID, time.Now().UTC()); err != nil {
			return published, fmt.Errorf("mark %s published: %w", msg.ID, err)
		}
		published++
	}
	return published, nil
}
