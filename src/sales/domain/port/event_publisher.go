package port

import (
	"context"

	"sales/src/sales/domain/event"
)

// EventPublisher delivers domain events to their consumers. Publication is
// fire-and-forget from the caller's perspective: a returned error means the
// event was not accepted for delivery, never that the triggering state change
// failed.
type EventPublisher interface {
	Publish(ctx context.Context, evt event.DomainEvent) error
}
