package usecase

import (
	"context"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"

	"go.uber.org/zap"
)

// publishEvent hands an event to the publisher after persistence has
// committed. A publication failure is logged and swallowed: delivery is
// best-effort and must never undo a committed state change.
func publishEvent(ctx context.Context, publisher port.EventPublisher, logger *zap.Logger, evt event.DomainEvent) {
	if err := publisher.Publish(ctx, evt); err != nil {
		logger.Warn("failed to publish domain event",
			zap.String("event_type", evt.EventType()),
			zap.Error(err),
		)
	}
}
