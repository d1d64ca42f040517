// Package eventbus delivers domain events to an in-process consumer over a
// buffered queue, decoupled from the transaction that produced them.
package eventbus

import (
	"context"
	"fmt"
	"sync"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_events_published_total",
			Help: "Domain events accepted for delivery, by event type.",
		},
		[]string{"event_type"},
	)
	eventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_events_dropped_total",
			Help: "Domain events dropped because the queue was full or closed.",
		},
	)
)

func init() {
	prometheus.MustRegister(eventsPublished, eventsDropped)
}

// AsyncPublisher queues events and consumes them on a background goroutine.
// Delivery is best-effort: a full queue drops the event with a warning, and a
// returned error never rolls back the state change that produced the event.
type AsyncPublisher struct {
	queue  chan event.DomainEvent
	logger *zap.Logger
	wg     sync.WaitGroup

	// mu orders enqueues against the close of the queue: Publish sends
	// under the read lock, Stop closes under the write lock, so a send on
	// a closed channel cannot happen.
	mu     sync.RWMutex
	closed bool
}

// NewAsyncPublisher creates a publisher with the given queue capacity.
func NewAsyncPublisher(logger *zap.Logger, bufferSize int) *AsyncPublisher {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &AsyncPublisher{
		queue:  make(chan event.DomainEvent, bufferSize),
		logger: logger,
	}
}

var _ port.EventPublisher = (*AsyncPublisher)(nil)

// Start runs the consumer loop until Stop closes the queue.
func (p *AsyncPublisher) Start() {
	p.wg.Add(1)
	go p.consume()
}

// Stop closes the queue and blocks until the backlog has drained.
func (p *AsyncPublisher) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Publish enqueues an event without blocking the caller.
func (p *AsyncPublisher) Publish(ctx context.Context, evt event.DomainEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		eventsDropped.Inc()
		return fmt.Errorf("event bus is shut down, dropping %s", evt.EventType())
	}

	select {
	case p.queue <- evt:
		eventsPublished.WithLabelValues(evt.EventType()).Inc()
		return nil
	default:
		eventsDropped.Inc()
		return fmt.Errorf("event queue full, dropping %s", evt.EventType())
	}
}

func (p *AsyncPublisher) consume() {
	defer p.wg.Done()
	for evt := range p.queue {
		p.handle(evt)
	}
}

// handle is the logging observer for every event variant.
func (p *AsyncPublisher) handle(evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.SaleCreated:
		p.logger.Info("domain event",
			zap.String("event_type", e.EventType()),
			zap.String("sale_id", e.SaleID.String()),
			zap.String("sale_number", e.SaleNumber),
			zap.Time("occurred_at", e.OccurredAt()),
		)
	case event.SaleModified:
		p.logger.Info("domain event",
			zap.String("event_type", e.EventType()),
			zap.String("sale_id", e.SaleID.String()),
			zap.Time("occurred_at", e.OccurredAt()),
		)
	case event.SaleItemModified:
		p.logger.Info("domain event",
			zap.String("event_type", e.EventType()),
			zap.String("sale_id", e.SaleID.String()),
			zap.String("item_id", e.ItemID.String()),
			zap.String("product_name", e.ProductName),
			zap.Int("quantity", e.Quantity),
			zap.String("modification", string(e.Kind)),
			zap.Time("occurred_at", e.OccurredAt()),
		)
	case event.SaleCancelled:
		p.logger.Info("domain event",
			zap.String("event_type", e.EventType()),
			zap.String("sale_id", e.SaleID.String()),
			zap.String("sale_number", e.SaleNumber),
			zap.Time("occurred_at", e.OccurredAt()),
		)
	default:
		p.logger.Info("domain event",
			zap.String("event_type", evt.EventType()),
			zap.Time("occurred_at", evt.OccurredAt()),
		)
	}
}
