// Package event defines the immutable domain events emitted after a sale
// state change has been persisted.
package event

import (
	"time"

	"github.com/google/uuid"
)

// ItemModificationKind tags a SaleItemModified event with what happened to
// the item during an update.
type ItemModificationKind string

const (
	ItemAdded   ItemModificationKind = "added"
	ItemUpdated ItemModificationKind = "updated"
	ItemRemoved ItemModificationKind = "removed"
)

// DomainEvent is an immutable record of a completed state change.
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// SaleCreated is emitted once a new sale has been persisted.
type SaleCreated struct {
	SaleID     uuid.UUID
	SaleNumber string
	Timestamp  time.Time
}

// NewSaleCreated creates a SaleCreated event stamped with the current time.
func NewSaleCreated(saleID uuid.UUID, saleNumber string) SaleCreated {
	return SaleCreated{SaleID: saleID, SaleNumber: saleNumber, Timestamp: time.Now().UTC()}
}

func (e SaleCreated) EventType() string     { return "sale.created" }
func (e SaleCreated) OccurredAt() time.Time { return e.Timestamp }

// SaleModified is emitted once an update to a sale has been persisted.
type SaleModified struct {
	SaleID    uuid.UUID
	Timestamp time.Time
}

// NewSaleModified creates a SaleModified event stamped with the current time.
func NewSaleModified(saleID uuid.UUID) SaleModified {
	return SaleModified{SaleID: saleID, Timestamp: time.Now().UTC()}
}

func (e SaleModified) EventType() string     { return "sale.modified" }
func (e SaleModified) OccurredAt() time.Time { return e.Timestamp }

// SaleItemModified is emitted for every item added, updated or removed during
// a persisted sale update.
type SaleItemModified struct {
	SaleID      uuid.UUID
	ItemID      uuid.UUID
	ProductName string
	Quantity    int
	Kind        ItemModificationKind
	Timestamp   time.Time
}

// NewSaleItemModified creates a SaleItemModified event stamped with the
// current time.
func NewSaleItemModified(saleID, itemID uuid.UUID, productName string, quantity int, kind ItemModificationKind) SaleItemModified {
	return SaleItemModified{
		SaleID:      saleID,
		ItemID:      itemID,
		ProductName: productName,
		Quantity:    quantity,
		Kind:        kind,
		Timestamp:   time.Now().UTC(),
	}
}

func (e SaleItemModified) EventType() string     { return "sale.item.modified" }
func (e SaleItemModified) OccurredAt() time.Time { return e.Timestamp }

// SaleCancelled is emitted once a sale cancellation has been persisted.
type SaleCancelled struct {
	SaleID     uuid.UUID
	SaleNumber string
	Timestamp  time.Time
}

// NewSaleCancelled creates a SaleCancelled event stamped with the current
// time.
func NewSaleCancelled(saleID uuid.UUID, saleNumber string) SaleCancelled {
	return SaleCancelled{SaleID: saleID, SaleNumber: saleNumber, Timestamp: time.Now().UTC()}
}

func (e SaleCancelled) EventType() string     { return "sale.cancelled" }
func (e SaleCancelled) OccurredAt() time.Time { return e.Timestamp }
