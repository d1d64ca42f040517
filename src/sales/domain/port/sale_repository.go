package port

import (
	"context"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
)

// SaleFilter narrows listing and counting. Customer and Branch are substring
// matches; an empty string means no filter. IsCancelled filters on the
// cancellation flag when set.
type SaleFilter struct {
	Customer    string
	Branch      string
	IsCancelled *bool
}

// SaleRepository defines the persistence contract for the Sale aggregate.
// Implementations persist the root and its items atomically per call.
type SaleRepository interface {
	// Create persists a new sale with its items.
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// GetByID loads a sale with its items. Returns *entity.NotFoundError
	// when no sale has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// Update rewrites a sale and its item set.
	Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// Cancel marks a sale cancelled directly in the store. Returns false
	// when the sale does not exist or is already cancelled.
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)

	// GetAll returns one page of sales. sortBy is one of saleDate,
	// customer, totalAmount, branch (case-insensitive); anything else
	// falls back to saleDate.
	GetAll(ctx context.Context, pageNumber, pageSize int, sortBy, sortOrder string, filter SaleFilter) ([]*entity.Sale, error)

	// GetCount returns the number of sales matching the filter.
	GetCount(ctx context.Context, filter SaleFilter) (int, error)
}
