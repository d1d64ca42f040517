package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// SaleMemoryRepository is a thread-safe in-memory implementation of
// port.SaleRepository. It backs tests and lets the service boot without a
// database. Sales are deep-copied on the way in and out so callers never
// alias stored state.
type SaleMemoryRepository struct {
	mu    sync.RWMutex
	sales map[uuid.UUID]*entity.Sale
}

// NewSaleMemoryRepository creates an empty in-memory repository.
func NewSaleMemoryRepository() *SaleMemoryRepository {
	return &SaleMemoryRepository{
		sales: make(map[uuid.UUID]*entity.Sale),
	}
}

var _ port.SaleRepository = (*SaleMemoryRepository)(nil)

// Create stores a copy of the sale.
func (r *SaleMemoryRepository) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[sale.ID] = cloneSale(sale)
	return cloneSale(sale), nil
}

// GetByID returns a copy of the stored sale.
func (r *SaleMemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	sale, ok := r.sales[id]
	if !ok {
		return nil, entity.NewNotFoundError(id)
	}
	return cloneSale(sale), nil
}

// Update replaces the stored sale.
func (r *SaleMemoryRepository) Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sale.ID]; !ok {
		return nil, entity.NewNotFoundError(sale.ID)
	}
	r.sales[sale.ID] = cloneSale(sale)
	return cloneSale(sale), nil
}

// Cancel flips the cancellation flag on the stored sale.
func (r *SaleMemoryRepository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sale, ok := r.sales[id]
	if !ok || sale.IsCancelled {
		return false, nil
	}
	sale.IsCancelled = true
	return true, nil
}

// GetAll returns one page of matching sales, sorted.
func (r *SaleMemoryRepository) GetAll(ctx context.Context, pageNumber, pageSize int, sortBy, sortOrder string, filter port.SaleFilter) ([]*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The lock is held until the page has been cloned so no pointer to
	// stored state escapes while Cancel or Update mutates it.
	r.mu.RLock()
	defer r.mu.RUnlock()
	matching := r.matching(filter)

	sortSales(matching, sortBy, sortOrder)

	start := (pageNumber - 1) * pageSize
	if start >= len(matching) {
		return []*entity.Sale{}, nil
	}
	end := start + pageSize
	if end > len(matching) {
		end = len(matching)
	}

	page := make([]*entity.Sale, 0, end-start)
	for _, sale := range matching[start:end] {
		page = append(page, cloneSale(sale))
	}
	return page, nil
}

// GetCount returns the number of matching sales.
func (r *SaleMemoryRepository) GetCount(ctx context.Context, filter port.SaleFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matching(filter)), nil
}

func (r *SaleMemoryRepository) matching(filter port.SaleFilter) []*entity.Sale {
	var matching []*entity.Sale
	for _, sale := range r.sales {
		if filter.Customer != "" && !containsFold(sale.Customer, filter.Customer) {
			continue
		}
		if filter.Branch != "" && !containsFold(sale.Branch, filter.Branch) {
			continue
		}
		if filter.IsCancelled != nil && sale.IsCancelled != *filter.IsCancelled {
			continue
		}
		matching = append(matching, sale)
	}
	return matching
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortSales(sales []*entity.Sale, sortBy, sortOrder string) {
	desc := !strings.EqualFold(sortOrder, "asc")

	less := func(a, b *entity.Sale) bool { return a.SaleDate.Before(b.SaleDate) }
	switch strings.ToLower(sortBy) {
	case "customer":
		less = func(a, b *entity.Sale) bool { return a.Customer < b.Customer }
	case "totalamount":
		less = func(a, b *entity.Sale) bool { return a.TotalAmount.LessThan(b.TotalAmount) }
	case "branch":
		less = func(a, b *entity.Sale) bool { return a.Branch < b.Branch }
	}

	sort.SliceStable(sales, func(i, j int) bool {
		if desc {
			return less(sales[j], sales[i])
		}
		return less(sales[i], sales[j])
	})
}

func cloneSale(sale *entity.Sale) *entity.Sale {
	clone := *sale
	clone.Items = make([]entity.SaleItem, len(sale.Items))
	copy(clone.Items, sale.Items)
	return &clone
}
