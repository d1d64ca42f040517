package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxItemsPerProduct is the hard cap on identical items in one transaction.
const maxItemsPerProduct = 20

// Sale represents one commercial transaction (Aggregate Root). It owns its
// SaleItem collection exclusively: every item mutation goes through Sale so
// the aggregate total and the cancellation gate stay consistent.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	SaleNumber  string          `json:"sale_number"`
	SaleDate    time.Time       `json:"sale_date"`
	Customer    string          `json:"customer"`
	Branch      string          `json:"branch"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`
	Items       []SaleItem      `json:"items"`
}

// NewSale creates an empty open sale with a generated sale number and the
// current UTC timestamp.
func NewSale(customer, branch string) *Sale {
	return &Sale{
		ID:          uuid.New(),
		SaleNumber:  generateSaleNumber(),
		SaleDate:    time.Now().UTC(),
		Customer:    customer,
		Branch:      branch,
		TotalAmount: decimal.Zero,
		Items:       []SaleItem{},
	}
}

// AddItem appends a product line to the sale. Adding a product that already
// has a line merges into it by accumulating quantity; quantities above 20 per
// product are rejected and leave the sale unchanged.
func (s *Sale) AddItem(productName string, quantity int, unitPrice decimal.Decimal) error {
	if s.IsCancelled {
		return NewDomainRuleError("Cannot add items to a cancelled sale.")
	}

	for idx := range s.Items {
		if s.Items[idx].ProductName != productName {
			continue
		}
		existing := &s.Items[idx]
		if existing.Quantity+quantity > maxItemsPerProduct {
			return NewDomainRuleError(
				"Cannot sell more than 20 identical items for product '%s'. Current: %d, Adding: %d.",
				productName, existing.Quantity, quantity,
			)
		}
		if err := existing.UpdateQuantity(existing.Quantity + quantity); err != nil {
			return err
		}
		s.calculateTotalAmount()
		return nil
	}

	if quantity > maxItemsPerProduct {
		return NewDomainRuleError("Cannot sell more than 20 identical items in a single transaction.")
	}

	item := NewSaleItem(productName, quantity, unitPrice)
	item.SaleID = s.ID
	s.Items = append(s.Items, *item)
	s.calculateTotalAmount()
	return nil
}

// UpdateItem delegates quantity and price updates to the identified item and
// recomputes the sale total.
func (s *Sale) UpdateItem(itemID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if s.IsCancelled {
		return NewDomainRuleError("Cannot update items of a cancelled sale.")
	}

	item := s.itemByID(itemID)
	if item == nil {
		return NewDomainRuleError("Sale item with ID %s not found.", itemID)
	}

	if err := item.UpdateQuantity(quantity); err != nil {
		return err
	}
	if err := item.UpdateUnitPrice(unitPrice); err != nil {
		return err
	}
	s.calculateTotalAmount()
	return nil
}

// RemoveItem removes the identified item and recomputes the total. Removing
// an item that does not exist is a no-op, not an error.
func (s *Sale) RemoveItem(itemID uuid.UUID) error {
	if s.IsCancelled {
		return NewDomainRuleError("Cannot remove items from a cancelled sale.")
	}

	for idx := range s.Items {
		if s.Items[idx].ID == itemID {
			s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
			s.calculateTotalAmount()
			return nil
		}
	}
	return nil
}

// CancelSale transitions the sale to its terminal cancelled state. Items and
// total are kept; only further item mutation is blocked.
func (s *Sale) CancelSale() error {
	if s.IsCancelled {
		return NewDomainRuleError("Sale is already cancelled.")
	}
	s.IsCancelled = true
	return nil
}

// UpdateDetails replaces the customer and branch identifiers. Not gated on
// cancellation state; length and emptiness rules are the validator's job.
func (s *Sale) UpdateDetails(customer, branch string) {
	s.Customer = customer
	s.Branch = branch
}

// ItemByProduct returns the item holding the given product, if any.
func (s *Sale) ItemByProduct(productName string) (SaleItem, bool) {
	for idx := range s.Items {
		if s.Items[idx].ProductName == productName {
			return s.Items[idx], true
		}
	}
	return SaleItem{}, false
}

// TotalItems returns the number of product lines in the sale.
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

func (s *Sale) itemByID(itemID uuid.UUID) *SaleItem {
	for idx := range s.Items {
		if s.Items[idx].ID == itemID {
			return &s.Items[idx]
		}
	}
	return nil
}

// calculateTotalAmount keeps the invariant totalAmount == sum of line totals.
// Called at the end of every item-mutating operation.
func (s *Sale) calculateTotalAmount() {
	total := decimal.Zero
	for idx := range s.Items {
		total = total.Add(s.Items[idx].TotalAmount)
	}
	s.TotalAmount = total
}

// generateSaleNumber derives the business identifier from the current UTC
// time. Uniqueness is not enforced; concurrent creations in the same
// nanosecond can collide.
func generateSaleNumber() string {
	return fmt.Sprintf("SALE-%d", time.Now().UTC().UnixNano())
}
