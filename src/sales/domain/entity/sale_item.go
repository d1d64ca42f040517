package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount tiers applied by quantity. Quantities of 10 or more get 20%,
// 4 to 9 get 10%, below 4 no discount.
var (
	discountTenPercent    = decimal.New(10, -2)
	discountTwentyPercent = decimal.New(20, -2)
)

// SaleItem represents one product line within a Sale. Items are created and
// mutated only through the owning Sale; discount and total are derived fields
// recomputed on every quantity or price change.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewSaleItem creates an item with its discount and total computed. The
// constructor is deliberately permissive: positivity and the quantity cap are
// enforced by Sale.AddItem and by the validator, not here.
func NewSaleItem(productName string, quantity int, unitPrice decimal.Decimal) *SaleItem {
	item := &SaleItem{
		ID:          uuid.New(),
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	item.calculateDiscount()
	item.calculateTotalAmount()
	return item
}

// UpdateQuantity sets a new quantity and recomputes the discount and total.
func (i *SaleItem) UpdateQuantity(newQuantity int) error {
	if newQuantity <= 0 {
		return NewDomainRuleError("Quantity must be greater than zero.")
	}
	i.Quantity = newQuantity
	i.calculateDiscount()
	i.calculateTotalAmount()
	return nil
}

// UpdateUnitPrice sets a new unit price and recomputes the total. The
// discount depends only on quantity and is left untouched.
func (i *SaleItem) UpdateUnitPrice(newUnitPrice decimal.Decimal) error {
	if newUnitPrice.LessThanOrEqual(decimal.Zero) {
		return NewDomainRuleError("Unit price must be greater than zero.")
	}
	i.UnitPrice = newUnitPrice
	i.calculateTotalAmount()
	return nil
}

func (i *SaleItem) calculateDiscount() {
	switch {
	case i.Quantity >= 10:
		i.Discount = discountTwentyPercent
	case i.Quantity >= 4:
		i.Discount = discountTenPercent
	default:
		i.Discount = decimal.Zero
	}
}

// calculateTotalAmount computes quantity * unitPrice * (1 - discount) with
// decimal arithmetic.
func (i *SaleItem) calculateTotalAmount() {
	gross := i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
	i.TotalAmount = gross.Mul(decimal.NewFromInt(1).Sub(i.Discount))
}
