package validation

import (
	"unicode/utf8"

	"sales/src/sales/domain/entity"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

type itemRule struct {
	valid   func(*entity.SaleItem) bool
	message string
}

// SaleItemValidator re-checks every SaleItem invariant as an ordered rule
// list, independent of the guards in the entity's own mutators.
type SaleItemValidator struct {
	rules []itemRule
}

// NewSaleItemValidator creates the item rule set.
func NewSaleItemValidator() *SaleItemValidator {
	return &SaleItemValidator{
		rules: []itemRule{
			{
				valid:   func(i *entity.SaleItem) bool { return i.ProductName != "" },
				message: "Product name cannot be empty.",
			},
			{
				valid:   func(i *entity.SaleItem) bool { return utf8.RuneCountInString(i.ProductName) <= 100 },
				message: "Product name cannot exceed 100 characters.",
			},
			{
				valid:   func(i *entity.SaleItem) bool { return i.Quantity > 0 },
				message: "Quantity must be greater than zero.",
			},
			{
				valid:   func(i *entity.SaleItem) bool { return i.Quantity <= 20 },
				message: "Cannot sell more than 20 identical items.",
			},
			{
				valid:   func(i *entity.SaleItem) bool { return i.UnitPrice.GreaterThan(decimal.Zero) },
				message: "Unit price must be greater than zero.",
			},
			{
				valid: func(i *entity.SaleItem) bool {
					return i.Discount.GreaterThanOrEqual(decimal.Zero) && i.Discount.LessThanOrEqual(one)
				},
				message: "Discount must be between 0 and 1 (0% to 100%).",
			},
			{
				valid:   func(i *entity.SaleItem) bool { return i.TotalAmount.GreaterThanOrEqual(decimal.Zero) },
				message: "Total amount cannot be negative.",
			},
		},
	}
}

// Validate evaluates every rule and returns all violations, never failing
// fast.
func (v *SaleItemValidator) Validate(item *entity.SaleItem) []string {
	var violations []string
	for _, rule := range v.rules {
		if !rule.valid(item) {
			violations = append(violations, rule.message)
		}
	}
	return violations
}
