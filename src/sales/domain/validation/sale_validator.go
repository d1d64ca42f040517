// Package validation re-checks sale invariants immediately before
// persistence as a side-effect-free, composable rule set. Violations are
// collected and reported together rather than failing on the first one.
package validation

import (
	"unicode/utf8"

	"sales/src/sales/domain/entity"
)

type saleRule struct {
	valid   func(*entity.Sale) bool
	message string
}

// SaleValidator validates a fully-formed Sale aggregate and, transitively,
// each of its items.
type SaleValidator struct {
	rules         []saleRule
	itemValidator *SaleItemValidator
}

// NewSaleValidator creates the sale rule set.
func NewSaleValidator() *SaleValidator {
	return &SaleValidator{
		rules: []saleRule{
			{
				valid:   func(s *entity.Sale) bool { return s.Customer != "" },
				message: "Customer name cannot be empty.",
			},
			{
				valid:   func(s *entity.Sale) bool { return utf8.RuneCountInString(s.Customer) <= 100 },
				message: "Customer name cannot exceed 100 characters.",
			},
			{
				valid:   func(s *entity.Sale) bool { return s.Branch != "" },
				message: "Branch cannot be empty.",
			},
			{
				valid:   func(s *entity.Sale) bool { return utf8.RuneCountInString(s.Branch) <= 50 },
				message: "Branch cannot exceed 50 characters.",
			},
			{
				valid:   func(s *entity.Sale) bool { return len(s.Items) > 0 },
				message: "A sale must have at least one item.",
			},
		},
		itemValidator: NewSaleItemValidator(),
	}
}

// Validate evaluates every sale rule, then every item rule, and returns the
// aggregated list of violations. An empty result means the sale is valid.
func (v *SaleValidator) Validate(sale *entity.Sale) []string {
	var violations []string
	for _, rule := range v.rules {
		if !rule.valid(sale) {
			violations = append(violations, rule.message)
		}
	}

	var itemViolations []string
	for idx := range sale.Items {
		itemViolations = append(itemViolations, v.itemValidator.Validate(&sale.Items[idx])...)
	}
	if len(itemViolations) > 0 {
		violations = append(violations, "One or more sale items are invalid.")
		violations = append(violations, itemViolations...)
	}
	return violations
}
