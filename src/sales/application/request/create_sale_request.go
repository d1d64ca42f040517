package request

import "github.com/shopspring/decimal"

// CreateSaleItemRequest is one product line in a sale creation request.
type CreateSaleItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest is the command payload to create a sale.
type CreateSaleRequest struct {
	Customer string                  `json:"customer"`
	Branch   string                  `json:"branch"`
	Items    []CreateSaleItemRequest `json:"items"`
}
