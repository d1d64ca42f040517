package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateSaleItemRequest is one product line in a sale update request. A nil
// ID marks a new item; an ID matching an existing item marks an update.
// Existing items whose IDs are absent from the request are removed.
type UpdateSaleItemRequest struct {
	ID          *uuid.UUID      `json:"id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateSaleRequest is the command payload to update a sale.
type UpdateSaleRequest struct {
	Customer string                  `json:"customer"`
	Branch   string                  `json:"branch"`
	Items    []UpdateSaleItemRequest `json:"items"`
}
