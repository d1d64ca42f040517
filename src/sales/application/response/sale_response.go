package response

import (
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse is the wire shape of one product line.
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SaleResponse is the wire shape of a full sale with its items.
type SaleResponse struct {
	ID          uuid.UUID          `json:"id"`
	SaleNumber  string             `json:"sale_number"`
	SaleDate    string             `json:"sale_date"`
	Customer    string             `json:"customer"`
	Branch      string             `json:"branch"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	IsCancelled bool               `json:"is_cancelled"`
	Items       []SaleItemResponse `json:"items"`
}

// NewSaleResponse maps a Sale aggregate to its wire shape.
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			TotalAmount: item.TotalAmount,
		})
	}

	return &SaleResponse{
		ID:          sale.ID,
		SaleNumber:  sale.SaleNumber,
		SaleDate:    sale.SaleDate.Format(time.RFC3339),
		Customer:    sale.Customer,
		Branch:      sale.Branch,
		TotalAmount: sale.TotalAmount,
		IsCancelled: sale.IsCancelled,
		Items:       items,
	}
}
