package response

import (
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSummary is one row of a sales listing: the sale without its item
// detail, plus the line count.
type SaleSummary struct {
	ID          uuid.UUID       `json:"id"`
	SaleNumber  string          `json:"sale_number"`
	SaleDate    string          `json:"sale_date"`
	Customer    string          `json:"customer"`
	Branch      string          `json:"branch"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`
	TotalItems  int             `json:"total_items"`
}

// NewSaleSummary maps a Sale aggregate to a listing row.
func NewSaleSummary(sale *entity.Sale) SaleSummary {
	return SaleSummary{
		ID:          sale.ID,
		SaleNumber:  sale.SaleNumber,
		SaleDate:    sale.SaleDate.Format(time.RFC3339),
		Customer:    sale.Customer,
		Branch:      sale.Branch,
		TotalAmount: sale.TotalAmount,
		IsCancelled: sale.IsCancelled,
		TotalItems:  sale.TotalItems(),
	}
}

// ListSalesResponse is one page of sale summaries with paging metadata.
type ListSalesResponse struct {
	Items      []SaleSummary `json:"items"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
