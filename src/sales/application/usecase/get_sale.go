package usecase

import (
	"context"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// GetSaleUseCase handles fetching one sale by ID.
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase creates a new instance of the use case.
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute loads the sale and maps it to its wire shape. Read-only.
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return response.NewSaleResponse(sale), nil
}
