package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/sales/domain/validation"

	"go.uber.org/zap"
)

// CreateSaleUseCase handles the creation of a new sale.
type CreateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	validator *validation.SaleValidator
	logger    *zap.Logger
}

// NewCreateSaleUseCase creates a new instance of the use case.
func NewCreateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		validator: validation.NewSaleValidator(),
		logger:    logger,
	}
}

// Execute builds the aggregate from the command, validates it, persists it
// and publishes a SaleCreated event.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	// 1. Construct the aggregate; AddItem enforces the quantity cap and
	// merges duplicate products.
	sale := entity.NewSale(req.Customer, req.Branch)
	for _, item := range req.Items {
		if err := sale.AddItem(item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	// 2. Re-validate the whole aggregate before persistence.
	if violations := uc.validator.Validate(sale); len(violations) > 0 {
		return nil, &entity.ValidationError{Violations: violations}
	}

	// 3. Persist.
	created, err := uc.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("error creating sale: %w", err)
	}

	// 4. Publish after the commit; delivery failures never roll it back.
	publishEvent(ctx, uc.publisher, uc.logger, event.NewSaleCreated(created.ID, created.SaleNumber))

	uc.logger.Info("sale created",
		zap.String("sale_id", created.ID.String()),
		zap.String("sale_number", created.SaleNumber),
		zap.Int("items", created.TotalItems()),
	)

	return response.NewSaleResponse(created), nil
}
