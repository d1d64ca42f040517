package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/sales/domain/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CancelSaleUseCase handles the one-way transition of a sale to its
// cancelled state.
type CancelSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	validator *validation.SaleValidator
	logger    *zap.Logger
}

// NewCancelSaleUseCase creates a new instance of the use case.
func NewCancelSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		validator: validation.NewSaleValidator(),
		logger:    logger,
	}
}

// Execute loads the sale, cancels it, validates, persists and publishes a
// SaleCancelled event.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.CancelSaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	// Rejects a second cancellation with a domain rule violation.
	if err := sale.CancelSale(); err != nil {
		return nil, err
	}

	if violations := uc.validator.Validate(sale); len(violations) > 0 {
		return nil, &entity.ValidationError{Violations: violations}
	}

	if _, err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("error cancelling sale: %w", err)
	}

	publishEvent(ctx, uc.publisher, uc.logger, event.NewSaleCancelled(sale.ID, sale.SaleNumber))

	uc.logger.Info("sale cancelled",
		zap.String("sale_id", sale.ID.String()),
		zap.String("sale_number", sale.SaleNumber),
	)

	return &response.CancelSaleResponse{ID: sale.ID, Success: true}, nil
}
