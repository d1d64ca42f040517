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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateSaleUseCase handles editing a sale's details and reconciling its item
// list against the submitted one.
type UpdateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	validator *validation.SaleValidator
	logger    *zap.Logger
}

// NewUpdateSaleUseCase creates a new instance of the use case.
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		validator: validation.NewSaleValidator(),
		logger:    logger,
	}
}

// itemChange records one entry of the item diff, in the order it was applied.
type itemChange struct {
	kind        event.ItemModificationKind
	itemID      uuid.UUID
	productName string
	quantity    int
}

// Execute loads the sale, applies the detail edits and the item diff,
// validates the whole aggregate, persists it, and publishes a SaleModified
// event followed by one SaleItemModified event per change.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.UpdateSaleRequest) (*response.SaleResponse, error) {
	// 1. Load aggregate.
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if sale.IsCancelled {
		return nil, &entity.InvalidStateError{Message: "Cannot update a cancelled sale."}
	}

	// 2. Unconditional detail replacement; the validator re-checks lengths.
	sale.UpdateDetails(req.Customer, req.Branch)

	// 3. Reconcile items by ID: removals first, then updates and additions
	// in request order.
	existingIDs := make(map[uuid.UUID]bool, len(sale.Items))
	for _, item := range sale.Items {
		existingIDs[item.ID] = true
	}
	commandIDs := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		if item.ID != nil {
			commandIDs[*item.ID] = true
		}
	}

	var changes []itemChange

	removed := make([]entity.SaleItem, 0)
	for _, item := range sale.Items {
		if !commandIDs[item.ID] {
			removed = append(removed, item)
		}
	}
	for _, item := range removed {
		if err := sale.RemoveItem(item.ID); err != nil {
			return nil, err
		}
		changes = append(changes, itemChange{event.ItemRemoved, item.ID, item.ProductName, item.Quantity})
	}

	for _, item := range req.Items {
		if item.ID != nil && existingIDs[*item.ID] {
			if err := sale.UpdateItem(*item.ID, item.Quantity, item.UnitPrice); err != nil {
				return nil, err
			}
			changes = append(changes, itemChange{event.ItemUpdated, *item.ID, item.ProductName, item.Quantity})
		} else {
			if err := sale.AddItem(item.ProductName, item.Quantity, item.UnitPrice); err != nil {
				return nil, err
			}
			// AddItem may have merged into an existing line; report the
			// line as it now stands.
			added, _ := sale.ItemByProduct(item.ProductName)
			changes = append(changes, itemChange{event.ItemAdded, added.ID, added.ProductName, added.Quantity})
		}
	}

	// 4. Re-validate the whole aggregate before persistence.
	if violations := uc.validator.Validate(sale); len(violations) > 0 {
		return nil, &entity.ValidationError{Violations: violations}
	}

	// 5. Persist.
	updated, err := uc.saleRepo.Update(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	// 6. SaleModified first, then one item event per diff entry in the
	// order the diff was applied.
	publishEvent(ctx, uc.publisher, uc.logger, event.NewSaleModified(updated.ID))
	for _, change := range changes {
		publishEvent(ctx, uc.publisher, uc.logger,
			event.NewSaleItemModified(updated.ID, change.itemID, change.productName, change.quantity, change.kind))
	}

	uc.logger.Info("sale updated",
		zap.String("sale_id", updated.ID.String()),
		zap.Int("item_changes", len(changes)),
	)

	return response.NewSaleResponse(updated), nil
}
