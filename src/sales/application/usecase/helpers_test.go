package usecase

import (
	"context"
	"sync"
	"testing"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/sales/infrastructure/persistence"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, evt event.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *capturingPublisher) Events() []event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.DomainEvent(nil), p.events...)
}

type fixture struct {
	repo      *persistence.SaleMemoryRepository
	publisher *capturingPublisher
	create    *CreateSaleUseCase
	update    *UpdateSaleUseCase
	cancel    *CancelSaleUseCase
	get       *GetSaleUseCase
	list      *ListSalesUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := persistence.NewSaleMemoryRepository()
	publisher := &capturingPublisher{}
	logger := zaptest.NewLogger(t)
	return &fixture{
		repo:      repo,
		publisher: publisher,
		create:    NewCreateSaleUseCase(repo, publisher, logger),
		update:    NewUpdateSaleUseCase(repo, publisher, logger),
		cancel:    NewCancelSaleUseCase(repo, publisher, logger),
		get:       NewGetSaleUseCase(repo),
		list:      NewListSalesUseCase(repo),
	}
}

func (f *fixture) createSale(t *testing.T, customer, branch string, items ...request.CreateSaleItemRequest) *response.SaleResponse {
	t.Helper()
	resp, err := f.create.Execute(context.Background(), &request.CreateSaleRequest{
		Customer: customer,
		Branch:   branch,
		Items:    items,
	})
	require.NoError(t, err)
	return resp
}

// portFilter is the unfiltered listing filter.
func portFilter() port.SaleFilter {
	return port.SaleFilter{}
}

func item(product string, quantity int, unitPrice string) request.CreateSaleItemRequest {
	return request.CreateSaleItemRequest{
		ProductName: product,
		Quantity:    quantity,
		UnitPrice:   decimal.RequireFromString(unitPrice),
	}
}
