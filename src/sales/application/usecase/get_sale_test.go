package usecase

import (
	"context"
	"testing"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSale_Success(t *testing.T) {
	f := newFixture(t)
	created := f.createSale(t, "Acme", "NYC", item("Widget", 5, "10.00"))

	resp, err := f.get.Execute(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.SaleNumber, resp.SaleNumber)
	assert.Equal(t, "Acme", resp.Customer)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Discount.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("45.00")))
}

func TestGetSale_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, &entity.NotFoundError{})
}
