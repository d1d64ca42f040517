package usecase

import (
	"context"
	"testing"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSales_DefaultsApplied(t *testing.T) {
	f := newFixture(t)
	f.createSale(t, "Acme", "NYC", item("Widget", 1, "10.00"))

	resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Items, 1)
}

func TestListSales_AggregatesQueryViolations(t *testing.T) {
	f := newFixture(t)

	_, err := f.list.Execute(context.Background(), &request.ListSalesRequest{
		Page:      -1,
		PageSize:  500,
		SortBy:    "color",
		SortOrder: "sideways",
	})

	require.Error(t, err)
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Page number must be at least 1.")
	assert.Contains(t, validationErr.Violations, "Page size cannot exceed 100.")
	assert.Contains(t, validationErr.Violations, "Invalid SortBy field.")
	assert.Contains(t, validationErr.Violations, "Invalid SortOrder. Must be 'asc' or 'desc'.")
}

func TestListSales_PagingAndTotalPages(t *testing.T) {
	f := newFixture(t)
	customers := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	for _, customer := range customers {
		f.createSale(t, customer, "NYC", item("Widget", 1, "10.00"))
	}

	resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{
		Page:      2,
		PageSize:  2,
		SortBy:    "customer",
		SortOrder: "asc",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Charlie", resp.Items[0].Customer)
	assert.Equal(t, "Delta", resp.Items[1].Customer)
}

func TestListSales_PageBeyondEndIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.createSale(t, "Acme", "NYC", item("Widget", 1, "10.00"))

	resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{Page: 9})

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestListSales_Filters(t *testing.T) {
	f := newFixture(t)
	f.createSale(t, "Acme Corp", "NYC", item("Widget", 1, "10.00"))
	f.createSale(t, "Globex", "NYC", item("Widget", 1, "10.00"))
	cancelled := f.createSale(t, "Acme West", "LA", item("Widget", 1, "10.00"))
	_, err := f.cancel.Execute(context.Background(), cancelled.ID)
	require.NoError(t, err)

	t.Run("by customer substring", func(t *testing.T) {
		resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{Customer: "acme"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("by branch", func(t *testing.T) {
		resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{Branch: "LA"})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Acme West", resp.Items[0].Customer)
	})

	t.Run("by cancellation state", func(t *testing.T) {
		isCancelled := true
		resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{IsCancelled: &isCancelled})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.True(t, resp.Items[0].IsCancelled)
	})
}

func TestListSales_SortFieldsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.createSale(t, "Bravo", "NYC", item("Widget", 1, "10.00"))
	f.createSale(t, "Alpha", "NYC", item("Widget", 10, "10.00"))

	resp, err := f.list.Execute(context.Background(), &request.ListSalesRequest{
		SortBy:    "CUSTOMER",
		SortOrder: "ASC",
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Alpha", resp.Items[0].Customer)

	resp, err = f.list.Execute(context.Background(), &request.ListSalesRequest{
		SortBy:    "totalAmount",
		SortOrder: "desc",
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Alpha", resp.Items[0].Customer, "highest total first")
}
