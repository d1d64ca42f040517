package persistence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strings"
	"testing"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal read-only database/sql driver backed by canned rows, enough to
// exercise the scan paths without a live database.

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	next    int
}

func (r *stubRows) Columns() []string { return r.columns }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}

type stubConn struct {
	saleRows [][]driver.Value
	itemRows [][]driver.Value
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if strings.Contains(query, "sale_items") {
		return &stubRows{
			columns: []string{"id", "sale_id", "product_name", "quantity", "unit_price", "discount", "total_amount"},
			rows:    c.itemRows,
		}, nil
	}
	return &stubRows{
		columns: []string{"id", "sale_number", "sale_date", "customer", "branch", "total_amount", "is_cancelled"},
		rows:    c.saleRows,
	}, nil
}

type stubConnector struct {
	conn *stubConn
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, driver.ErrSkip }

func saleRow(id uuid.UUID) []driver.Value {
	return []driver.Value{
		id.String(), "SALE-1", time.Now().UTC(), "Acme", "NYC", "45.00", false,
	}
}

func TestPostgresRepository_GetByIDWithoutItemRows(t *testing.T) {
	saleID := uuid.New()
	db := sql.OpenDB(stubConnector{conn: &stubConn{
		saleRows: [][]driver.Value{saleRow(saleID)},
	}})
	defer db.Close()
	repo := NewSalePostgresRepository(db)

	sale, err := repo.GetByID(context.Background(), saleID)

	require.NoError(t, err)
	assert.Equal(t, saleID, sale.ID)
	// An itemless row set still yields an empty list, never nil, so the
	// wire shape matches the in-memory repository.
	require.NotNil(t, sale.Items)
	assert.Empty(t, sale.Items)
}

func TestPostgresRepository_GetByIDScansItems(t *testing.T) {
	saleID := uuid.New()
	itemID := uuid.New()
	db := sql.OpenDB(stubConnector{conn: &stubConn{
		saleRows: [][]driver.Value{saleRow(saleID)},
		itemRows: [][]driver.Value{
			{itemID.String(), saleID.String(), "Widget", int64(5), "10.00", "0.10", "45.00"},
		},
	}})
	defer db.Close()
	repo := NewSalePostgresRepository(db)

	sale, err := repo.GetByID(context.Background(), saleID)

	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, itemID, sale.Items[0].ID)
	assert.Equal(t, "Widget", sale.Items[0].ProductName)
	assert.Equal(t, 5, sale.Items[0].Quantity)
	assert.True(t, sale.Items[0].TotalAmount.Equal(sale.TotalAmount))
}

func TestPostgresRepository_GetByIDNotFound(t *testing.T) {
	db := sql.OpenDB(stubConnector{conn: &stubConn{}})
	defer db.Close()
	repo := NewSalePostgresRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, &entity.NotFoundError{})
}
