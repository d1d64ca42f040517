package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	domainCriteria "sales/src/shared/domain/criteria"
	sqlCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

const saleColumns = "id, sale_number, sale_date, customer, branch, total_amount, is_cancelled"

// SalePostgresRepository implements port.SaleRepository on PostgreSQL. The
// aggregate is persisted atomically: the sale row and its item rows are
// written in one transaction, and updates rewrite the item set.
type SalePostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSalePostgresRepository creates a new repository instance.
func NewSalePostgresRepository(db *sql.DB) *SalePostgresRepository {
	return &SalePostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

var _ port.SaleRepository = (*SalePostgresRepository)(nil)

// Create persists a new sale with its items.
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (
			id, sale_number, sale_date, customer, branch, total_amount, is_cancelled
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`
	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.SaleDate,
		sale.Customer,
		sale.Branch,
		sale.TotalAmount,
		sale.IsCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	if err := insertItems(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return sale, nil
}

// GetByID loads a sale with its items.
func (r *SalePostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	query := fmt.Sprintf("SELECT %s FROM sales WHERE id = $1", saleColumns)

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sale.ID,
		&sale.SaleNumber,
		&sale.SaleDate,
		&sale.Customer,
		&sale.Branch,
		&sale.TotalAmount,
		&sale.IsCancelled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	if err := r.loadItems(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Update rewrites the sale row and its item set in one transaction.
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE sales
		SET customer = $2, branch = $3, total_amount = $4, is_cancelled = $5
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query,
		sale.ID,
		sale.Customer,
		sale.Branch,
		sale.TotalAmount,
		sale.IsCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating sale: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, entity.NewNotFoundError(sale.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM sale_items WHERE sale_id = $1", sale.ID); err != nil {
		return nil, fmt.Errorf("error clearing sale items: %w", err)
	}
	if err := insertItems(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return sale, nil
}

// Cancel flips the cancellation flag directly in the store. The guard in the
// WHERE clause makes the transition one-way.
func (r *SalePostgresRepository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE sales
		SET is_cancelled = TRUE
		WHERE id = $1 AND is_cancelled = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("error cancelling sale: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// GetAll returns one page of sales matching the filter.
func (r *SalePostgresRepository) GetAll(ctx context.Context, pageNumber, pageSize int, sortBy, sortOrder string, filter port.SaleFilter) ([]*entity.Sale, error) {
	criteria := buildCriteria(filter)
	criteria.Order = domainCriteria.NewOrder(sortColumn(sortBy), orderType(sortOrder))
	criteria.Paginate(pageNumber, pageSize)

	query, params := r.converter.ToSelectSQL(fmt.Sprintf("SELECT %s FROM sales", saleColumns), criteria)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SaleNumber,
			&sale.SaleDate,
			&sale.Customer,
			&sale.Branch,
			&sale.TotalAmount,
			&sale.IsCancelled,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	for _, sale := range sales {
		if err := r.loadItems(ctx, sale); err != nil {
			return nil, err
		}
	}
	return sales, nil
}

// GetCount returns the number of sales matching the filter.
func (r *SalePostgresRepository) GetCount(ctx context.Context, filter port.SaleFilter) (int, error) {
	criteria := buildCriteria(filter)
	query, params := r.converter.ToCountSQL("SELECT COUNT(*) FROM sales", criteria)

	var count int
	if err := r.db.QueryRowContext(ctx, query, params...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sales: %w", err)
	}
	return count, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, sale *entity.Sale) error {
	query := `
		SELECT id, sale_id, product_name, quantity, unit_price, discount, total_amount
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY product_name
	`
	rows, err := r.db.QueryContext(ctx, query, sale.ID)
	if err != nil {
		return fmt.Errorf("error loading sale items: %w", err)
	}
	defer rows.Close()

	// Always a non-nil slice so an itemless sale serializes as an empty
	// list, matching the in-memory repository.
	items := make([]entity.SaleItem, 0)
	for rows.Next() {
		var item entity.SaleItem
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating sale items: %w", err)
	}

	sale.Items = items
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	query := `
		INSERT INTO sale_items (
			id, sale_id, product_name, quantity, unit_price, discount, total_amount
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`
	for _, item := range sale.Items {
		_, err := tx.ExecContext(ctx, query,
			item.ID,
			sale.ID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("error saving sale item: %w", err)
		}
	}
	return nil
}

func buildCriteria(filter port.SaleFilter) domainCriteria.Criteria {
	filters := domainCriteria.NewFilters()
	if filter.Customer != "" {
		filters.Add(domainCriteria.NewFilter("customer", domainCriteria.OpILike, filter.Customer))
	}
	if filter.Branch != "" {
		filters.Add(domainCriteria.NewFilter("branch", domainCriteria.OpILike, filter.Branch))
	}
	if filter.IsCancelled != nil {
		filters.Add(domainCriteria.NewFilter("is_cancelled", domainCriteria.OpEqual, *filter.IsCancelled))
	}
	return domainCriteria.Criteria{Filters: filters}
}

// sortColumn maps the API sort field to its column. Unrecognized fields fall
// back to the sale date.
func sortColumn(sortBy string) string {
	switch strings.ToLower(sortBy) {
	case "customer":
		return "customer"
	case "totalamount":
		return "total_amount"
	case "branch":
		return "branch"
	case "saledate":
		return "sale_date"
	default:
		return "sale_date"
	}
}

func orderType(sortOrder string) domainCriteria.OrderType {
	if strings.EqualFold(sortOrder, "asc") {
		return domainCriteria.OrderAsc
	}
	return domainCriteria.OrderDesc
}
