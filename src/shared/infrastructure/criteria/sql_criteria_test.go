package criteria

import (
	"testing"

	domainCriteria "sales/src/shared/domain/criteria"

	"github.com/stretchr/testify/assert"
)

func TestToSelectSQL_NoCriteria(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", domainCriteria.Criteria{})

	assert.Equal(t, "SELECT * FROM sales", query)
	assert.Empty(t, params)
}

func TestToSelectSQL_FiltersOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	filters := domainCriteria.NewFilters(
		domainCriteria.NewFilter("customer", domainCriteria.OpILike, "acme"),
		domainCriteria.NewFilter("is_cancelled", domainCriteria.OpEqual, false),
	)
	crit := domainCriteria.NewCriteria(filters, domainCriteria.NewOrder("sale_date", domainCriteria.OrderDesc))
	crit.Paginate(2, 10)

	query, params := converter.ToSelectSQL("SELECT * FROM sales", crit)

	assert.Equal(t,
		"SELECT * FROM sales WHERE customer ILIKE $1 AND is_cancelled = $2 ORDER BY sale_date DESC LIMIT 10 OFFSET 10",
		query)
	assert.Equal(t, []interface{}{"%acme%", false}, params)
}

func TestToSelectSQL_LikePreservesExplicitWildcards(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	filters := domainCriteria.NewFilters(
		domainCriteria.NewFilter("customer", domainCriteria.OpLike, "acme%"),
	)

	query, params := converter.ToSelectSQL("SELECT * FROM sales", domainCriteria.NewCriteria(filters, domainCriteria.Order{}))

	assert.Equal(t, "SELECT * FROM sales WHERE customer LIKE $1", query)
	assert.Equal(t, []interface{}{"acme%"}, params)
}

func TestToSelectSQL_ComparisonOperators(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	filters := domainCriteria.NewFilters(
		domainCriteria.NewFilter("total_amount", domainCriteria.OpGreaterThanOrEqual, 100),
		domainCriteria.NewFilter("branch", domainCriteria.OpNotEqual, "LA"),
	)

	query, params := converter.ToSelectSQL("SELECT * FROM sales", domainCriteria.NewCriteria(filters, domainCriteria.Order{}))

	assert.Equal(t, "SELECT * FROM sales WHERE total_amount >= $1 AND branch != $2", query)
	assert.Equal(t, []interface{}{100, "LA"}, params)
}

func TestToCountSQL_SkipsOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	filters := domainCriteria.NewFilters(
		domainCriteria.NewFilter("branch", domainCriteria.OpEqual, "NYC"),
	)
	crit := domainCriteria.NewCriteria(filters, domainCriteria.NewOrder("sale_date", domainCriteria.OrderAsc))
	crit.Paginate(1, 10)

	query, params := converter.ToCountSQL("SELECT COUNT(*) FROM sales", crit)

	assert.Equal(t, "SELECT COUNT(*) FROM sales WHERE branch = $1", query)
	assert.Equal(t, []interface{}{"NYC"}, params)
}
