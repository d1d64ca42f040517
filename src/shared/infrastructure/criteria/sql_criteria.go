package criteria

import (
	"fmt"
	"strconv"
	"strings"

	domainCriteria "sales/src/shared/domain/criteria"
)

// SQLCriteriaConverter turns a Criteria object into SQL clauses with
// positional ($n) parameters.
type SQLCriteriaConverter struct{}

// NewSQLCriteriaConverter creates a new converter.
func NewSQLCriteriaConverter() *SQLCriteriaConverter {
	return &SQLCriteriaConverter{}
}

// ToSelectSQL builds a complete SELECT query from a base query and a criteria.
func (s *SQLCriteriaConverter) ToSelectSQL(baseQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	parts = append(parts, baseQuery)

	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	if !criteria.Order.IsEmpty() {
		parts = append(parts, s.buildOrderClause(criteria.Order))
	}

	if criteria.Limit != nil && criteria.Offset != nil {
		parts = append(parts, s.buildLimitClause(criteria.Limit, criteria.Offset))
	}

	return strings.Join(parts, " "), params
}

// ToCountSQL builds a COUNT query from a base count query and a criteria.
// Ordering and pagination are irrelevant for counting and are skipped.
func (s *SQLCriteriaConverter) ToCountSQL(baseCountQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	parts = append(parts, baseCountQuery)

	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	return strings.Join(parts, " "), params
}

// buildWhereClause joins all filters with AND, numbering parameters from $1.
func (s *SQLCriteriaConverter) buildWhereClause(filters domainCriteria.Filters) (string, []interface{}) {
	var conditions []string
	var params []interface{}

	paramIndex := 1
	for _, filter := range filters.Items {
		condition, value := s.processFilter(filter, paramIndex)
		conditions = append(conditions, condition)
		if value != nil {
			params = append(params, value)
			paramIndex++
		}
	}

	if len(conditions) == 0 {
		return "", params
	}
	return fmt.Sprintf("WHERE %s", strings.Join(conditions, " AND ")), params
}

func (s *SQLCriteriaConverter) buildOrderClause(order domainCriteria.Order) string {
	return fmt.Sprintf("ORDER BY %s %s", order.Field, string(order.OrderType))
}

func (s *SQLCriteriaConverter) buildLimitClause(limit, offset *int) string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", *limit, *offset)
}

// processFilter converts one filter into a SQL condition with its placeholder.
func (s *SQLCriteriaConverter) processFilter(filter domainCriteria.Filter, paramIndex int) (string, interface{}) {
	placeholder := "$" + strconv.Itoa(paramIndex)

	switch filter.Operator {
	case domainCriteria.OpEqual, domainCriteria.OpNotEqual, domainCriteria.OpGreaterThan,
		domainCriteria.OpGreaterThanOrEqual, domainCriteria.OpLessThan, domainCriteria.OpLessThanOrEqual:
		return fmt.Sprintf("%s %s %s", filter.Field, filter.Operator, placeholder), filter.Value
	case domainCriteria.OpLike, domainCriteria.OpILike:
		if str, ok := filter.Value.(string); ok && !strings.Contains(str, "%") {
			filter.Value = "%" + str + "%"
		}
		return fmt.Sprintf("%s %s %s", filter.Field, filter.Operator, placeholder), filter.Value
	default:
		return fmt.Sprintf("%s = %s", filter.Field, placeholder), filter.Value
	}
}
