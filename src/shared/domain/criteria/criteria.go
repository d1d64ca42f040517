package criteria

// FilterOperator is the comparison operator applied by a Filter.
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpILike              FilterOperator = "ILIKE"
)

// OrderType is the direction of an Order clause.
type OrderType string

const (
	OrderAsc  OrderType = "ASC"
	OrderDesc OrderType = "DESC"
)

// Filter is a single field comparison.
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// NewFilter creates a Filter.
func NewFilter(field string, operator FilterOperator, value interface{}) Filter {
	return Filter{Field: field, Operator: operator, Value: value}
}

// Filters is an ordered collection of Filter items combined with AND.
type Filters struct {
	Items []Filter
}

// NewFilters creates a Filters collection.
func NewFilters(items ...Filter) Filters {
	return Filters{Items: items}
}

// Add appends a filter to the collection.
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty reports whether the collection holds no filters.
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order describes a single ORDER BY clause.
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder creates an Order clause.
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty reports whether no ordering was requested.
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria aggregates filtering, ordering and pagination for a query.
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria creates a Criteria with the given filters and order.
func NewCriteria(filters Filters, order Order) Criteria {
	return Criteria{Filters: filters, Order: order}
}

// Paginate sets the limit and offset for the given page (1-based).
func (c *Criteria) Paginate(page, pageSize int) {
	limit := pageSize
	offset := (page - 1) * pageSize
	c.Limit = &limit
	c.Offset = &offset
}
