package request

// ListSalesRequest is the query payload to list sales with pagination,
// sorting and optional filters. Zero values are replaced with defaults before
// validation: page 1, page size 10, sort by saleDate descending.
type ListSalesRequest struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
	Customer    string `form:"customer"`
	Branch      string `form:"branch"`
	IsCancelled *bool  `form:"is_cancelled"`
}
