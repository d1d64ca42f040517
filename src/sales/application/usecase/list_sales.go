package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
)

// Listing defaults applied to zero-valued query parameters.
const (
	defaultPage      = 1
	defaultPageSize  = 10
	defaultSortBy    = "saleDate"
	defaultSortOrder = "desc"
	maxPageSize      = 100
)

var allowedSortFields = []string{"saleDate", "customer", "totalAmount", "branch"}

// ListSalesUseCase handles the paged, sorted, filtered sales listing.
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase creates a new instance of the use case.
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute validates the query, fetches the matching count and page, and
// returns summaries with paging metadata. Read-only.
func (uc *ListSalesUseCase) Execute(ctx context.Context, req *request.ListSalesRequest) (*response.ListSalesResponse, error) {
	applyDefaults(req)

	if violations := validateQuery(req); len(violations) > 0 {
		return nil, &entity.ValidationError{Violations: violations}
	}

	filter := port.SaleFilter{
		Customer:    req.Customer,
		Branch:      req.Branch,
		IsCancelled: req.IsCancelled,
	}

	totalCount, err := uc.saleRepo.GetCount(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error counting sales: %w", err)
	}

	sales, err := uc.saleRepo.GetAll(ctx, req.Page, req.PageSize, req.SortBy, req.SortOrder, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	items := make([]response.SaleSummary, 0, len(sales))
	for _, sale := range sales {
		items = append(items, response.NewSaleSummary(sale))
	}

	return &response.ListSalesResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(req.PageSize))),
	}, nil
}

func applyDefaults(req *request.ListSalesRequest) {
	if req.Page == 0 {
		req.Page = defaultPage
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}
	if req.SortBy == "" {
		req.SortBy = defaultSortBy
	}
	if req.SortOrder == "" {
		req.SortOrder = defaultSortOrder
	}
}

// validateQuery collects every paging and sorting violation at once.
func validateQuery(req *request.ListSalesRequest) []string {
	var violations []string
	if req.Page < 1 {
		violations = append(violations, "Page number must be at least 1.")
	}
	if req.PageSize < 1 {
		violations = append(violations, "Page size must be at least 1.")
	}
	if req.PageSize > maxPageSize {
		violations = append(violations, "Page size cannot exceed 100.")
	}
	if !isAllowedSortField(req.SortBy) {
		violations = append(violations, "Invalid SortBy field.")
	}
	if !strings.EqualFold(req.SortOrder, "asc") && !strings.EqualFold(req.SortOrder, "desc") {
		violations = append(violations, "Invalid SortOrder. Must be 'asc' or 'desc'.")
	}
	return violations
}

func isAllowedSortField(field string) bool {
	for _, allowed := range allowedSortFields {
		if strings.EqualFold(field, allowed) {
			return true
		}
	}
	return false
}
