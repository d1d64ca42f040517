package controller

import (
	"errors"
	"net/http"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleController handles the HTTP surface for sales.
type SaleController struct {
	createSaleUC *usecase.CreateSaleUseCase
	updateSaleUC *usecase.UpdateSaleUseCase
	cancelSaleUC *usecase.CancelSaleUseCase
	getSaleUC    *usecase.GetSaleUseCase
	listSalesUC  *usecase.ListSalesUseCase
	logger       *zap.Logger
}

// NewSaleController creates a new controller instance.
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	logger *zap.Logger,
) *SaleController {
	return &SaleController{
		createSaleUC: createSaleUC,
		updateSaleUC: updateSaleUC,
		cancelSaleUC: cancelSaleUC,
		getSaleUC:    getSaleUC,
		listSalesUC:  listSalesUC,
		logger:       logger,
	}
}

// RegisterRoutes registers the controller routes.
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.POST("", c.CreateSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.POST("/:sale_id/cancel", c.CancelSale)
	}
}

// CreateSale handles POST /sales.
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSale handles GET /sales/:sale_id.
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSale handles PUT /sales/:sale_id.
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CancelSale handles POST /sales/:sale_id/cancel.
func (c *SaleController) CancelSale(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.cancelSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSales handles GET /sales.
func (c *SaleController) ListSales(ctx *gin.Context) {
	var req request.ListSalesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *SaleController) saleIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID format"})
		return uuid.Nil, false
	}
	return saleID, true
}

// respondError maps the domain error taxonomy to HTTP statuses. All domain
// failures are caller-input problems and map to 4xx; anything else is an
// infrastructure fault.
func (c *SaleController) respondError(ctx *gin.Context, err error) {
	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationErr.Violations,
		})
		return
	}

	var domainRuleErr *entity.DomainRuleError
	if errors.As(err, &domainRuleErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": domainRuleErr.Message})
		return
	}

	var invalidState *entity.InvalidStateError
	if errors.As(err, &invalidState) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": invalidState.Message})
		return
	}

	c.logger.Error("unhandled error", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
