package handlers

import (
	"net/http"
	"time"

	"dairybook/internal/caching"
	"dairybook/internal/ledger"
	"dairybook/internal/middleware"
	"dairybook/internal/models"
	"dairybook/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BulkSaleHandlers handles bulk milk sale HTTP requests
type BulkSaleHandlers struct {
	repo     repositories.BulkSaleRepository
	cacheSvc caching.CacheService
}

// NewBulkSaleHandlers creates a new bulk sale handlers instance
func NewBulkSaleHandlers(repo repositories.BulkSaleRepository, cacheSvc caching.CacheService) *BulkSaleHandlers {
	return &BulkSaleHandlers{repo: repo, cacheSvc: cacheSvc}
}

// CreateBulkSaleRequest represents the bulk sale creation payload
type CreateBulkSaleRequest struct {
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"`
	QuantityLtr  float64   `json:"quantity_ltr"`
	RatePerLtr   float64   `json:"rate_per_ltr"`
	TotalAmount  float64   `json:"total_amount"`
	PaymentType  string    `json:"payment_type"`
}

// ListBulkSales handles listing bulk sales, optionally by date range
func (h *BulkSaleHandlers) ListBulkSales(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if c.QueryParam("start_date") != "" || c.QueryParam("end_date") != "" {
		startDate, endDate, err := parseDateRangeParams(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		bulkSales, err := h.repo.ListByDateRange(ctx, tenantID, startDate, endDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list bulk sales")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"bulk_sales": bulkSales})
	}

	limit, offset := paginationParams(c)
	bulkSales, err := h.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list bulk sales")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bulk_sales": bulkSales,
		"limit":      limit,
		"offset":     offset,
	})
}

// CreateBulkSale handles recording a bulk milk sale
func (h *BulkSaleHandlers) CreateBulkSale(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateBulkSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.CustomerName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Customer name is required")
	}
	if req.QuantityLtr <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be positive")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	bs := &models.BulkSale{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Date:         req.Date,
		CustomerName: req.CustomerName,
		QuantityLtr:  req.QuantityLtr,
		RatePerLtr:   req.RatePerLtr,
		TotalAmount:  req.TotalAmount,
		PaymentType:  req.PaymentType,
	}
	if bs.Date.IsZero() {
		bs.Date = time.Now()
	}
	if bs.TotalAmount == 0 {
		bs.TotalAmount = ledger.Round2(bs.QuantityLtr * bs.RatePerLtr)
	}
	if bs.PaymentType == "" {
		bs.PaymentType = models.PaymentTypeCredit
	}

	if err := h.repo.Create(ctx, bs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create bulk sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusCreated, bs)
}

// GetBulkSale handles getting a single bulk sale
func (h *BulkSaleHandlers) GetBulkSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid bulk sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	bs, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Bulk sale not found")
	}

	return c.JSON(http.StatusOK, bs)
}

// UpdateBulkSale handles updating a bulk sale
func (h *BulkSaleHandlers) UpdateBulkSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid bulk sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	bs, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Bulk sale not found")
	}

	var req CreateBulkSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.Date.IsZero() {
		bs.Date = req.Date
	}
	if req.CustomerName != "" {
		bs.CustomerName = req.CustomerName
	}
	if req.QuantityLtr > 0 {
		bs.QuantityLtr = req.QuantityLtr
	}
	if req.RatePerLtr > 0 {
		bs.RatePerLtr = req.RatePerLtr
	}
	if req.TotalAmount > 0 {
		bs.TotalAmount = req.TotalAmount
	}
	if req.PaymentType != "" {
		bs.PaymentType = req.PaymentType
	}

	if err := h.repo.Update(ctx, bs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update bulk sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusOK, bs)
}

// DeleteBulkSale handles deleting a bulk sale
func (h *BulkSaleHandlers) DeleteBulkSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid bulk sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete bulk sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.NoContent(http.StatusNoContent)
}
