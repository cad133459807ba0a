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

// SaleHandlers handles retail sale HTTP requests
type SaleHandlers struct {
	repo     repositories.SaleRepository
	cacheSvc caching.CacheService
}

// NewSaleHandlers creates a new sale handlers instance
func NewSaleHandlers(repo repositories.SaleRepository, cacheSvc caching.CacheService) *SaleHandlers {
	return &SaleHandlers{repo: repo, cacheSvc: cacheSvc}
}

// CreateSaleRequest represents the sale creation payload
type CreateSaleRequest struct {
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	Rate         float64   `json:"rate"`
	TotalAmount  float64   `json:"total_amount"`
	PaymentType  string    `json:"payment_type"`
}

// ListSales handles listing sales, optionally by date range
func (h *SaleHandlers) ListSales(c echo.Context) error {
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
		sales, err := h.repo.ListByDateRange(ctx, tenantID, startDate, endDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"sales": sales})
	}

	limit, offset := paginationParams(c)
	sales, err := h.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":  sales,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateSale handles recording a retail sale
func (h *SaleHandlers) CreateSale(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.CustomerName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Customer name is required")
	}
	if req.ProductName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product name is required")
	}
	if req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be positive")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	sale := &models.Sale{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Date:         req.Date,
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		Rate:         req.Rate,
		TotalAmount:  req.TotalAmount,
		PaymentType:  req.PaymentType,
	}
	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	if sale.TotalAmount == 0 {
		sale.TotalAmount = ledger.Round2(sale.Quantity * sale.Rate)
	}
	if sale.PaymentType == "" {
		sale.PaymentType = models.PaymentTypeCash
	}

	if err := h.repo.Create(ctx, sale); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusCreated, sale)
}

// GetSale handles getting a single sale
func (h *SaleHandlers) GetSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	sale, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Sale not found")
	}

	return c.JSON(http.StatusOK, sale)
}

// UpdateSale handles updating a sale
func (h *SaleHandlers) UpdateSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	sale, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Sale not found")
	}

	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.Date.IsZero() {
		sale.Date = req.Date
	}
	if req.CustomerName != "" {
		sale.CustomerName = req.CustomerName
	}
	if req.ProductName != "" {
		sale.ProductName = req.ProductName
	}
	if req.Unit != "" {
		sale.Unit = req.Unit
	}
	if req.Quantity > 0 {
		sale.Quantity = req.Quantity
	}
	if req.Rate > 0 {
		sale.Rate = req.Rate
	}
	if req.TotalAmount > 0 {
		sale.TotalAmount = req.TotalAmount
	}
	if req.PaymentType != "" {
		sale.PaymentType = req.PaymentType
	}

	if err := h.repo.Update(ctx, sale); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusOK, sale)
}

// DeleteSale handles deleting a sale
func (h *SaleHandlers) DeleteSale(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sale ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete sale")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.NoContent(http.StatusNoContent)
}
