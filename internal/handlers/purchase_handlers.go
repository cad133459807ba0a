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

// PurchaseHandlers handles purchase HTTP requests
type PurchaseHandlers struct {
	repo     repositories.PurchaseRepository
	cacheSvc caching.CacheService
}

// NewPurchaseHandlers creates a new purchase handlers instance
func NewPurchaseHandlers(repo repositories.PurchaseRepository, cacheSvc caching.CacheService) *PurchaseHandlers {
	return &PurchaseHandlers{repo: repo, cacheSvc: cacheSvc}
}

// CreatePurchaseRequest represents the purchase creation payload
type CreatePurchaseRequest struct {
	Date         time.Time `json:"date"`
	SupplierName string    `json:"supplier_name"`
	ProductName  string    `json:"product_name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	Rate         float64   `json:"rate"`
	TotalAmount  float64   `json:"total_amount"`
	PaymentType  string    `json:"payment_type"`
}

// ListPurchases handles listing purchases, optionally by date range
func (h *PurchaseHandlers) ListPurchases(c echo.Context) error {
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
		purchases, err := h.repo.ListByDateRange(ctx, tenantID, startDate, endDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list purchases")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"purchases": purchases})
	}

	limit, offset := paginationParams(c)
	purchases, err := h.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list purchases")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"purchases": purchases,
		"limit":     limit,
		"offset":    offset,
	})
}

// CreatePurchase handles recording a purchase
func (h *PurchaseHandlers) CreatePurchase(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.SupplierName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Supplier name is required")
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

	p := &models.Purchase{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Date:         req.Date,
		SupplierName: req.SupplierName,
		ProductName:  req.ProductName,
		Category:     req.Category,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		Rate:         req.Rate,
		TotalAmount:  req.TotalAmount,
		PaymentType:  req.PaymentType,
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.TotalAmount == 0 {
		p.TotalAmount = ledger.Round2(p.Quantity * p.Rate)
	}
	if p.PaymentType == "" {
		p.PaymentType = models.PaymentTypeCredit
	}

	if err := h.repo.Create(ctx, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create purchase")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusCreated, p)
}

// GetPurchase handles getting a single purchase
func (h *PurchaseHandlers) GetPurchase(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	p, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Purchase not found")
	}

	return c.JSON(http.StatusOK, p)
}

// UpdatePurchase handles updating a purchase
func (h *PurchaseHandlers) UpdatePurchase(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	p, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Purchase not found")
	}

	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.Date.IsZero() {
		p.Date = req.Date
	}
	if req.SupplierName != "" {
		p.SupplierName = req.SupplierName
	}
	if req.ProductName != "" {
		p.ProductName = req.ProductName
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Unit != "" {
		p.Unit = req.Unit
	}
	if req.Quantity > 0 {
		p.Quantity = req.Quantity
	}
	if req.Rate > 0 {
		p.Rate = req.Rate
	}
	if req.TotalAmount > 0 {
		p.TotalAmount = req.TotalAmount
	}
	if req.PaymentType != "" {
		p.PaymentType = req.PaymentType
	}

	if err := h.repo.Update(ctx, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update purchase")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusOK, p)
}

// DeletePurchase handles deleting a purchase
func (h *PurchaseHandlers) DeletePurchase(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete purchase")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.NoContent(http.StatusNoContent)
}
