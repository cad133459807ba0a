package handlers

import (
	"net/http"
	"time"

	"dairybook/internal/caching"
	"dairybook/internal/middleware"
	"dairybook/internal/models"
	"dairybook/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PaymentHandlers handles payment HTTP requests
type PaymentHandlers struct {
	repo     repositories.PaymentRepository
	cacheSvc caching.CacheService
}

// NewPaymentHandlers creates a new payment handlers instance
func NewPaymentHandlers(repo repositories.PaymentRepository, cacheSvc caching.CacheService) *PaymentHandlers {
	return &PaymentHandlers{repo: repo, cacheSvc: cacheSvc}
}

// CreatePaymentRequest represents the payment creation payload
type CreatePaymentRequest struct {
	Date      time.Time `json:"date"`
	PartyName string    `json:"party_name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Mode      *string   `json:"mode"`
	Notes     *string   `json:"notes"`
}

// ListPayments handles listing payments, optionally by date range
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
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
		payments, err := h.repo.ListByDateRange(ctx, tenantID, startDate, endDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list payments")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"payments": payments})
	}

	limit, offset := paginationParams(c)
	payments, err := h.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list payments")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payments": payments,
		"limit":    limit,
		"offset":   offset,
	})
}

// CreatePayment handles recording a payment against a party account
func (h *PaymentHandlers) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.PartyName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Party name is required")
	}
	if req.Type != models.PaymentPaid && req.Type != models.PaymentReceived {
		return echo.NewHTTPError(http.StatusBadRequest, "Payment type must be Paid or Received")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be positive")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	p := &models.Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Date:      req.Date,
		PartyName: req.PartyName,
		Type:      req.Type,
		Amount:    req.Amount,
		Mode:      req.Mode,
		Notes:     req.Notes,
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	if err := h.repo.Create(ctx, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create payment")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusCreated, p)
}

// GetPayment handles getting a single payment
func (h *PaymentHandlers) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payment ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	p, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}

	return c.JSON(http.StatusOK, p)
}

// UpdatePayment handles updating a payment
func (h *PaymentHandlers) UpdatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payment ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	p, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}

	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.Date.IsZero() {
		p.Date = req.Date
	}
	if req.PartyName != "" {
		p.PartyName = req.PartyName
	}
	if req.Type != "" {
		if req.Type != models.PaymentPaid && req.Type != models.PaymentReceived {
			return echo.NewHTTPError(http.StatusBadRequest, "Payment type must be Paid or Received")
		}
		p.Type = req.Type
	}
	if req.Amount > 0 {
		p.Amount = req.Amount
	}
	if req.Mode != nil {
		p.Mode = req.Mode
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := h.repo.Update(ctx, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update payment")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusOK, p)
}

// DeletePayment handles deleting a payment
func (h *PaymentHandlers) DeletePayment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payment ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete payment")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.NoContent(http.StatusNoContent)
}
