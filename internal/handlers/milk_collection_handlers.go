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

// MilkCollectionHandlers handles milk collection HTTP requests
type MilkCollectionHandlers struct {
	repo     repositories.MilkCollectionRepository
	cacheSvc caching.CacheService
}

// NewMilkCollectionHandlers creates a new milk collection handlers instance
func NewMilkCollectionHandlers(repo repositories.MilkCollectionRepository, cacheSvc caching.CacheService) *MilkCollectionHandlers {
	return &MilkCollectionHandlers{repo: repo, cacheSvc: cacheSvc}
}

// CreateMilkCollectionRequest represents the milk collection creation payload
type CreateMilkCollectionRequest struct {
	Date             time.Time `json:"date"`
	PartyName        string    `json:"party_name"`
	Shift            string    `json:"shift"`
	QuantityLtr      float64   `json:"quantity_ltr"`
	FatPct           *float64  `json:"fat_pct"`
	RatePerLtr       float64   `json:"rate_per_ltr"`
	NetAmountPayable float64   `json:"net_amount_payable"`
	Notes            *string   `json:"notes"`
}

// ListMilkCollections handles listing milk collections, optionally by date range
func (h *MilkCollectionHandlers) ListMilkCollections(c echo.Context) error {
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
		collections, err := h.repo.ListByDateRange(ctx, tenantID, startDate, endDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list milk collections")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"milk_collections": collections})
	}

	limit, offset := paginationParams(c)
	collections, err := h.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list milk collections")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"milk_collections": collections,
		"limit":            limit,
		"offset":           offset,
	})
}

// CreateMilkCollection handles recording a milk collection entry
func (h *MilkCollectionHandlers) CreateMilkCollection(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateMilkCollectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.PartyName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Party name is required")
	}
	if req.QuantityLtr <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be positive")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	mc := &models.MilkCollection{
		ID:               uuid.New(),
		TenantID:         tenantID,
		Date:             req.Date,
		PartyName:        req.PartyName,
		Shift:            req.Shift,
		QuantityLtr:      req.QuantityLtr,
		FatPct:           req.FatPct,
		RatePerLtr:       req.RatePerLtr,
		NetAmountPayable: req.NetAmountPayable,
		Notes:            req.Notes,
	}
	if mc.Date.IsZero() {
		mc.Date = time.Now()
	}
	if mc.NetAmountPayable == 0 {
		mc.NetAmountPayable = mc.QuantityLtr * mc.RatePerLtr
	}

	if err := h.repo.Create(ctx, mc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create milk collection")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusCreated, mc)
}

// GetMilkCollection handles getting a single milk collection entry
func (h *MilkCollectionHandlers) GetMilkCollection(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid milk collection ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	mc, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Milk collection not found")
	}

	return c.JSON(http.StatusOK, mc)
}

// UpdateMilkCollection handles updating a milk collection entry
func (h *MilkCollectionHandlers) UpdateMilkCollection(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid milk collection ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	mc, err := h.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Milk collection not found")
	}

	var req CreateMilkCollectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.Date.IsZero() {
		mc.Date = req.Date
	}
	if req.PartyName != "" {
		mc.PartyName = req.PartyName
	}
	if req.Shift != "" {
		mc.Shift = req.Shift
	}
	if req.QuantityLtr > 0 {
		mc.QuantityLtr = req.QuantityLtr
	}
	if req.FatPct != nil {
		mc.FatPct = req.FatPct
	}
	if req.RatePerLtr > 0 {
		mc.RatePerLtr = req.RatePerLtr
	}
	if req.NetAmountPayable > 0 {
		mc.NetAmountPayable = req.NetAmountPayable
	}
	if req.Notes != nil {
		mc.Notes = req.Notes
	}

	if err := h.repo.Update(ctx, mc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update milk collection")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.JSON(http.StatusOK, mc)
}

// DeleteMilkCollection handles deleting a milk collection entry
func (h *MilkCollectionHandlers) DeleteMilkCollection(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid milk collection ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete milk collection")
	}
	h.cacheSvc.InvalidateTenantReports(ctx, tenantID)

	return c.NoContent(http.StatusNoContent)
}
