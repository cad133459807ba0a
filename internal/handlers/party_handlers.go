package handlers

import (
	"net/http"

	"dairybook/internal/ledger"
	"dairybook/internal/middleware"
	"dairybook/internal/models"
	"dairybook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PartyHandlers handles party-related HTTP requests
type PartyHandlers struct {
	partyService services.PartyService
}

// NewPartyHandlers creates a new party handlers instance
func NewPartyHandlers(partyService services.PartyService) *PartyHandlers {
	return &PartyHandlers{partyService: partyService}
}

// ListPartiesRequest represents query parameters for listing parties
type ListPartiesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListParties handles getting a list of parties with tenant filtering
func (h *PartyHandlers) ListParties(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListPartiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 500 {
		req.Limit = 500
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	parties, err := h.partyService.List(ctx, tenantID, req.Limit, req.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list parties")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"parties": parties,
		"limit":   req.Limit,
		"offset":  req.Offset,
	})
}

// SearchParties handles filtered party lookup
func (h *PartyHandlers) SearchParties(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	filter := &models.PartySearchFilter{
		Query:     c.QueryParam("q"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	if t := c.QueryParam("type"); t != "" {
		filter.Type = &t
	}

	parties, err := h.partyService.Search(ctx, tenantID, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search parties")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"parties": parties})
}

// CreateParty handles creating a party
func (h *PartyHandlers) CreateParty(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreatePartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	party, err := h.partyService.Create(ctx, tenantID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, party)
}

// GetParty handles getting a single party
func (h *PartyHandlers) GetParty(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid party ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	party, err := h.partyService.GetByID(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Party not found")
	}

	return c.JSON(http.StatusOK, party)
}

// UpdateParty handles updating a party
func (h *PartyHandlers) UpdateParty(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid party ID")
	}

	var req services.UpdatePartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	party, err := h.partyService.Update(ctx, tenantID, id, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, party)
}

// DeleteParty handles deleting a party
func (h *PartyHandlers) DeleteParty(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid party ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	if err := h.partyService.Delete(ctx, tenantID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete party")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPartyLedger returns the party's reconstructed running-balance ledger
func (h *PartyHandlers) GetPartyLedger(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid party ID")
	}

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	entries, err := h.partyService.GetLedger(ctx, tenantID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build ledger")
	}
	if entries == nil {
		entries = []ledger.Entry{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"party_id": id,
		"entries":  entries,
	})
}
