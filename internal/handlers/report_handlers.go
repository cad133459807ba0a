package handlers

import (
	"net/http"
	"time"

	"dairybook/internal/middleware"
	"dairybook/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandlers handles dashboard and profit & loss report requests
type ReportHandlers struct {
	reportService services.ReportService
}

// NewReportHandlers creates a new report handlers instance
func NewReportHandlers(reportService services.ReportService) *ReportHandlers {
	return &ReportHandlers{reportService: reportService}
}

// reportRange resolves the requested period, defaulting to the current
// calendar month when no range is given.
func reportRange(c echo.Context) (time.Time, time.Time, error) {
	if c.QueryParam("start_date") == "" && c.QueryParam("end_date") == "" {
		now := time.Now()
		startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)
		return startDate, endDate, nil
	}
	return parseDateRangeParams(c)
}

// GetDashboard returns the period business summary and daily chart series
func (h *ReportHandlers) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	startDate, endDate, err := reportRange(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.reportService.Dashboard(ctx, tenantID, startDate, endDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build dashboard")
	}

	return c.JSON(http.StatusOK, report)
}

// GetProfitLoss returns the period profit & loss statement and daily series
func (h *ReportHandlers) GetProfitLoss(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Tenant not found")
	}

	startDate, endDate, err := reportRange(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.reportService.ProfitLoss(ctx, tenantID, startDate, endDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build profit & loss report")
	}

	return c.JSON(http.StatusOK, report)
}
