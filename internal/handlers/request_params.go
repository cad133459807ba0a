package handlers

import (
	"errors"
	"strconv"
	"time"

	"dairybook/internal/common"

	"github.com/labstack/echo/v4"
)

const queryDateLayout = "2006-01-02"

// paginationParams extracts limit/offset query parameters with defaults.
func paginationParams(c echo.Context) (int, int) {
	limit := 50
	offset := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	limit, offset, err := common.ValidatePaginationParams(limit, offset)
	if err != nil {
		return 50, 0
	}
	return limit, offset
}

// parseDateRangeParams extracts and validates start_date/end_date query
// parameters. The end date is pushed to end-of-day so that a date-only
// range like 2025-04-01..2025-04-30 includes the whole last day.
func parseDateRangeParams(c echo.Context) (time.Time, time.Time, error) {
	startStr := c.QueryParam("start_date")
	endStr := c.QueryParam("end_date")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.New("start_date and end_date are required")
	}

	startDate, err := time.Parse(queryDateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start_date must be YYYY-MM-DD")
	}
	endDate, err := time.Parse(queryDateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end_date must be YYYY-MM-DD")
	}
	endDate = endDate.Add(24*time.Hour - time.Second)

	if err := common.ValidateDateRange(startDate, endDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}
