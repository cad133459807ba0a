package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(params url.Values) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseDateRangeParams_Valid(t *testing.T) {
	c := newQueryContext(url.Values{
		"start_date": {"2025-04-01"},
		"end_date":   {"2025-04-30"},
	})

	start, end, err := parseDateRangeParams(c)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), start)
	// End is pushed to end-of-day so the whole last day is included
	assert.Equal(t, time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC), end)
}

func TestParseDateRangeParams_MissingParam(t *testing.T) {
	c := newQueryContext(url.Values{"start_date": {"2025-04-01"}})

	_, _, err := parseDateRangeParams(c)
	assert.Error(t, err)
}

func TestParseDateRangeParams_BadFormat(t *testing.T) {
	c := newQueryContext(url.Values{
		"start_date": {"01-04-2025"},
		"end_date":   {"2025-04-30"},
	})

	_, _, err := parseDateRangeParams(c)
	assert.Error(t, err)
}

func TestParseDateRangeParams_EndBeforeStart(t *testing.T) {
	c := newQueryContext(url.Values{
		"start_date": {"2025-04-30"},
		"end_date":   {"2025-04-01"},
	})

	_, _, err := parseDateRangeParams(c)
	assert.Error(t, err)
}

func TestPaginationParams(t *testing.T) {
	c := newQueryContext(url.Values{"limit": {"20"}, "offset": {"40"}})
	limit, offset := paginationParams(c)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	c = newQueryContext(url.Values{})
	limit, offset = paginationParams(c)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	c = newQueryContext(url.Values{"limit": {"99999"}})
	limit, _ = paginationParams(c)
	assert.Equal(t, 1000, limit)
}
