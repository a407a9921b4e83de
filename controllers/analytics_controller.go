package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/iris/services"
)

const (
	defaultAnalyticsMonths = 6
	maxAnalyticsMonths     = 24
)

// AnalyticsController serves chart series
type AnalyticsController struct {
	services *services.Services
}

// NewAnalyticsController creates a new analytics controller
func NewAnalyticsController(services *services.Services) *AnalyticsController {
	return &AnalyticsController{
		services: services,
	}
}

// Monthly handles GET /api/analytics/monthly?months=N
func (c *AnalyticsController) Monthly(w http.ResponseWriter, r *http.Request) {
	months := defaultAnalyticsMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			renderError(w, http.StatusBadRequest, "months must be a positive integer")
			return
		}
		months = min(n, maxAnalyticsMonths)
	}

	records := c.services.Resources.List(r.Context())
	renderJSON(w, http.StatusOK, services.MonthlyTotals(records, timeNow(), months))
}

// Daily handles GET /api/analytics/daily
func (c *AnalyticsController) Daily(w http.ResponseWriter, r *http.Request) {
	records := c.services.Resources.List(r.Context())
	renderJSON(w, http.StatusOK, services.DailyTotals(records, dailySeriesLength))
}
