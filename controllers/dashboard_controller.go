package controllers

import (
	"net/http"

	"github.com/blogem/iris/models"
	"github.com/blogem/iris/services"
)

// dailySeriesLength is the number of most recent dates in the daily chart series
const dailySeriesLength = 30

// DashboardData is everything the dashboard view needs in one response
type DashboardData struct {
	Stats        models.DashboardStats  `json:"stats"`
	Trends       []models.TypeTrend     `json:"trends"`
	Summaries    []services.TypeSummary `json:"summaries"`
	Daily        []services.DailyPoint  `json:"daily"`
	RecordCount  int                    `json:"recordCount"`
	AuditCount   int                    `json:"auditCount"`
	CurrentMonth models.DateRange       `json:"currentMonth"`
}

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /api/dashboard
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	now := timeNow()
	snapshot := c.services.Resources.Snapshot(r.Context())
	stats := services.ComputeDashboardStats(snapshot.Resources, now)

	renderJSON(w, http.StatusOK, DashboardData{
		Stats:        stats,
		Trends:       services.ComputeTrends(stats),
		Summaries:    services.SummarizeByType(snapshot.Resources),
		Daily:        services.DailyTotals(snapshot.Resources, dailySeriesLength),
		RecordCount:  len(snapshot.Resources),
		AuditCount:   len(snapshot.AuditLogs),
		CurrentMonth: models.MonthRange(now),
	})
}
