package services

import (
	"sort"
	"time"

	"github.com/blogem/iris/models"
)

// TypeSummary holds descriptive statistics of one resource type
type TypeSummary struct {
	Type    models.ResourceType `json:"type"`
	Unit    string              `json:"unit"`
	Count   int                 `json:"count"`
	Total   float64             `json:"total"`
	Average float64             `json:"average"`
	Max     float64             `json:"max"`
}

// DailyPoint holds the per type sums of one calendar date
type DailyPoint struct {
	Date   string            `json:"date"`
	Totals models.TypeTotals `json:"totals"`
}

// TotalsByType sums values per type across all records
func TotalsByType(records []models.ResourceRecord) models.TypeTotals {
	totals := models.NewTypeTotals()
	for _, r := range records {
		totals[r.Type] += r.Value
	}
	return totals
}

// TotalForType sums the values of one type with no date filtering
func TotalForType(records []models.ResourceRecord, resourceType models.ResourceType) float64 {
	var total float64
	for _, r := range records {
		if r.Type == resourceType {
			total += r.Value
		}
	}
	return total
}

// MonthlyTotals buckets the last months calendar months ending with now's month,
// oldest first. Months without records carry zero sums for every type.
func MonthlyTotals(records []models.ResourceRecord, now time.Time, months int) []models.MonthlyBucket {
	if months <= 0 {
		return []models.MonthlyBucket{}
	}

	current := models.MonthStart(now)
	buckets := make([]models.MonthlyBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := current.AddDate(0, i-months+1, 0)
		key := month.Format(models.MonthLayout)
		buckets[i] = models.MonthlyBucket{
			Month:  key,
			Label:  month.Format("Jan 2006"),
			Totals: models.NewTypeTotals(),
		}
		index[key] = i
	}

	for _, r := range records {
		if len(r.Date) < len(models.MonthLayout) {
			continue
		}
		if i, ok := index[r.Date[:len(models.MonthLayout)]]; ok {
			buckets[i].Totals[r.Type] += r.Value
		}
	}

	return buckets
}

// ComputeDashboardStats sums the current calendar month, the previous one and all time
func ComputeDashboardStats(records []models.ResourceRecord, now time.Time) models.DashboardStats {
	currentRange := models.MonthRange(now)
	lastRange := models.MonthRange(models.PreviousMonth(now))

	stats := models.DashboardStats{
		Totals:       models.NewTypeTotals(),
		CurrentMonth: models.NewTypeTotals(),
		LastMonth:    models.NewTypeTotals(),
	}

	for _, r := range records {
		stats.Totals[r.Type] += r.Value
		if currentRange.Contains(r.Date) {
			stats.CurrentMonth[r.Type] += r.Value
		}
		if lastRange.Contains(r.Date) {
			stats.LastMonth[r.Type] += r.Value
		}
	}

	return stats
}

// ComputeTrends derives direction and percent change per type.
// The percent change is 0 when the previous month total is 0.
func ComputeTrends(stats models.DashboardStats) []models.TypeTrend {
	trends := make([]models.TypeTrend, 0, len(models.ResourceTypes))
	for _, t := range models.ResourceTypes {
		current := stats.CurrentMonth[t]
		previous := stats.LastMonth[t]
		change := current - previous

		trend := models.TypeTrend{
			Type:      t,
			Unit:      t.Unit(),
			Current:   current,
			Previous:  previous,
			Total:     stats.Totals[t],
			Direction: models.TrendFlat,
		}
		switch {
		case change > 0:
			trend.Direction = models.TrendUp
		case change < 0:
			trend.Direction = models.TrendDown
		}
		if previous > 0 {
			trend.PercentChange = change / previous * 100
		}

		trends = append(trends, trend)
	}
	return trends
}

// SummarizeByType returns count, total, average and max for every type
func SummarizeByType(records []models.ResourceRecord) []TypeSummary {
	byType := make(map[models.ResourceType]*TypeSummary, len(models.ResourceTypes))
	summaries := make([]TypeSummary, len(models.ResourceTypes))
	for i, t := range models.ResourceTypes {
		summaries[i] = TypeSummary{Type: t, Unit: t.Unit()}
		byType[t] = &summaries[i]
	}

	for _, r := range records {
		summary, ok := byType[r.Type]
		if !ok {
			continue
		}
		summary.Count++
		summary.Total += r.Value
		summary.Max = max(summary.Max, r.Value)
	}

	for i := range summaries {
		if summaries[i].Count > 0 {
			summaries[i].Average = summaries[i].Total / float64(summaries[i].Count)
		}
	}
	return summaries
}

// DailyTotals groups records by date, oldest first, keeping the most recent limit dates
func DailyTotals(records []models.ResourceRecord, limit int) []DailyPoint {
	byDate := make(map[string]models.TypeTotals)
	for _, r := range records {
		totals, ok := byDate[r.Date]
		if !ok {
			totals = models.NewTypeTotals()
			byDate[r.Date] = totals
		}
		totals[r.Type] += r.Value
	}

	points := make([]DailyPoint, 0, len(byDate))
	for date, totals := range byDate {
		points = append(points, DailyPoint{Date: date, Totals: totals})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	if limit > 0 && len(points) > limit {
		points = points[len(points)-limit:]
	}
	return points
}
