package models

// TypeTotals holds a sum per resource type. Every type is always present.
type TypeTotals map[ResourceType]float64

// NewTypeTotals returns totals with a zero entry for every resource type
func NewTypeTotals() TypeTotals {
	totals := make(TypeTotals, len(ResourceTypes))
	for _, t := range ResourceTypes {
		totals[t] = 0
	}
	return totals
}

// MonthlyBucket holds the per type sums of one calendar month
type MonthlyBucket struct {
	Month  string     `json:"month"` // "2024-07" format
	Label  string     `json:"label"` // "Jul 2024"
	Totals TypeTotals `json:"totals"`
}

// DashboardStats holds all-time totals plus the current and previous calendar month
type DashboardStats struct {
	Totals       TypeTotals `json:"totals"`
	CurrentMonth TypeTotals `json:"currentMonth"`
	LastMonth    TypeTotals `json:"lastMonth"`
}

// TrendDirection describes how a total moved between two periods
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// TypeTrend compares the current month against the previous one for a type
type TypeTrend struct {
	Type          ResourceType   `json:"type"`
	Unit          string         `json:"unit"`
	Current       float64        `json:"current"`
	Previous      float64        `json:"previous"`
	Total         float64        `json:"total"`
	Direction     TrendDirection `json:"direction"`
	PercentChange float64        `json:"percentChange"`
}
