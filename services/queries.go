package services

import (
	"strconv"
	"strings"

	"github.com/blogem/iris/models"
)

const (
	// DefaultPageSize is the number of records per page of the records listing
	DefaultPageSize = 20
	// MaxPageSize bounds the page size a caller may ask for
	MaxPageSize = 100
)

// RecordPage is one page of a filtered record listing
type RecordPage struct {
	Records    []models.ResourceRecord `json:"records"`
	Page       int                     `json:"page"`
	PerPage    int                     `json:"perPage"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"totalPages"`
}

// FilterByType keeps the records of one type, preserving order
func FilterByType(records []models.ResourceRecord, resourceType models.ResourceType) []models.ResourceRecord {
	filtered := []models.ResourceRecord{}
	for _, r := range records {
		if r.Type == resourceType {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByDateRange keeps the records dated within the inclusive range, preserving order
func FilterByDateRange(records []models.ResourceRecord, dateRange models.DateRange) []models.ResourceRecord {
	filtered := []models.ResourceRecord{}
	for _, r := range records {
		if dateRange.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SearchRecords keeps records whose description contains term (case-insensitive)
// or whose value contains term as written. An empty term matches everything.
func SearchRecords(records []models.ResourceRecord, term string) []models.ResourceRecord {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}

	lowered := strings.ToLower(term)
	filtered := []models.ResourceRecord{}
	for _, r := range records {
		value := strconv.FormatFloat(r.Value, 'f', -1, 64)
		if strings.Contains(strings.ToLower(r.Description), lowered) || strings.Contains(value, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Paginate returns the 1-based page of records. Out of range pages are empty.
// perPage is clamped to MaxPageSize.
func Paginate(records []models.ResourceRecord, page, perPage int) RecordPage {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	perPage = min(perPage, MaxPageSize)
	if page < 1 {
		page = 1
	}

	total := len(records)
	result := RecordPage{
		Records:    []models.ResourceRecord{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	// Compare in pages so (page-1)*perPage cannot overflow
	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	result.Records = records[start:end]
	return result
}
