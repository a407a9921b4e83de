package models

import (
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used for record dates
	DateLayout = "2006-01-02"
	// MonthLayout is the key format of a monthly bucket
	MonthLayout = "2006-01"
	// TimestampLayout is the ISO-8601 instant format with millisecond precision
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// DateRange represents an inclusive range of calendar dates
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the date lies within the range. ISO dates compare lexicographically.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// MonthRange returns the date range covering the calendar month of t
func MonthRange(t time.Time) DateRange {
	start := MonthStart(t)
	end := start.AddDate(0, 1, -1)
	return DateRange{Start: FormatDate(start), End: FormatDate(end)}
}

// MonthStart returns midnight of the first day of t's month
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PreviousMonth returns the first day of the month before t's month, rolling the year over
func PreviousMonth(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, -1, 0)
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimestamp formats an instant in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error joins the messages so ValidationErrors can be returned as an error
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}
