package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/blogem/iris/models"
	"github.com/blogem/iris/repositories"
	"github.com/blogem/iris/services"
	"github.com/blogem/iris/userctx"
)

// PersistenceHeader is set on responses whose mutation committed in memory but not on disk
const PersistenceHeader = "X-Iris-Persistence"

var timeNow = func() time.Time {
	return time.Now()
}

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Details []models.ValidationError `json:"details,omitempty"`
}

// renderJSON writes data as JSON with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// renderError writes an ErrorResponse with the given status code
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSON(w, statusCode, ErrorResponse{Error: message})
}

// renderValidation writes a 400 listing every field error
func renderValidation(w http.ResponseWriter, errs models.ValidationErrors) {
	renderJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: errs})
}

// decodeJSON reads the request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// markDegraded flags a response whose change was kept in memory only.
// It reports whether err was a persistence failure; other errors are left to the caller.
func markDegraded(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) bool {
	if !errors.Is(err, repositories.ErrPersistence) {
		return false
	}
	logger.Warn("change not persisted", "user", userctx.GetUsername(r.Context()), "path", r.URL.Path, "error", err)
	w.Header().Set(PersistenceHeader, "degraded")
	return true
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Resources *ResourceController
	Audit     *AuditController
	Dashboard *DashboardController
	Analytics *AnalyticsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *slog.Logger) *Controllers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controllers{
		Auth:      NewAuthController(services, logger),
		Resources: NewResourceController(services, logger),
		Audit:     NewAuditController(services),
		Dashboard: NewDashboardController(services),
		Analytics: NewAnalyticsController(services),
	}
}
