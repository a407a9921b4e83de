package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blogem/iris/models"
	"github.com/blogem/iris/services"
	"github.com/blogem/iris/userctx"
	"github.com/go-chi/chi/v5"
)

// Open bounds used when a date filter side is omitted
const (
	minDate = "0000-01-01"
	maxDate = "9999-12-31"
)

// ResourceController handles resource record requests
type ResourceController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewResourceController creates a new resource controller
func NewResourceController(services *services.Services, logger *slog.Logger) *ResourceController {
	return &ResourceController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /api/resources?type=&from=&to=&search=&page=&perPage=
// Without page the full filtered list is returned, otherwise a RecordPage.
func (c *ResourceController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records := c.services.Resources.List(r.Context())

	if t := query.Get("type"); t != "" {
		resourceType := models.ResourceType(t)
		if !resourceType.IsValid() {
			renderError(w, http.StatusBadRequest, fmt.Sprintf("unknown resource type %q", t))
			return
		}
		records = services.FilterByType(records, resourceType)
	}

	from, to := query.Get("from"), query.Get("to")
	if from != "" || to != "" {
		dateRange := models.DateRange{Start: minDate, End: maxDate}
		for _, bound := range []struct {
			value string
			dst   *string
		}{{from, &dateRange.Start}, {to, &dateRange.End}} {
			if bound.value == "" {
				continue
			}
			if _, err := models.ParseDate(bound.value); err != nil {
				renderError(w, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
				return
			}
			*bound.dst = bound.value
		}
		records = services.FilterByDateRange(records, dateRange)
	}

	records = services.SearchRecords(records, query.Get("search"))

	if query.Get("page") == "" {
		renderJSON(w, http.StatusOK, records)
		return
	}

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	perPage := services.DefaultPageSize
	if raw := query.Get("perPage"); raw != "" {
		if perPage, err = strconv.Atoi(raw); err != nil {
			renderError(w, http.StatusBadRequest, "Invalid perPage")
			return
		}
	}

	renderJSON(w, http.StatusOK, services.Paginate(records, page, perPage))
}

// Get handles GET /api/resources/{id}
func (c *ResourceController) Get(w http.ResponseWriter, r *http.Request) {
	record, err := c.services.Resources.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.renderStoreError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, record)
}

// Create handles POST /api/resources
func (c *ResourceController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ResourceForm
	if err := decodeJSON(r, &form); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errs := form.Validate(timeNow()); errs.HasErrors() {
		renderValidation(w, errs)
		return
	}

	record, err := c.services.Resources.Create(r.Context(), form.ToInput())
	if err != nil && !markDegraded(w, r, c.logger, err) {
		c.renderStoreError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, record)
}

// CreateBatch handles POST /api/resources/batch
func (c *ResourceController) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var forms []models.ResourceForm
	if err := decodeJSON(r, &forms); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	today := timeNow()
	inputs := make([]models.ResourceInput, len(forms))
	var errs models.ValidationErrors
	for i := range forms {
		for _, fieldErr := range forms[i].Validate(today) {
			fieldErr.Field = fmt.Sprintf("[%d].%s", i, fieldErr.Field)
			errs = append(errs, fieldErr)
		}
		inputs[i] = forms[i].ToInput()
	}
	if errs.HasErrors() {
		renderValidation(w, errs)
		return
	}

	records, err := c.services.Resources.CreateBatch(r.Context(), inputs)
	if err != nil && !markDegraded(w, r, c.logger, err) {
		c.renderStoreError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, records)
}

// Update handles PUT /api/resources/{id}
func (c *ResourceController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.ResourceForm
	if err := decodeJSON(r, &form); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errs := form.Validate(timeNow()); errs.HasErrors() {
		renderValidation(w, errs)
		return
	}

	record, err := c.services.Resources.Update(r.Context(), chi.URLParam(r, "id"), form.ToPatch())
	if err != nil && !markDegraded(w, r, c.logger, err) {
		c.renderStoreError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/resources/{id}
func (c *ResourceController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := c.services.Resources.Delete(r.Context(), id)
	if err != nil && !markDegraded(w, r, c.logger, err) {
		c.renderStoreError(w, r, err)
		return
	}
	if !removed {
		renderError(w, http.StatusNotFound, "Resource not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Types handles GET /api/resource-types
func (c *ResourceController) Types(w http.ResponseWriter, r *http.Request) {
	types := make([]models.ResourceTypeConfig, 0, len(models.ResourceTypes))
	for _, t := range models.ResourceTypes {
		types = append(types, models.ResourceConfig[t])
	}
	renderJSON(w, http.StatusOK, types)
}

// Seed handles POST /api/seed. With generate=true it adds a year of synthetic data,
// otherwise the demo records when the store is empty.
func (c *ResourceController) Seed(w http.ResponseWriter, r *http.Request) {
	seed := c.services.Seed.SeedDemo
	if r.URL.Query().Get("generate") == "true" {
		seed = c.services.Seed.SeedGenerated
	}

	created, err := seed(r.Context())
	if err != nil && !markDegraded(w, r, c.logger, err) {
		c.renderStoreError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]int{"created": created})
}

func (c *ResourceController) renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrResourceNotFound):
		renderError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrInvalidResource):
		renderError(w, http.StatusBadRequest, err.Error())
	default:
		c.logger.Error("resource operation failed", "user", userctx.GetUsername(r.Context()), "error", err)
		renderError(w, http.StatusInternalServerError, "internal error")
	}
}
