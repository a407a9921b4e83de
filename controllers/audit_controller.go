package controllers

import (
	"net/http"

	"github.com/blogem/iris/services"
)

// AuditController serves the audit ledger
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// List handles GET /api/audit-logs?resourceId=
func (c *AuditController) List(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("resourceId"); id != "" {
		renderJSON(w, http.StatusOK, c.services.Audit.ListByResource(r.Context(), id))
		return
	}
	renderJSON(w, http.StatusOK, c.services.Audit.List(r.Context()))
}
