package models

import "fmt"

// AuditAction identifies the kind of mutation recorded in the audit log
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditLog represents a single immutable resource mutation event
type AuditLog struct {
	ID           string          `json:"id"`
	Action       AuditAction     `json:"action"`
	ResourceID   string          `json:"resourceId"`
	ResourceType ResourceType    `json:"resourceType"`
	OldValues    *ResourceRecord `json:"oldValues,omitempty"`
	NewValues    *ResourceRecord `json:"newValues,omitempty"`
	Timestamp    string          `json:"timestamp"`
	Description  string          `json:"description"`
}

// AuditDescription builds the human readable summary for an audit entry
func AuditDescription(action AuditAction, resourceType ResourceType) string {
	return fmt.Sprintf("%s %s record", action, resourceType)
}
