package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/blogem/iris/models"
	"github.com/blogem/iris/repositories"
)

// AuditMirror interface is the read-only view of the audit ledger.
// Entries are only ever added by ResourceStore mutations.
type AuditMirror interface {
	List(ctx context.Context) []models.AuditLog
	ListByResource(ctx context.Context, resourceID string) []models.AuditLog
	Count(ctx context.Context) int
}

// auditMirror keeps the ledger newest first in its own slot
type auditMirror struct {
	logs *repositories.Cell[[]models.AuditLog]
}

func newAuditMirror(slots repositories.SlotRepository, logger *slog.Logger) *auditMirror {
	return &auditMirror{
		logs: repositories.NewCell(slots, repositories.AuditLogsKey, []models.AuditLog{}, logger),
	}
}

// List returns every audit entry, newest first
func (m *auditMirror) List(ctx context.Context) []models.AuditLog {
	return slices.Clone(m.logs.Read(ctx))
}

// ListByResource returns the history of a single record, newest first
func (m *auditMirror) ListByResource(ctx context.Context, resourceID string) []models.AuditLog {
	history := []models.AuditLog{}
	for _, entry := range m.logs.Read(ctx) {
		if entry.ResourceID == resourceID {
			history = append(history, entry)
		}
	}
	return history
}

// Count returns the number of audit entries
func (m *auditMirror) Count(ctx context.Context) int {
	return len(m.logs.Read(ctx))
}

// newEntry builds an audit entry stamped with the current instant
func (m *auditMirror) newEntry(action models.AuditAction, resourceID string, resourceType models.ResourceType, oldValues, newValues *models.ResourceRecord) models.AuditLog {
	return models.AuditLog{
		ID:           newID(),
		Action:       action,
		ResourceID:   resourceID,
		ResourceType: resourceType,
		OldValues:    oldValues,
		NewValues:    newValues,
		Timestamp:    models.FormatTimestamp(timeNow()),
		Description:  models.AuditDescription(action, resourceType),
	}
}

// append adds entries in the given order; each one lands at the head of the ledger
func (m *auditMirror) append(ctx context.Context, entries ...models.AuditLog) error {
	if len(entries) == 0 {
		return nil
	}

	current := m.logs.Read(ctx)
	next := make([]models.AuditLog, 0, len(entries)+len(current))
	for i := len(entries) - 1; i >= 0; i-- {
		next = append(next, entries[i])
	}
	next = append(next, current...)

	return m.logs.Write(ctx, next)
}
