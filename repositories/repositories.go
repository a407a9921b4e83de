package repositories

import (
	"database/sql"
)

// Slot keys of the persisted state
const (
	ResourcesKey = "iris_resources"
	AuditLogsKey = "iris_audit_logs"
	TokenKey     = "iris_token"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Slots SlotRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Slots: NewSlotRepository(db),
	}
}
