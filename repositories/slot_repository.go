package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// SlotRepository interface defines durable key-value slot operations
type SlotRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// slotRepository implements SlotRepository on top of the slots table
type slotRepository struct {
	db *sql.DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *sql.DB) SlotRepository {
	return &slotRepository{db: db}
}

// Get retrieves the payload stored under key. The bool is false when the slot is absent.
func (r *slotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT payload FROM slots WHERE key = ?`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get slot %s: %w", key, err)
	}

	return payload, true, nil
}

// Put stores payload under key, replacing any previous value
func (r *slotRepository) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO slots (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to put slot %s: %w", key, err)
	}

	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (r *slotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored slot key in order
func (r *slotRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM slots ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan slot key: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slots: %w", err)
	}

	return keys, nil
}
