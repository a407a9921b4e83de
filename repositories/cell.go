package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrPersistence marks a value that was accepted in memory but could not be written to its slot
var ErrPersistence = errors.New("persistence failed")

// Cell binds an in-memory value to a named durable slot.
// The slot is read lazily on first access. Values are shared, not copied:
// callers must not mutate what Read returns.
type Cell[T any] struct {
	repo   SlotRepository
	key    string
	def    T
	logger *slog.Logger

	mu     sync.Mutex
	value  T
	loaded bool
}

// NewCell creates a cell for key that falls back to def when the slot is absent or unreadable
func NewCell[T any](repo SlotRepository, key string, def T, logger *slog.Logger) *Cell[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cell[T]{
		repo:   repo,
		key:    key,
		def:    def,
		logger: logger.With("slot", key),
	}
}

// Key returns the slot name
func (c *Cell[T]) Key() string {
	return c.key
}

// Read returns the current value, hydrating from storage on first access
func (c *Cell[T]) Read(ctx context.Context) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		c.value = c.hydrate(ctx)
		c.loaded = true
	}
	return c.value
}

// Write replaces the value in memory and persists it synchronously.
// On failure the in-memory value is kept and the error wraps ErrPersistence.
func (c *Cell[T]) Write(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.loaded = true

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to serialize slot", "error", err)
		return fmt.Errorf("%w: serialize %s: %v", ErrPersistence, c.key, err)
	}

	if err := c.repo.Put(ctx, c.key, payload); err != nil {
		c.logger.Warn("failed to persist slot", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

// Clear removes the slot and resets the in-memory value to the default
func (c *Cell[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = c.def
	c.loaded = true

	if err := c.repo.Delete(ctx, c.key); err != nil {
		c.logger.Warn("failed to clear slot", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// hydrate loads the slot; absent or corrupt data yields the default
func (c *Cell[T]) hydrate(ctx context.Context) T {
	payload, ok, err := c.repo.Get(ctx, c.key)
	if err != nil {
		c.logger.Warn("failed to read slot, using default", "error", err)
		return c.def
	}
	if !ok {
		return c.def
	}

	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		c.logger.Warn("corrupt slot payload, using default", "error", err)
		return c.def
	}
	return value
}
