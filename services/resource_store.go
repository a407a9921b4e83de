package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/blogem/iris/metrics"
	"github.com/blogem/iris/models"
	"github.com/blogem/iris/repositories"
	"github.com/google/uuid"
)

var timeNow = func() time.Time {
	return time.Now()
}

var newID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

var (
	// ErrResourceNotFound is returned when no record has the requested id
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidResource is returned when a record would break the store invariants
	ErrInvalidResource = errors.New("invalid resource")
)

// Snapshot is the state of both collections at one read instant
type Snapshot struct {
	Resources []models.ResourceRecord `json:"resources"`
	AuditLogs []models.AuditLog       `json:"auditLogs"`
}

// ResourceStore interface defines resource record operations.
// Every mutation appends exactly one audit entry per affected record.
type ResourceStore interface {
	Create(ctx context.Context, input models.ResourceInput) (*models.ResourceRecord, error)
	CreateBatch(ctx context.Context, inputs []models.ResourceInput) ([]models.ResourceRecord, error)
	Update(ctx context.Context, id string, patch models.ResourcePatch) (*models.ResourceRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (*models.ResourceRecord, error)
	List(ctx context.Context) []models.ResourceRecord
	QueryByType(ctx context.Context, resourceType models.ResourceType) []models.ResourceRecord
	QueryByDateRange(ctx context.Context, start, end string) []models.ResourceRecord
	Snapshot(ctx context.Context) Snapshot
	Subscribe(fn func(Snapshot)) (unsubscribe func())
	Audit() AuditMirror
}

// resourceStore implements ResourceStore over two durable cells
type resourceStore struct {
	resources *repositories.Cell[[]models.ResourceRecord]
	audit     *auditMirror
	logger    *slog.Logger

	// mu makes collection update, persistence and audit append one step
	mu sync.Mutex

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewResourceStore creates a resource store persisted in the given slot repository
func NewResourceStore(slots repositories.SlotRepository, logger *slog.Logger) ResourceStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &resourceStore{
		resources:   repositories.NewCell(slots, repositories.ResourcesKey, []models.ResourceRecord{}, logger),
		audit:       newAuditMirror(slots, logger),
		logger:      logger,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Audit returns the read-only view of the audit ledger
func (s *resourceStore) Audit() AuditMirror {
	return s.audit
}

// Create adds a new record at the head of the collection
func (s *resourceStore) Create(ctx context.Context, input models.ResourceInput) (*models.ResourceRecord, error) {
	records, err := s.CreateBatch(ctx, []models.ResourceInput{input})
	if len(records) == 0 {
		return nil, err
	}
	return &records[0], err
}

// CreateBatch adds all inputs at the head of the collection, keeping input order,
// and appends one CREATE entry per record in the same order
func (s *resourceStore) CreateBatch(ctx context.Context, inputs []models.ResourceInput) ([]models.ResourceRecord, error) {
	if len(inputs) == 0 {
		return []models.ResourceRecord{}, nil
	}

	now := models.FormatTimestamp(timeNow())
	created := make([]models.ResourceRecord, len(inputs))
	for i, input := range inputs {
		record := models.ResourceRecord{
			ID:          newID(),
			Type:        input.Type,
			Value:       input.Value,
			Unit:        input.Type.Unit(),
			Date:        input.Date,
			Description: input.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := checkRecord(record); err != nil {
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}
		created[i] = record
	}

	s.mu.Lock()
	current := s.resources.Read(ctx)
	next := make([]models.ResourceRecord, 0, len(created)+len(current))
	next = append(next, created...)
	next = append(next, current...)

	entries := make([]models.AuditLog, len(created))
	for i := range created {
		record := created[i]
		entries[i] = s.audit.newEntry(models.AuditCreate, record.ID, record.Type, nil, &record)
	}

	err := s.commit(ctx, next, entries)
	snapshot := s.snapshotLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("resources created", "count", len(created))
	s.notify(snapshot)

	return slices.Clone(created), err
}

// Update merges patch over the record with the given id
func (s *resourceStore) Update(ctx context.Context, id string, patch models.ResourcePatch) (*models.ResourceRecord, error) {
	s.mu.Lock()
	current := s.resources.Read(ctx)
	idx := indexOf(current, id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}

	old := current[idx]
	updated := old
	patch.Apply(&updated)
	updated.UpdatedAt = models.FormatTimestamp(timeNow())
	if err := checkRecord(updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	next := slices.Clone(current)
	next[idx] = updated

	entry := s.audit.newEntry(models.AuditUpdate, id, old.Type, &old, &updated)
	err := s.commit(ctx, next, []models.AuditLog{entry})
	snapshot := s.snapshotLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("resource updated", "id", id, "type", updated.Type)
	s.notify(snapshot)

	return &updated, err
}

// Delete removes the record with the given id. It returns false when no such record exists.
func (s *resourceStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	current := s.resources.Read(ctx)
	idx := indexOf(current, id)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}

	removed := current[idx]
	next := slices.Delete(slices.Clone(current), idx, idx+1)

	entry := s.audit.newEntry(models.AuditDelete, id, removed.Type, &removed, nil)
	err := s.commit(ctx, next, []models.AuditLog{entry})
	snapshot := s.snapshotLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("resource deleted", "id", id, "type", removed.Type)
	s.notify(snapshot)

	return true, err
}

// Get retrieves a single record by id
func (s *resourceStore) Get(ctx context.Context, id string) (*models.ResourceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.resources.Read(ctx)
	idx := indexOf(current, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	record := current[idx]
	return &record, nil
}

// List returns every record, newest first
func (s *resourceStore) List(ctx context.Context) []models.ResourceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.resources.Read(ctx))
}

// QueryByType returns the records of one type in collection order
func (s *resourceStore) QueryByType(ctx context.Context, resourceType models.ResourceType) []models.ResourceRecord {
	return FilterByType(s.List(ctx), resourceType)
}

// QueryByDateRange returns the records dated within [start, end] in collection order
func (s *resourceStore) QueryByDateRange(ctx context.Context, start, end string) []models.ResourceRecord {
	return FilterByDateRange(s.List(ctx), models.DateRange{Start: start, End: end})
}

// Snapshot returns both collections as of one instant
func (s *resourceStore) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(ctx)
}

// Subscribe registers fn to receive a snapshot after every committed mutation
func (s *resourceStore) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

// commit persists the new collection and appends the audit entries. Must hold s.mu.
// Memory is always updated; a persistence failure is reported but not rolled back.
func (s *resourceStore) commit(ctx context.Context, next []models.ResourceRecord, entries []models.AuditLog) error {
	var errs []error

	if err := s.resources.Write(ctx, next); err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues(repositories.ResourcesKey).Inc()
		errs = append(errs, err)
	}

	if err := s.audit.append(ctx, entries...); err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues(repositories.AuditLogsKey).Inc()
		errs = append(errs, err)
	}

	for _, entry := range entries {
		metrics.StoreMutationsTotal.WithLabelValues(string(entry.Action), string(entry.ResourceType)).Inc()
	}
	for resourceType, count := range countByType(next) {
		metrics.ResourcesCurrent.WithLabelValues(string(resourceType)).Set(float64(count))
	}

	return errors.Join(errs...)
}

func (s *resourceStore) snapshotLocked(ctx context.Context) Snapshot {
	return Snapshot{
		Resources: slices.Clone(s.resources.Read(ctx)),
		AuditLogs: s.audit.List(ctx),
	}
}

func (s *resourceStore) notify(snapshot Snapshot) {
	s.subMu.Lock()
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// checkRecord enforces the closed type set and finite, non-negative values.
// NaN and Inf cannot be serialized to the slots.
func checkRecord(record models.ResourceRecord) error {
	if !record.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidResource, record.Type)
	}
	if math.IsNaN(record.Value) || math.IsInf(record.Value, 0) {
		return fmt.Errorf("%w: non-finite value %v", ErrInvalidResource, record.Value)
	}
	if record.Value < 0 {
		return fmt.Errorf("%w: negative value %v", ErrInvalidResource, record.Value)
	}
	return nil
}

func indexOf(records []models.ResourceRecord, id string) int {
	return slices.IndexFunc(records, func(r models.ResourceRecord) bool {
		return r.ID == id
	})
}

func countByType(records []models.ResourceRecord) map[models.ResourceType]int {
	counts := make(map[models.ResourceType]int, len(models.ResourceTypes))
	for _, t := range models.ResourceTypes {
		counts[t] = 0
	}
	for _, r := range records {
		counts[r.Type]++
	}
	return counts
}
