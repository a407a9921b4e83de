package services

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/iris/database"
	"github.com/blogem/iris/models"
	"github.com/blogem/iris/repositories"
	"github.com/blogem/iris/repositories/mocks"
)

// ResourceStoreTestSuite exercises the store against a real SQLite slot table
type ResourceStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	slots repositories.SlotRepository
	store ResourceStore
	now   time.Time
}

// SetupTest opens a fresh database and pins the clock before each test
func (suite *ResourceStoreTestSuite) SetupTest() {
	db, err := database.InitializeDatabase(filepath.Join(suite.T().TempDir(), "store.db"))
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { db.Close() })

	suite.now = time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return suite.now }

	suite.ctx = context.Background()
	suite.slots = repositories.NewSlotRepository(db)
	suite.store = NewResourceStore(suite.slots, nil)
}

// TearDownTest restores the real clock
func (suite *ResourceStoreTestSuite) TearDownTest() {
	timeNow = time.Now
}

func waterInput(value float64, date string) models.ResourceInput {
	return models.ResourceInput{Type: models.ResourceWater, Value: value, Date: date}
}

// TestCreate_EmptyStore covers the single create scenario
func (suite *ResourceStoreTestSuite) TestCreate_EmptyStore() {
	record, err := suite.store.Create(suite.ctx, waterInput(250, "2024-07-20"))
	suite.Require().NoError(err)

	resources := suite.store.List(suite.ctx)
	logs := suite.store.Audit().List(suite.ctx)

	suite.Len(resources, 1)
	suite.Len(logs, 1)
	suite.Equal(models.AuditCreate, logs[0].Action)
	suite.Equal(record.ID, logs[0].ResourceID)
	suite.Equal(models.ResourceWater, logs[0].ResourceType)
	suite.Nil(logs[0].OldValues)
	suite.Equal(record, logs[0].NewValues)
	suite.Equal("CREATE water record", logs[0].Description)
	suite.Equal("2024-07-20T12:00:00.000Z", logs[0].Timestamp)

	suite.Equal("L", record.Unit)
	suite.NotEmpty(record.ID)
	suite.Equal(record.CreatedAt, record.UpdatedAt)
	suite.Equal(*record, resources[0])
}

// TestCreate_AssignsFreshIDAndPrepends checks id freshness and newest-first order
func (suite *ResourceStoreTestSuite) TestCreate_AssignsFreshIDAndPrepends() {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		before := suite.store.List(suite.ctx)
		record, err := suite.store.Create(suite.ctx, models.ResourceInput{Type: models.ResourceGas, Value: float64(i), Date: "2024-07-01"})
		suite.Require().NoError(err)

		suite.False(seen[record.ID], "id %s reused", record.ID)
		seen[record.ID] = true

		after := suite.store.List(suite.ctx)
		suite.Len(after, len(before)+1)
		suite.Equal(record.ID, after[0].ID)
		suite.Equal("m³", after[0].Unit)
	}
}

// TestCreateBatch checks length growth, input order and one audit entry per element
func (suite *ResourceStoreTestSuite) TestCreateBatch() {
	_, err := suite.store.Create(suite.ctx, waterInput(1, "2024-06-01"))
	suite.Require().NoError(err)

	inputs := DemoRecords()
	created, err := suite.store.CreateBatch(suite.ctx, inputs)
	suite.Require().NoError(err)
	suite.Len(created, len(inputs))

	resources := suite.store.List(suite.ctx)
	suite.Len(resources, len(inputs)+1)

	ids := map[string]bool{}
	for i, input := range inputs {
		suite.Equal(input.Type, resources[i].Type)
		suite.Equal(input.Value, resources[i].Value)
		suite.Equal(input.Type.Unit(), resources[i].Unit)
		suite.Equal(created[i].ID, resources[i].ID)
		suite.Equal("2024-07-20T12:00:00.000Z", resources[i].CreatedAt)
		ids[created[i].ID] = true
	}
	suite.Len(ids, len(inputs), "batch ids must be unique")

	// Ledger is newest first, so the batch appears reversed at its head
	logs := suite.store.Audit().List(suite.ctx)
	suite.Len(logs, len(inputs)+1)
	for i := range inputs {
		entry := logs[len(inputs)-1-i]
		suite.Equal(models.AuditCreate, entry.Action)
		suite.Equal(created[i].ID, entry.ResourceID)
	}
}

// TestCreateBatch_Empty does nothing
func (suite *ResourceStoreTestSuite) TestCreateBatch_Empty() {
	created, err := suite.store.CreateBatch(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(created)
	suite.Equal(0, suite.store.Audit().Count(suite.ctx))
}

// TestCreateBatch_RejectsWholeBatch leaves the store untouched when one element is invalid
func (suite *ResourceStoreTestSuite) TestCreateBatch_RejectsWholeBatch() {
	_, err := suite.store.CreateBatch(suite.ctx, []models.ResourceInput{
		waterInput(1, "2024-07-01"),
		{Type: "oil", Value: 1, Date: "2024-07-01"},
	})
	suite.ErrorIs(err, ErrInvalidResource)
	suite.Empty(suite.store.List(suite.ctx))
	suite.Equal(0, suite.store.Audit().Count(suite.ctx))

	_, err = suite.store.Create(suite.ctx, waterInput(-1, "2024-07-01"))
	suite.ErrorIs(err, ErrInvalidResource)
}

// TestNonFiniteValuesRejected keeps NaN and Inf out of memory and storage
func (suite *ResourceStoreTestSuite) TestNonFiniteValuesRejected() {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := suite.store.Create(suite.ctx, waterInput(value, "2024-07-01"))
		suite.ErrorIs(err, ErrInvalidResource)

		_, err = suite.store.CreateBatch(suite.ctx, []models.ResourceInput{waterInput(1, "2024-07-01"), waterInput(value, "2024-07-01")})
		suite.ErrorIs(err, ErrInvalidResource)
	}
	suite.Empty(suite.store.List(suite.ctx))
	suite.Equal(0, suite.store.Audit().Count(suite.ctx))

	record, err := suite.store.Create(suite.ctx, waterInput(5, "2024-07-01"))
	suite.Require().NoError(err)

	nan := math.NaN()
	_, err = suite.store.Update(suite.ctx, record.ID, models.ResourcePatch{Value: &nan})
	suite.ErrorIs(err, ErrInvalidResource)

	// Later writes still persist and survive a reload
	_, err = suite.store.Create(suite.ctx, waterInput(7, "2024-07-02"))
	suite.Require().NoError(err)

	reloaded := NewResourceStore(suite.slots, nil)
	resources := reloaded.List(suite.ctx)
	suite.Require().Len(resources, 2)
	suite.Equal(5.0, resources[1].Value)
	suite.Equal(2, reloaded.Audit().Count(suite.ctx))
}

// TestUpdate covers the update scenario and leaves other records alone
func (suite *ResourceStoreTestSuite) TestUpdate() {
	other, err := suite.store.Create(suite.ctx, models.ResourceInput{Type: models.ResourceEnergy, Value: 15.5, Date: "2024-07-19"})
	suite.Require().NoError(err)
	record, err := suite.store.Create(suite.ctx, waterInput(250, "2024-07-20"))
	suite.Require().NoError(err)

	suite.now = suite.now.Add(time.Hour)
	value := 300.0
	updated, err := suite.store.Update(suite.ctx, record.ID, models.ResourcePatch{Value: &value})
	suite.Require().NoError(err)

	suite.Equal(300.0, updated.Value)
	suite.Equal(record.ID, updated.ID)
	suite.Equal(record.CreatedAt, updated.CreatedAt)
	suite.Equal("2024-07-20T13:00:00.000Z", updated.UpdatedAt)
	suite.Equal(record.Date, updated.Date)

	resources := suite.store.List(suite.ctx)
	suite.Len(resources, 2)
	suite.Equal(*updated, resources[0])
	suite.Equal(*other, resources[1])

	logs := suite.store.Audit().List(suite.ctx)
	suite.Len(logs, 3)
	suite.Equal(models.AuditUpdate, logs[0].Action)
	suite.Require().NotNil(logs[0].OldValues)
	suite.Require().NotNil(logs[0].NewValues)
	suite.Equal(250.0, logs[0].OldValues.Value)
	suite.Equal(300.0, logs[0].NewValues.Value)
}

// TestUpdate_NotFound signals absence without touching the ledger
func (suite *ResourceStoreTestSuite) TestUpdate_NotFound() {
	value := 1.0
	updated, err := suite.store.Update(suite.ctx, "missing", models.ResourcePatch{Value: &value})
	suite.Nil(updated)
	suite.ErrorIs(err, ErrResourceNotFound)
	suite.Equal(0, suite.store.Audit().Count(suite.ctx))
}

// TestDelete removes exactly one record and records its last state
func (suite *ResourceStoreTestSuite) TestDelete() {
	keep, err := suite.store.Create(suite.ctx, waterInput(1, "2024-07-01"))
	suite.Require().NoError(err)
	target, err := suite.store.Create(suite.ctx, waterInput(2, "2024-07-02"))
	suite.Require().NoError(err)

	ok, err := suite.store.Delete(suite.ctx, target.ID)
	suite.Require().NoError(err)
	suite.True(ok)

	resources := suite.store.List(suite.ctx)
	suite.Equal([]models.ResourceRecord{*keep}, resources)

	logs := suite.store.Audit().List(suite.ctx)
	suite.Len(logs, 3)
	suite.Equal(models.AuditDelete, logs[0].Action)
	suite.Equal(target, logs[0].OldValues)
	suite.Nil(logs[0].NewValues)

	ok, err = suite.store.Delete(suite.ctx, target.ID)
	suite.NoError(err)
	suite.False(ok)
	suite.Len(suite.store.Audit().List(suite.ctx), 3)
}

// TestQueryByDateRange includes only dates within the inclusive range
func (suite *ResourceStoreTestSuite) TestQueryByDateRange() {
	for _, date := range []string{"2024-06-30", "2024-07-15", "2024-08-01"} {
		_, err := suite.store.Create(suite.ctx, waterInput(1, date))
		suite.Require().NoError(err)
	}

	result := suite.store.QueryByDateRange(suite.ctx, "2024-07-01", "2024-07-31")
	suite.Len(result, 1)
	suite.Equal("2024-07-15", result[0].Date)

	suite.Len(suite.store.QueryByDateRange(suite.ctx, "2024-06-30", "2024-08-01"), 3)
}

// TestQueryByType is stable and ordered
func (suite *ResourceStoreTestSuite) TestQueryByType() {
	_, err := suite.store.CreateBatch(suite.ctx, DemoRecords())
	suite.Require().NoError(err)

	first := suite.store.QueryByType(suite.ctx, models.ResourceWater)
	second := suite.store.QueryByType(suite.ctx, models.ResourceWater)
	suite.Equal(first, second)
	suite.Len(first, 2)
	suite.Equal(250.0, first[0].Value)
	suite.Equal(280.0, first[1].Value)

	suite.Empty(suite.store.QueryByType(suite.ctx, "oil"))
}

// TestReloadRoundTrip rebuilds the store from storage
func (suite *ResourceStoreTestSuite) TestReloadRoundTrip() {
	_, err := suite.store.CreateBatch(suite.ctx, DemoRecords())
	suite.Require().NoError(err)
	resources := suite.store.List(suite.ctx)
	_, err = suite.store.Delete(suite.ctx, resources[3].ID)
	suite.Require().NoError(err)

	before := suite.store.Snapshot(suite.ctx)
	reloaded := NewResourceStore(suite.slots, nil)
	suite.Equal(before, reloaded.Snapshot(suite.ctx))
}

// TestGet returns copies
func (suite *ResourceStoreTestSuite) TestGet() {
	record, err := suite.store.Create(suite.ctx, waterInput(5, "2024-07-01"))
	suite.Require().NoError(err)

	found, err := suite.store.Get(suite.ctx, record.ID)
	suite.Require().NoError(err)
	found.Value = 999

	again, err := suite.store.Get(suite.ctx, record.ID)
	suite.Require().NoError(err)
	suite.Equal(5.0, again.Value)

	_, err = suite.store.Get(suite.ctx, "missing")
	suite.ErrorIs(err, ErrResourceNotFound)
}

// TestSubscribe delivers a snapshot per committed mutation
func (suite *ResourceStoreTestSuite) TestSubscribe() {
	var received []Snapshot
	unsubscribe := suite.store.Subscribe(func(s Snapshot) {
		received = append(received, s)
	})

	record, err := suite.store.Create(suite.ctx, waterInput(1, "2024-07-01"))
	suite.Require().NoError(err)
	_, err = suite.store.Delete(suite.ctx, record.ID)
	suite.Require().NoError(err)

	suite.Require().Len(received, 2)
	suite.Len(received[0].Resources, 1)
	suite.Len(received[0].AuditLogs, 1)
	suite.Empty(received[1].Resources)
	suite.Len(received[1].AuditLogs, 2)

	unsubscribe()
	_, err = suite.store.Create(suite.ctx, waterInput(1, "2024-07-01"))
	suite.Require().NoError(err)
	suite.Len(received, 2)

	// Failed lookups are not mutations
	_, _ = suite.store.Delete(suite.ctx, "missing")
	suite.Len(received, 2)
}

// TestConcurrentCreates keeps one audit entry per record
func (suite *ResourceStoreTestSuite) TestConcurrentCreates() {
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.store.Create(suite.ctx, waterInput(1, "2024-07-01"))
			assert.NoError(suite.T(), err)
		}()
	}
	wg.Wait()

	snapshot := suite.store.Snapshot(suite.ctx)
	suite.Len(snapshot.Resources, 25)
	suite.Len(snapshot.AuditLogs, 25)
}

func TestResourceStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceStoreTestSuite))
}

func TestResourceStore_PersistenceFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	slots := mocks.NewMockSlotRepository(t)
	slots.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	slots.EXPECT().Put(mock.Anything, repositories.ResourcesKey, mock.Anything).Return(errors.New("quota exceeded"))
	slots.EXPECT().Put(mock.Anything, repositories.AuditLogsKey, mock.Anything).Return(nil)

	store := NewResourceStore(slots, nil)
	record, err := store.Create(ctx, waterInput(250, "2024-07-20"))

	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrPersistence)
	require.NotNil(t, record)
	assert.Len(t, store.List(ctx), 1)
	assert.Equal(t, 1, store.Audit().Count(ctx))
}
