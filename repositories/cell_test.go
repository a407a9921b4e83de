package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/blogem/iris/repositories/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

func TestCell_RoundTripAcrossReload(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(setupTestDB(t))

	written := []sample{{ID: "b", Value: 2.5}, {ID: "a", Value: 1}}
	cell := NewCell(repo, ResourcesKey, []sample{}, nil)
	require.NoError(t, cell.Write(ctx, written))
	assert.Equal(t, written, cell.Read(ctx))

	// A fresh cell simulates a reload
	reloaded := NewCell(repo, ResourcesKey, []sample{}, nil)
	assert.Equal(t, written, reloaded.Read(ctx))
}

func TestCell_AbsentSlotReturnsDefault(t *testing.T) {
	repo := NewSlotRepository(setupTestDB(t))

	cell := NewCell(repo, AuditLogsKey, []sample{}, nil)
	assert.Equal(t, []sample{}, cell.Read(context.Background()))
}

func TestCell_CorruptSlotReturnsDefault(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(setupTestDB(t))
	require.NoError(t, repo.Put(ctx, ResourcesKey, []byte(`{not json`)))

	cell := NewCell(repo, ResourcesKey, []sample{}, nil)
	assert.Equal(t, []sample{}, cell.Read(ctx))

	// Writing over corrupt data repairs the slot
	require.NoError(t, cell.Write(ctx, []sample{{ID: "x"}}))
	reloaded := NewCell(repo, ResourcesKey, []sample{}, nil)
	assert.Equal(t, []sample{{ID: "x"}}, reloaded.Read(ctx))
}

func TestCell_ReadsStorageOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, TokenKey).Return([]byte(`"mock_token"`), true, nil).Once()

	cell := NewCell(repo, TokenKey, "", nil)
	assert.Equal(t, "mock_token", cell.Read(ctx))
	assert.Equal(t, "mock_token", cell.Read(ctx))
}

func TestCell_StorageFailureKeepsInMemoryValue(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockSlotRepository(t)
	repo.EXPECT().Put(mock.Anything, ResourcesKey, mock.Anything).Return(errors.New("disk full"))

	cell := NewCell(repo, ResourcesKey, []sample{}, nil)
	err := cell.Write(ctx, []sample{{ID: "1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, []sample{{ID: "1"}}, cell.Read(ctx))
}

func TestCell_ReadFailureReturnsDefault(t *testing.T) {
	repo := mocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, ResourcesKey).Return(nil, false, errors.New("locked"))

	cell := NewCell(repo, ResourcesKey, []sample{}, nil)
	assert.Equal(t, []sample{}, cell.Read(context.Background()))
}

func TestCell_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(setupTestDB(t))

	cell := NewCell(repo, TokenKey, "", nil)
	require.NoError(t, cell.Write(ctx, "mock_token"))
	require.NoError(t, cell.Clear(ctx))
	assert.Equal(t, "", cell.Read(ctx))

	_, ok, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
