package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/blogem/iris/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSlotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(setupTestDB(t))

	// Absent slot
	payload, ok, err := repo.Get(ctx, ResourcesKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)

	// Put then Get
	require.NoError(t, repo.Put(ctx, ResourcesKey, []byte(`[{"id":"1"}]`)))
	payload, ok, err = repo.Get(ctx, ResourcesKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(payload))

	// Put overwrites
	require.NoError(t, repo.Put(ctx, ResourcesKey, []byte(`[]`)))
	payload, _, err = repo.Get(ctx, ResourcesKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))

	require.NoError(t, repo.Put(ctx, TokenKey, []byte(`"mock_token"`)))
	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{ResourcesKey, TokenKey}, keys)

	// Delete, twice
	require.NoError(t, repo.Delete(ctx, TokenKey))
	require.NoError(t, repo.Delete(ctx, TokenKey))
	_, ok, err = repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
