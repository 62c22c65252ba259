package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoomTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newZoomTestRepo(t *testing.T) (context.Context, repository.ZoomRepository) {
	t.Helper()
	ctx := zoomTestCtx()
	dbPath := filepath.Join(t.TempDir(), "dimmer.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, sqlite.NewZoomRepository(db)
}

func TestZoomRepository_SetAndGet(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	level := entity.NewZoomLevel("github.com", 1.5)
	require.NoError(t, repo.Set(ctx, level))

	found, err := repo.Get(ctx, "github.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "github.com", found.Domain)
	assert.InDelta(t, 1.5, found.ZoomFactor, 1e-9)
}

func TestZoomRepository_Get_Missing(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	found, err := repo.Get(ctx, "never-visited.example")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestZoomRepository_Set_Upsert(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("example.com", 1.2)))
	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("example.com", 0.8)))

	found, err := repo.Get(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.InDelta(t, 0.8, found.ZoomFactor, 1e-9)

	// Upsert must not create a second row for the same domain.
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestZoomRepository_Set_PersistsTimestamp(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("example.com", 1.1)))

	found, err := repo.Get(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	timeDiff := time.Since(found.UpdatedAt)
	assert.Less(t, timeDiff, time.Minute, "UpdatedAt should be recent, got %v ago", timeDiff)
}

func TestZoomRepository_Delete(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("example.com", 2.0)))
	require.NoError(t, repo.Delete(ctx, "example.com"))

	found, err := repo.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestZoomRepository_Delete_Missing(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	// Deleting a domain that was never stored is not an error.
	require.NoError(t, repo.Delete(ctx, "never-visited.example"))
}

func TestZoomRepository_GetAll(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("bbb.example", 1.3)))
	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("aaa.example", 0.9)))
	require.NoError(t, repo.Set(ctx, entity.NewZoomLevel("ccc.example", 1.0)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Sorted by domain for stable listing output.
	assert.Equal(t, "aaa.example", all[0].Domain)
	assert.Equal(t, "bbb.example", all[1].Domain)
	assert.Equal(t, "ccc.example", all[2].Domain)
}

func TestZoomRepository_GetAll_Empty(t *testing.T) {
	ctx, repo := newZoomTestRepo(t)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
