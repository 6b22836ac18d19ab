package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/adapters/bolt"
	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/adapters/sqlite"
	"github.com/aretw0/jot/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("AutoInit=true Creates Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "store")

		store, err := platform.Init(dir, platform.WithAutoInit(true))
		require.NoError(t, err)

		fsRepo, ok := store.(*fs.Repository)
		require.True(t, ok, "expected fs repository")
		assert.Equal(t, dir, fsRepo.Path)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Fails if Directory Missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		_, err := platform.Init(dir, platform.WithMustExist(true))
		assert.Error(t, err)
	})

	t.Run("Backends", func(t *testing.T) {
		dir := t.TempDir()

		store, err := platform.Init(dir, platform.WithBackend(platform.BackendBolt))
		require.NoError(t, err)
		assert.IsType(t, &bolt.Repository{}, store)
		require.NoError(t, store.(*bolt.Repository).Close())

		store, err = platform.Init(dir, platform.WithBackend(platform.BackendSQLite))
		require.NoError(t, err)
		assert.IsType(t, &sqlite.Repository{}, store)
		require.NoError(t, store.(*sqlite.Repository).Close())
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		_, err := platform.Init(t.TempDir(), platform.WithBackend("s3"))
		assert.ErrorIs(t, err, platform.ErrUnknownBackend)
	})

	t.Run("Injected Store", func(t *testing.T) {
		injected := memory.New(nil)
		store, err := platform.Init("ignored", platform.WithStore(injected))
		require.NoError(t, err)
		assert.Same(t, injected, store)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "work.json"),
		[]byte(`[{"id":1,"title":"standup","content":""}]`), 0644))

	coll, err := platform.New(ctx, dir, platform.WithSlot("work"))
	require.NoError(t, err)
	defer coll.Close()

	assert.Equal(t, core.PhaseLoaded, coll.Phase())
	assert.Equal(t, 1, coll.Len())

	_, err = coll.Add(ctx, "retro", "")
	require.NoError(t, err)
	assert.Equal(t, 2, coll.Len())
}

func TestNew_ReadOnly(t *testing.T) {
	ctx := context.Background()
	coll, err := platform.New(ctx, t.TempDir(), platform.WithReadOnly(true))
	require.NoError(t, err)

	_, err = coll.Add(ctx, "nope", "")
	assert.ErrorIs(t, err, core.ErrReadOnly)
	assert.Equal(t, 0, coll.Len())
}
