package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/bolt"
	"github.com/aretw0/jot/pkg/core"
)

func openRepo(t *testing.T, path string) *bolt.Repository {
	t.Helper()
	repo, err := bolt.Open(bolt.Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "jot.db")
	repo := openRepo(t, path)

	notes, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	in := []core.Note{{ID: 2, Title: "b", Content: "x"}, {ID: 1, Title: "a", Content: ""}}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, repo.Close())
	reopened := openRepo(t, path)
	out, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRepository_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jot.db")

	work, err := bolt.Open(bolt.Config{Path: path, Slot: "work"})
	require.NoError(t, err)
	defer work.Close()

	require.NoError(t, work.Save(ctx, []core.Note{{ID: 1, Title: "w"}}))
	require.NoError(t, work.Close())

	home, err := bolt.Open(bolt.Config{Path: path, Slot: "home"})
	require.NoError(t, err)
	defer home.Close()

	notes, err := home.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestRepository_WithCollection(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "jot.db"))

	c := core.NewCollection(repo)
	require.NoError(t, c.Load(ctx))
	_, err := c.Add(ctx, "Milk", "2%")
	require.NoError(t, err)

	fresh := core.NewCollection(repo)
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, c.Snapshot(), fresh.Snapshot())
	assert.Equal(t, "bolt", repo.ComponentType())
}
