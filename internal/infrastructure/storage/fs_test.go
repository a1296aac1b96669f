package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/doku/internal/domain"
)

func TestFS_RoundTrip(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{Name: "demo", Givens: testGivens}
	require.NoError(t, st.Save(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := st.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Givens, got.Givens)
	assert.Equal(t, p.Name, got.Name)
}

func TestFS_LoadMissing(t *testing.T) {
	st := NewFS(t.TempDir())
	_, err := st.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFS_ListMissingDirIsEmpty(t *testing.T) {
	st := NewFS(t.TempDir() + "/does-not-exist")
	metas, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestFS_ListOrdered(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	for i, name := range []string{"b", "a"} {
		require.NoError(t, st.Save(ctx, &domain.Puzzle{Name: name, Givens: testGivens, CreatedAt: int64(10 - i)}))
	}
	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "a", metas[0].Name, "oldest first")
}
