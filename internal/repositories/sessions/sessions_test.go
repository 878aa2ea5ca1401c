package sessions

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemoryStore()
	repo := New(s)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	want := models.Session{Token: "a.b.c", Email: "ada@example.com"}
	require.NoError(t, repo.Put(ctx, want))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &want, got)

	require.NoError(t, repo.Delete(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set(ctx, Key, []byte("a.b.c")))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, records.ErrMalformed)
}
