package community

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monicarachel101026-prog/Nailora/internal/migrations"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/repository"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	store, err := kvstore.NewMemory(0)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(store.DB))
	t.Cleanup(func() {
		_ = store.Close()
	})
	repo := repository.New(store)
	return New(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

var (
	ana  = models.User{ID: "u1", Name: "Ana", Avatar: "https://picsum.photos/100"}
	luna = models.User{ID: "u2", Name: "Luna", Avatar: "https://picsum.photos/101"}
)

func TestAdd_PrependsPost(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	require.NoError(t, repo.SavePosts(ctx, []models.Post{}))

	first, err := svc.Add(ctx, models.DummyPost{Caption: "Nail art pertamaku!"}, ana)
	require.NoError(t, err)
	second, err := svc.Add(ctx, models.DummyPost{Caption: "Warna baru"}, ana)
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Equal(t, "Ana", posts[0].UserName)
}

func TestRemove_AuthorOnly(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	require.NoError(t, repo.SavePosts(ctx, []models.Post{}))

	post, err := svc.Add(ctx, models.DummyPost{Caption: "Milik Ana"}, ana)
	require.NoError(t, err)

	err = svc.Remove(ctx, post.ID, luna)
	assert.ErrorIs(t, err, ErrNotAuthor)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, svc.Remove(ctx, post.ID, ana))

	posts, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	err = svc.Remove(ctx, post.ID, ana)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLike_IncrementsCounter(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	require.NoError(t, repo.SavePosts(ctx, []models.Post{}))

	post, err := svc.Add(ctx, models.DummyPost{Caption: "Suka!"}, ana)
	require.NoError(t, err)

	likes, err := svc.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = svc.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	_, err = svc.Like(ctx, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
