package catalog

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

func seedDesigns(t *testing.T, repo *repository.Repository, designs []models.Design) {
	t.Helper()
	require.NoError(t, repo.SaveDesigns(context.Background(), designs))
}

func TestList_AllSentinelReturnsActiveDesigns(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Pink", Style: "Cute", Length: "Long", IsArchived: true},
		{Title: "C", DominantColor: "Nude", Style: "Simple", Length: "Medium"},
	})

	// Все измерения на "Semua": возвращаются все неархивные дизайны.
	result, err := svc.List(ctx, models.DesignFilter{
		Color:  models.FilterAll,
		Style:  models.FilterAll,
		Length: models.FilterAll,
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Title)
	assert.Equal(t, "C", result[1].Title)
}

func TestList_DimensionsCombineWithAnd(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Red", Style: "Cute", Length: "Short"},
		{Title: "C", DominantColor: "Red", Style: "Bold", Length: "Long"},
	})

	result, err := svc.List(ctx, models.DesignFilter{Color: "Red", Style: "Bold", Length: "Short"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].Title)
}

func TestList_ArchivedView(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Red", Style: "Bold", Length: "Short", IsArchived: true},
	})

	result, err := svc.List(ctx, models.DesignFilter{Archived: true})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "B", result[0].Title)
}

func TestAdd_PrependsAndRejectsDuplicateTitle(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "Existing", DominantColor: "Red", Style: "Bold", Length: "Short"},
	})

	added, err := svc.Add(ctx, models.DummyDesign{
		ImgSrc:        "img.png",
		Title:         "Fresh",
		DominantColor: "Pink",
		Style:         "Cute",
		Length:        "Long",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", added.Title)

	designs, err := repo.LoadDesigns(ctx)
	require.NoError(t, err)
	require.Len(t, designs, 2)
	assert.Equal(t, "Fresh", designs[0].Title)

	_, err = svc.Add(ctx, models.DummyDesign{
		ImgSrc:        "img.png",
		Title:         "Existing",
		DominantColor: "Red",
		Style:         "Bold",
		Length:        "Short",
	})
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	designs, err = repo.LoadDesigns(ctx)
	require.NoError(t, err)
	assert.Len(t, designs, 2)
}

func TestRemove_CascadesFavoritesAndIsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Pink", Style: "Cute", Length: "Long"},
	})
	require.NoError(t, repo.SaveFavorites(ctx, []string{"A", "B"}))

	require.NoError(t, svc.Remove(ctx, "A"))

	designs, err := repo.LoadDesigns(ctx)
	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Equal(t, "B", designs[0].Title)

	favorites, err := repo.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, favorites)

	// Повторное удаление того же названия — no-op без ошибки.
	require.NoError(t, svc.Remove(ctx, "A"))
	designs, err = repo.LoadDesigns(ctx)
	require.NoError(t, err)
	assert.Len(t, designs, 1)
}

func TestBulkOps_RequirePremium(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
	})

	err := svc.BulkRemove(ctx, []string{"A"}, false)
	assert.ErrorIs(t, err, ErrPremiumRequired)

	err = svc.BulkArchiveToggle(ctx, []string{"A"}, false)
	assert.ErrorIs(t, err, ErrPremiumRequired)

	designs, err := repo.LoadDesigns(ctx)
	require.NoError(t, err)
	assert.Len(t, designs, 1)
	assert.False(t, designs[0].IsArchived)
}

func TestBulkArchiveToggle_FlipsFlag(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Pink", Style: "Cute", Length: "Long", IsArchived: true},
	})

	require.NoError(t, svc.BulkArchiveToggle(ctx, []string{"A", "B"}, true))

	designs, err := repo.LoadDesigns(ctx)
	require.NoError(t, err)
	assert.True(t, designs[0].IsArchived)
	assert.False(t, designs[1].IsArchived)
}

func TestGet_PremiumGate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "Velvet", DominantColor: "Red", Style: "Elegant", Length: "Long", IsPremium: true},
	})

	_, err := svc.Get(ctx, "Velvet", false)
	assert.ErrorIs(t, err, ErrPremiumRequired)

	design, err := svc.Get(ctx, "Velvet", true)
	require.NoError(t, err)
	assert.Equal(t, "Velvet", design.Title)

	_, err = svc.Get(ctx, "Missing", true)
	assert.ErrorIs(t, err, ErrDesignNotFound)
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
	})

	favorited, err := svc.ToggleFavorite(ctx, "A")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorites, err := svc.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "A", favorites[0].Title)

	favorited, err = svc.ToggleFavorite(ctx, "A")
	require.NoError(t, err)
	assert.False(t, favorited)

	favorites, err = svc.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = svc.ToggleFavorite(ctx, "Missing")
	assert.ErrorIs(t, err, ErrDesignNotFound)
}

func TestNewDesignCount_Badge(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedDesigns(t, repo, []models.Design{
		{Title: "A", DominantColor: "Red", Style: "Bold", Length: "Short"},
		{Title: "B", DominantColor: "Pink", Style: "Cute", Length: "Long"},
	})

	count, err := svc.NewDesignCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkDesignsSeen(ctx))

	count, err = svc.NewDesignCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
