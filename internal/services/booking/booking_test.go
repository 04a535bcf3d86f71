package booking

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

func newTestService() *Service {
	artists := []models.Artist{
		{Name: "Sari", Distance: 2.5, Price: "150K-250K", Reviews: 120},
		{Name: "Dewi", Distance: 1.2, Price: "100K-200K", Reviews: 98},
		{Name: "Maya", Distance: 3.8, Price: "100K-180K", Reviews: 215},
		{Name: "Rina", Distance: 1.2, Price: "200K-350K", Reviews: 47},
	}
	return New(artists, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListArtists_Nearest(t *testing.T) {
	svc := newTestService()

	result := svc.ListArtists(context.Background(), models.SortNearest)
	require.Len(t, result, 4)
	// Устойчивость: Dewi и Rina на одном расстоянии, исходный порядок сохранён.
	assert.Equal(t, "Dewi", result[0].Name)
	assert.Equal(t, "Rina", result[1].Name)
	assert.Equal(t, "Sari", result[2].Name)
	assert.Equal(t, "Maya", result[3].Name)
}

func TestListArtists_CheapestStableAscending(t *testing.T) {
	svc := newTestService()

	result := svc.ListArtists(context.Background(), models.SortCheapest)
	require.Len(t, result, 4)
	// Dewi и Maya делят нижнюю границу 100, исходный порядок сохранён.
	assert.Equal(t, "Dewi", result[0].Name)
	assert.Equal(t, "Maya", result[1].Name)
	assert.Equal(t, "Sari", result[2].Name)
	assert.Equal(t, "Rina", result[3].Name)
}

func TestListArtists_ReviewsDescending(t *testing.T) {
	svc := newTestService()

	result := svc.ListArtists(context.Background(), models.SortReviews)
	require.Len(t, result, 4)
	assert.Equal(t, "Maya", result[0].Name)
	assert.Equal(t, "Sari", result[1].Name)
	assert.Equal(t, "Dewi", result[2].Name)
	assert.Equal(t, "Rina", result[3].Name)
}

func TestListArtists_UnknownKeyKeepsOrder(t *testing.T) {
	svc := newTestService()

	result := svc.ListArtists(context.Background(), "")
	require.Len(t, result, 4)
	assert.Equal(t, "Sari", result[0].Name)
}

func TestStart_SnapshotsArtistPrice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	details, err := svc.Start(ctx, models.DummyBooking{
		ArtistName: "Dewi",
		Service:    "Gel Polish",
		Date:       "2026-09-05",
		Time:       "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "100K-200K", details.ArtistPrice)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dewi", current.ArtistName)

	svc.Clear(ctx)
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNoBooking)
}

func TestStart_UnknownArtist(t *testing.T) {
	svc := newTestService()

	_, err := svc.Start(context.Background(), models.DummyBooking{
		ArtistName: "Ghost",
		Service:    "Gel Polish",
		Date:       "2026-09-05",
		Time:       "14:00",
	})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestPriceLowerBound(t *testing.T) {
	tests := []struct {
		price string
		want  int
	}{
		{price: "100K-200K", want: 100},
		{price: "95K", want: 95},
		{price: "Hubungi kami", want: int(^uint(0) >> 1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, priceLowerBound(tt.price), tt.price)
	}
}
