// Package artists реализует HTTP-обработчик списка мастеров с
// сортировками: ближайшие, дешевле, по отзывам.
package artists

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Handler обрабатывает HTTP-запросы списка мастеров.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис записи
}

// Service описывает интерфейс бизнес-логики списка мастеров.
type Service interface {
	ListArtists(ctx context.Context, sortKey string) []models.Artist
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.artists"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sortKey := r.URL.Query().Get("sort")
	result := h.service.ListArtists(r.Context(), sortKey)

	log.Info("artists listed", slog.String("sort", sortKey), slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(map[string]any{"artists": result}))
}
