// Package favorites реализует HTTP-обработчик списка избранных дизайнов
// в порядке добавления в избранное.
package favorites

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Handler обрабатывает HTTP-запросы списка избранного.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// Service описывает интерфейс бизнес-логики списка избранного.
type Service interface {
	Favorites(ctx context.Context) ([]models.Design, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.favorites"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	designs, err := h.service.Favorites(r.Context())
	if err != nil {
		log.Error("failed to list favorites", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list favorites"))
		return
	}

	log.Info("favorites listed", slog.Int("count", len(designs)))
	render.JSON(w, r, response.OKWithData(map[string]any{"designs": designs}))
}
