// Package favorite реализует HTTP-обработчик переключения дизайна в
// избранном. Ответ содержит новое состояние флага.
package favorite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
)

// Handler обрабатывает HTTP-запросы переключения избранного.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// Service описывает интерфейс бизнес-логики избранного.
type Service interface {
	ToggleFavorite(ctx context.Context, title string) (bool, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.favorite"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := chi.URLParam(r, "title")
	favorited, err := h.service.ToggleFavorite(r.Context(), title)
	if errors.Is(err, catalog.ErrDesignNotFound) {
		log.Error("design not found", slog.String("title", title))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("design not found"))
		return
	}
	if err != nil {
		log.Error("failed to toggle favorite", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to toggle favorite"))
		return
	}

	log.Info("favorite toggled", slog.String("title", title), slog.Bool("favorited", favorited))
	render.JSON(w, r, response.OKWithData(map[string]any{"favorited": favorited}))
}
