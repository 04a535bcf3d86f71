// Package like реализует HTTP-обработчик лайка туториала.
// Ответ содержит новое значение счётчика.
package like

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
	"github.com/monicarachel101026-prog/Nailora/internal/services/tutorial"
)

// Handler обрабатывает HTTP-запросы лайка туториала.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис туториалов
}

// Service описывает интерфейс бизнес-логики лайков.
type Service interface {
	Like(ctx context.Context, id string) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tutorial.like"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	likes, err := h.service.Like(r.Context(), id)
	if errors.Is(err, tutorial.ErrTutorialNotFound) {
		log.Error("tutorial not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("tutorial not found"))
		return
	}
	if err != nil {
		log.Error("failed to like tutorial", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to like tutorial"))
		return
	}

	log.Info("tutorial liked", slog.String("id", id), slog.Int("likes", likes))
	render.JSON(w, r, response.OKWithData(map[string]any{"likes": likes}))
}
