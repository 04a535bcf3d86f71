// Package like реализует HTTP-обработчик лайка поста в ленте сообщества.
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
	"github.com/monicarachel101026-prog/Nailora/internal/services/community"
)

// Handler обрабатывает HTTP-запросы лайка поста.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис сообщества
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
	const op = "handlers.community.like"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	likes, err := h.service.Like(r.Context(), id)
	if errors.Is(err, community.ErrPostNotFound) {
		log.Error("post not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("post not found"))
		return
	}
	if err != nil {
		log.Error("failed to like post", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to like post"))
		return
	}

	log.Info("post liked", slog.String("id", id), slog.Int("likes", likes))
	render.JSON(w, r, response.OKWithData(map[string]any{"likes": likes}))
}
