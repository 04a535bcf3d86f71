// Package list реализует HTTP-обработчик ленты сообщества.
package list

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

// Handler обрабатывает HTTP-запросы ленты сообщества.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис сообщества
}

// Service описывает интерфейс бизнес-логики ленты.
type Service interface {
	List(ctx context.Context) ([]models.Post, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.community.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	posts, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list posts"))
		return
	}

	log.Info("posts listed", slog.Int("count", len(posts)))
	render.JSON(w, r, response.OKWithData(map[string]any{"posts": posts}))
}
