// Package remove реализует HTTP-обработчик удаления поста из ленты.
// Удалить пост может только его автор; чужой пост — отказ 403.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/community"
)

// Handler обрабатывает HTTP-запросы удаления поста.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис сообщества
}

// Service описывает интерфейс бизнес-логики удаления поста.
type Service interface {
	Remove(ctx context.Context, id string, requester models.User) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.community.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("no user in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("no active session"))
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Remove(r.Context(), id, *user)
	if errors.Is(err, community.ErrNotAuthor) {
		log.Error("post belongs to another author", slog.String("id", id))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("only the author can delete a post"))
		return
	}
	if errors.Is(err, community.ErrPostNotFound) {
		log.Error("post not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("post not found"))
		return
	}
	if err != nil {
		log.Error("failed to remove post", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove post"))
		return
	}

	log.Info("post removed", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
