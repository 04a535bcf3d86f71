// Package remove реализует HTTP-обработчик удаления дизайна по названию.
// Удаление каскадно вычищает избранное; повторное удаление — no-op.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы удаления дизайна.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// Service описывает интерфейс бизнес-логики удаления дизайна.
type Service interface {
	Remove(ctx context.Context, title string) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := chi.URLParam(r, "title")
	if err := h.service.Remove(r.Context(), title); err != nil {
		log.Error("failed to remove design", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove design"))
		return
	}

	log.Info("design removed", slog.String("title", title))
	render.JSON(w, r, response.OK())
}
