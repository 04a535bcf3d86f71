// Package logout реализует HTTP-обработчик выхода из учётной записи.
// Сессия удаляется из обоих ярусов хранилища.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сессионный сервис
}

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.Logout(r.Context()); err != nil {
		log.Error("failed to logout", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.OK())
}
