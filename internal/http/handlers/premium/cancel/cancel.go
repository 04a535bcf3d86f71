// Package cancel реализует HTTP-обработчик отмены подписки. Подписка
// помечается отменённой, автопродление выключается, доступ к premium
// сохраняется до следующей даты списания.
package cancel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/session"
)

// Handler обрабатывает HTTP-запросы отмены подписки.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сессионный сервис
}

// Service описывает интерфейс бизнес-логики отмены подписки.
type Service interface {
	CancelSubscription(ctx context.Context) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.premium.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, err := h.service.CancelSubscription(r.Context())
	if errors.Is(err, session.ErrNotPremium) {
		log.Error("premium required")
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("premium subscription required"))
		return
	}
	if err != nil {
		log.Error("failed to cancel subscription", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to cancel subscription"))
		return
	}

	log.Info("subscription canceled")
	render.JSON(w, r, response.OKWithData(map[string]any{"user": user}))
}
