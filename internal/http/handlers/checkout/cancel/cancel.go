// Package cancel реализует HTTP-обработчик отмены оплаты. Отмена
// разрешена только с шага ввода кода и возвращает сессию к checkout.
package cancel

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
	"github.com/monicarachel101026-prog/Nailora/internal/services/checkout"
)

// Handler обрабатывает HTTP-запросы отмены оплаты.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис оплаты
}

// Service описывает интерфейс бизнес-логики отмены оплаты.
type Service interface {
	Cancel(ctx context.Context, id string) (*checkout.Checkout, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	c, err := h.service.Cancel(r.Context(), id)
	if errors.Is(err, checkout.ErrCheckoutNotFound) {
		log.Error("checkout not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("checkout not found"))
		return
	}
	if errors.Is(err, checkout.ErrInvalidTransition) {
		log.Error("cancel is only allowed from the otp step", slog.String("id", id))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("cancel is only allowed from the otp step"))
		return
	}
	if err != nil {
		log.Error("failed to cancel checkout", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to cancel checkout"))
		return
	}

	log.Info("checkout canceled", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"checkout": c}))
}
