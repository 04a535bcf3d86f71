// Package status реализует HTTP-обработчик состояния сессии оплаты.
// Экран обработки опрашивает его до перехода в success.
package status

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

// Handler обрабатывает HTTP-запросы состояния оплаты.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис оплаты
}

// Service описывает интерфейс бизнес-логики состояния оплаты.
type Service interface {
	Status(ctx context.Context, id string) (*checkout.Checkout, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	c, err := h.service.Status(r.Context(), id)
	if errors.Is(err, checkout.ErrCheckoutNotFound) {
		log.Error("checkout not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("checkout not found"))
		return
	}
	if err != nil {
		log.Error("failed to read checkout status", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read checkout status"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{"checkout": c}))
}
