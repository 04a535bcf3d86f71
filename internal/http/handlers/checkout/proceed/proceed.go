// Package proceed реализует HTTP-обработчик перехода сессии оплаты к
// вводу одноразового кода.
package proceed

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

// Handler обрабатывает HTTP-запросы перехода к вводу кода.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис оплаты
}

// Service описывает интерфейс бизнес-логики перехода.
type Service interface {
	Proceed(ctx context.Context, id string) (*checkout.Checkout, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.proceed"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	c, err := h.service.Proceed(r.Context(), id)
	if errors.Is(err, checkout.ErrCheckoutNotFound) {
		log.Error("checkout not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("checkout not found"))
		return
	}
	if errors.Is(err, checkout.ErrInvalidTransition) {
		log.Error("invalid checkout transition", slog.String("id", id))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("invalid checkout transition"))
		return
	}
	if err != nil {
		log.Error("failed to proceed checkout", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to proceed checkout"))
		return
	}

	log.Info("checkout proceeded", slog.String("id", id), slog.String("state", c.State))
	render.JSON(w, r, response.OKWithData(map[string]any{"checkout": c}))
}
