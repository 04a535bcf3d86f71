// Package otp реализует HTTP-обработчик проверки одноразового кода.
// Подходит любой код из четырёх цифр; после проверки сессия уходит в
// обработку и завершается успехом.
package otp

import (
	"context"
	"encoding/json"
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

// Request — структура входных данных проверки кода.
type Request struct {
	Code string `json:"code"`
}

// Handler обрабатывает HTTP-запросы проверки кода.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис оплаты
}

// Service описывает интерфейс бизнес-логики проверки кода.
type Service interface {
	VerifyOTP(ctx context.Context, id, code string) (*checkout.Checkout, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.otp"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	c, err := h.service.VerifyOTP(r.Context(), id, req.Code)
	if errors.Is(err, checkout.ErrInvalidOTP) {
		log.Error("otp rejected", slog.String("id", id))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("otp must be four digits"))
		return
	}
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
		log.Error("failed to verify otp", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to verify otp"))
		return
	}

	log.Info("otp accepted", slog.String("id", id), slog.String("state", c.State))
	render.JSON(w, r, response.OKWithData(map[string]any{"checkout": c}))
}
