// Package begin реализует HTTP-обработчик открытия сессии оплаты.
// Оплата записи снимает транзитные детали оформляемой записи; покупка
// подписки несёт план и способ оплаты.
package begin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/booking"
	"github.com/monicarachel101026-prog/Nailora/internal/services/checkout"
)

// Request — структура входных данных открытия сессии оплаты.
type Request struct {
	Kind   string `json:"kind" validate:"required,oneof=booking subscription"`
	Plan   string `json:"plan,omitempty"`
	Method string `json:"method,omitempty"`
}

// Handler обрабатывает HTTP-запросы открытия сессии оплаты.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис оплаты
	bookings BookingService      // Сервис записи для снятия деталей
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики открытия оплаты.
type Service interface {
	BeginBooking(ctx context.Context, details models.BookingDetails) *checkout.Checkout
	BeginSubscription(ctx context.Context, plan, method string) *checkout.Checkout
}

// BookingService описывает интерфейс чтения оформляемой записи.
type BookingService interface {
	Current(ctx context.Context) (*models.BookingDetails, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, bookings BookingService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		bookings: bookings,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.begin"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var c *checkout.Checkout
	switch req.Kind {
	case checkout.KindBooking:
		details, err := h.bookings.Current(r.Context())
		if errors.Is(err, booking.ErrNoBooking) {
			log.Error("no booking to pay for")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("no booking in progress"))
			return
		}
		if err != nil {
			log.Error("failed to read booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read booking"))
			return
		}
		c = h.service.BeginBooking(r.Context(), *details)
	case checkout.KindSubscription:
		if req.Plan == "" {
			log.Error("subscription checkout without a plan")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("field Plan is a required field"))
			return
		}
		c = h.service.BeginSubscription(r.Context(), req.Plan, req.Method)
	}

	log.Info("checkout started", slog.String("id", c.ID), slog.String("kind", c.Kind))
	render.JSON(w, r, response.OKWithData(map[string]any{"checkout": c}))
}
