// Package current реализует HTTP-обработчики транзитных деталей записи:
// чтение оформляемой записи и её сброс.
package current

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/booking"
)

// Service описывает интерфейс бизнес-логики транзитных деталей записи.
type Service interface {
	Current(ctx context.Context) (*models.BookingDetails, error)
	Clear(ctx context.Context)
}

// Handler обрабатывает HTTP-запросы чтения оформляемой записи.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис записи
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.current"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	details, err := h.service.Current(r.Context())
	if errors.Is(err, booking.ErrNoBooking) {
		log.Info("no booking in progress")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("no booking in progress"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{"booking": details}))
}

// ClearHandler обрабатывает HTTP-запросы сброса оформляемой записи.
type ClearHandler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис записи
}

// NewClear создает новый экземпляр ClearHandler.
func NewClear(log *slog.Logger, service Service) *ClearHandler {
	return &ClearHandler{log: log, service: service}
}

func (h *ClearHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.clear"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.service.Clear(r.Context())
	log.Info("booking cleared")
	render.JSON(w, r, response.OK())
}
