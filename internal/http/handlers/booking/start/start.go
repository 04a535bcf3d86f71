// Package start реализует HTTP-обработчик оформления записи к мастеру.
// Детали записи транзитны: живут до оплаты или отмены.
package start

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
)

// Handler обрабатывает HTTP-запросы оформления записи.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис записи
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики оформления записи.
type Service interface {
	Start(ctx context.Context, req models.DummyBooking) (*models.BookingDetails, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.start"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBooking
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

	details, err := h.service.Start(r.Context(), req)
	if errors.Is(err, booking.ErrArtistNotFound) {
		log.Error("artist not found", slog.String("artist", req.ArtistName))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("artist not found"))
		return
	}
	if err != nil {
		log.Error("failed to start booking", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to start booking"))
		return
	}

	log.Info("booking started", slog.String("artist", details.ArtistName))
	render.JSON(w, r, response.OKWithData(map[string]any{"booking": details}))
}
