// Package notifications реализует HTTP-обработчики флага уведомлений:
// чтение и переключение.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
)

// Service описывает интерфейс хранения флага уведомлений.
type Service interface {
	NotificationsEnabled(ctx context.Context) (bool, error)
	SetNotificationsEnabled(ctx context.Context, enabled bool) error
}

// Handler обрабатывает HTTP-запросы чтения флага уведомлений.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Хранилище настроек
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.notifications"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	enabled, err := h.service.NotificationsEnabled(r.Context())
	if err != nil {
		log.Error("failed to read notifications flag", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read notifications flag"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{"enabled": enabled}))
}

// SetRequest — структура входных данных переключения флага.
type SetRequest struct {
	Enabled bool `json:"enabled"`
}

// SetHandler обрабатывает HTTP-запросы переключения флага уведомлений.
type SetHandler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Хранилище настроек
}

// NewSet создает новый экземпляр SetHandler.
func NewSet(log *slog.Logger, service Service) *SetHandler {
	return &SetHandler{log: log, service: service}
}

func (h *SetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.notifications.set"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.service.SetNotificationsEnabled(r.Context(), req.Enabled); err != nil {
		log.Error("failed to set notifications flag", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to set notifications flag"))
		return
	}

	log.Info("notifications flag updated", slog.Bool("enabled", req.Enabled))
	render.JSON(w, r, response.OKWithData(map[string]any{"enabled": req.Enabled}))
}
