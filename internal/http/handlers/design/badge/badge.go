// Package badge реализует HTTP-обработчики значка новых дизайнов на
// дашборде: количество непросмотренных записей и его сброс.
package badge

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики значка новых дизайнов.
type Service interface {
	NewDesignCount(ctx context.Context) (int, error)
	MarkDesignsSeen(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы количества новых дизайнов.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.badge"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	count, err := h.service.NewDesignCount(r.Context())
	if err != nil {
		log.Error("failed to count new designs", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to count new designs"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{"new_designs": count}))
}

// SeenHandler обрабатывает HTTP-запросы сброса значка.
type SeenHandler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// NewSeen создает новый экземпляр SeenHandler.
func NewSeen(log *slog.Logger, service Service) *SeenHandler {
	return &SeenHandler{log: log, service: service}
}

func (h *SeenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.badge.seen"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.MarkDesignsSeen(r.Context()); err != nil {
		log.Error("failed to mark designs seen", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to mark designs seen"))
		return
	}

	log.Info("designs marked seen")
	render.JSON(w, r, response.OK())
}
