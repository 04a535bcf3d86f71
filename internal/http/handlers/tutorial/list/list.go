// Package list реализует HTTP-обработчик списка туториалов с
// необязательным фильтром по категории.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Handler обрабатывает HTTP-запросы списка туториалов.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис туториалов
}

// Service описывает интерфейс бизнес-логики списка туториалов.
type Service interface {
	List(ctx context.Context, category string) ([]models.Tutorial, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tutorial.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tutorials, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Error("failed to list tutorials", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list tutorials"))
		return
	}

	log.Info("tutorials listed", slog.Int("count", len(tutorials)))
	render.JSON(w, r, response.OKWithData(map[string]any{"tutorials": tutorials}))
}
