// Package list реализует HTTP-обработчик списка дизайнов каталога с
// фильтрами по цвету, стилю, длине и архивному виду. Значение "Semua"
// в любом измерении отключает его проверку.
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

// Handler обрабатывает HTTP-запросы списка дизайнов.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// Service описывает интерфейс бизнес-логики списка дизайнов.
type Service interface {
	List(ctx context.Context, filter models.DesignFilter) ([]models.Design, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.DesignFilter{
		Color:    r.URL.Query().Get("color"),
		Style:    r.URL.Query().Get("style"),
		Length:   r.URL.Query().Get("length"),
		Archived: r.URL.Query().Get("archived") == "true",
	}

	designs, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list designs", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list designs"))
		return
	}

	log.Info("designs listed", slog.Int("count", len(designs)))
	render.JSON(w, r, response.OKWithData(map[string]any{"designs": designs}))
}
