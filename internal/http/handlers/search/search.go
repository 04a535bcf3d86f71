// Package search реализует HTTP-обработчик поиска по каталогу:
// дизайны, туториалы и мастера одним запросом.
package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	searchsvc "github.com/monicarachel101026-prog/Nailora/internal/services/search"
)

// Handler обрабатывает HTTP-запросы поиска.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис поиска
}

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, query string) (*searchsvc.Result, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("q")
	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		log.Error("failed to search", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to search"))
		return
	}

	log.Info("search executed", slog.String("query", query))
	render.JSON(w, r, response.OKWithData(result))
}
