// Package read реализует HTTP-обработчик карточки дизайна по названию.
// Premium-дизайн для пользователя без подписки — отказ 403 с подсказкой
// перехода на экран premium.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
)

// Handler обрабатывает HTTP-запросы карточки дизайна.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога
}

// Service описывает интерфейс бизнес-логики карточки дизайна.
type Service interface {
	Get(ctx context.Context, title string, isPremium bool) (*models.Design, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.design.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := chi.URLParam(r, "title")
	user, _ := middlewarectx.UserFromContext(r.Context())
	isPremium := user != nil && user.IsPremium

	design, err := h.service.Get(r.Context(), title, isPremium)
	if errors.Is(err, catalog.ErrPremiumRequired) {
		log.Info("premium design requested without subscription", slog.String("title", title))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Response{
			Status: response.StatusError,
			Error:  "premium subscription required",
			Data:   map[string]any{"redirect": "premium"},
		})
		return
	}
	if errors.Is(err, catalog.ErrDesignNotFound) {
		log.Error("design not found", slog.String("title", title))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("design not found"))
		return
	}
	if err != nil {
		log.Error("failed to read design", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read design"))
		return
	}

	log.Info("design read", slog.String("title", title))
	render.JSON(w, r, response.OKWithData(map[string]any{"design": design}))
}
