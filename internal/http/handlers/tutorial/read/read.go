// Package read реализует HTTP-обработчик карточки туториала по id.
// Premium-запись для пользователя без подписки — отказ 403 с подсказкой
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
	"github.com/monicarachel101026-prog/Nailora/internal/services/tutorial"
)

// Handler обрабатывает HTTP-запросы карточки туториала.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис туториалов
}

// Service описывает интерфейс бизнес-логики карточки туториала.
type Service interface {
	Get(ctx context.Context, id string, isPremium bool) (*models.Tutorial, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tutorial.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	user, _ := middlewarectx.UserFromContext(r.Context())
	isPremium := user != nil && user.IsPremium

	tut, err := h.service.Get(r.Context(), id, isPremium)
	if errors.Is(err, tutorial.ErrPremiumRequired) {
		log.Info("premium tutorial requested without subscription", slog.String("id", id))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Response{
			Status: response.StatusError,
			Error:  "premium subscription required",
			Data:   map[string]any{"redirect": "premium"},
		})
		return
	}
	if errors.Is(err, tutorial.ErrTutorialNotFound) {
		log.Error("tutorial not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("tutorial not found"))
		return
	}
	if err != nil {
		log.Error("failed to read tutorial", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read tutorial"))
		return
	}

	log.Info("tutorial read", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"tutorial": tut}))
}
