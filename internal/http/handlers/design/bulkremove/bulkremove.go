// Package bulkremove реализует HTTP-обработчик массового удаления
// дизайнов. Операция доступна только premium-пользователям.
package bulkremove

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
)

// Handler обрабатывает HTTP-запросы массового удаления дизайнов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис каталога
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики массового удаления.
type Service interface {
	BulkRemove(ctx context.Context, titles []string, isPremium bool) error
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
	const op = "handlers.design.bulkremove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBulkKeys
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

	user, _ := middlewarectx.UserFromContext(r.Context())
	isPremium := user != nil && user.IsPremium

	err := h.service.BulkRemove(r.Context(), req.Titles, isPremium)
	if errors.Is(err, catalog.ErrPremiumRequired) {
		log.Error("premium required for bulk remove")
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("premium subscription required"))
		return
	}
	if err != nil {
		log.Error("failed to bulk remove designs", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to bulk remove designs"))
		return
	}

	log.Info("designs bulk removed", slog.Int("count", len(req.Titles)))
	render.JSON(w, r, response.OK())
}
