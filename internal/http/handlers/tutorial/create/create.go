// Package create реализует HTTP-обработчик добавления туториала.
// Схема варианта (шаги либо видео) проверяется до записи: запись с
// нарушенной схемой в хранилище не попадает.
package create

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
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
)

// Handler обрабатывает HTTP-запросы добавления туториала.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис туториалов
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики добавления туториала.
type Service interface {
	Add(ctx context.Context, req models.DummyTutorial, author models.User) (*models.Tutorial, error)
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
	const op = "handlers.tutorial.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTutorial
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

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("no user in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("no active session"))
		return
	}

	tut, err := h.service.Add(r.Context(), req, *user)
	if errors.Is(err, models.ErrInvalidTutorial) {
		log.Error("invalid tutorial shape", slog.String("kind", req.Kind))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("tutorial must contain steps or a video, not both"))
		return
	}
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		log.Error("storage quota exceeded")
		render.Status(r, http.StatusRequestEntityTooLarge)
		render.JSON(w, r, response.Error("storage quota exceeded"))
		return
	}
	if err != nil {
		log.Error("failed to add tutorial", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add tutorial"))
		return
	}

	log.Info("tutorial added", slog.String("id", tut.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{"tutorial": tut}))
}
