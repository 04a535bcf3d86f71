// Package create реализует HTTP-обработчик добавления дизайна в каталог.
// Название — ключ коллекции: дубликат даёт 409, исчерпание квоты
// хранилища — 413, состояние каталога при этом не меняется.
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

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
)

// Handler обрабатывает HTTP-запросы добавления дизайна.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис каталога
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики добавления дизайна.
type Service interface {
	Add(ctx context.Context, req models.DummyDesign) (*models.Design, error)
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
	const op = "handlers.design.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyDesign
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

	design, err := h.service.Add(r.Context(), req)
	if errors.Is(err, catalog.ErrDuplicateTitle) {
		log.Error("design title already exists", slog.String("title", req.Title))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("design title already exists"))
		return
	}
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		log.Error("storage quota exceeded", slog.String("title", req.Title))
		render.Status(r, http.StatusRequestEntityTooLarge)
		render.JSON(w, r, response.Error("storage quota exceeded"))
		return
	}
	if err != nil {
		log.Error("failed to add design", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add design"))
		return
	}

	log.Info("design added", slog.String("title", design.Title))
	render.JSON(w, r, response.OKWithData(map[string]any{"design": design}))
}
