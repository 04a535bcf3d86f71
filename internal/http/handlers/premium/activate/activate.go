// Package activate реализует HTTP-обработчик активации premium-подписки
// по выбранному плану. Пробный план включается сразу; платные планы обычно
// активируются машиной оплаты после успешного платежа.
package activate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Request — структура входных данных активации подписки.
type Request struct {
	Plan   string `json:"plan" validate:"required,oneof=trial monthly yearly"`
	Method string `json:"method"`
}

// Handler обрабатывает HTTP-запросы активации подписки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сессионный сервис
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики активации подписки.
type Service interface {
	ActivatePremium(ctx context.Context, plan, method string) (*models.User, error)
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
	const op = "handlers.premium.activate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	user, err := h.service.ActivatePremium(r.Context(), req.Plan, req.Method)
	if err != nil {
		log.Error("failed to activate premium", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to activate premium"))
		return
	}

	log.Info("premium activated", slog.String("plan", req.Plan))
	render.JSON(w, r, response.OKWithData(map[string]any{"user": user}))
}
