// Package navigate реализует HTTP-обработчик перехода между экранами.
// Контроллер навигации выбирается по пользователю текущей сессии;
// параметры экрана передаются вместе с переходом.
package navigate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/navigation"
)

// Request — структура входных данных перехода.
type Request struct {
	Target string            `json:"target" validate:"required"`
	Mode   string            `json:"mode" validate:"required,oneof=push reset"`
	Params map[string]string `json:"params,omitempty"`
}

// Handler обрабатывает HTTP-запросы перехода между экранами.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	manager  *navigation.Manager // Менеджер контроллеров навигации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, manager *navigation.Manager) *Handler {
	return &Handler{
		log:      log,
		manager:  manager,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.nav.navigate"

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

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("no user in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("no active session"))
		return
	}

	controller := h.manager.Get(user.ID)
	if err := controller.Navigate(navigation.Screen(req.Target), req.Mode, req.Params); err != nil {
		log.Error("failed to navigate", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("navigation requested", slog.String("target", req.Target), slog.String("mode", req.Mode))
	render.JSON(w, r, response.OKWithData(map[string]any{"state": controller.State()}))
}
