// Package back реализует HTTP-обработчик возврата на предыдущий экран.
// При истории из одного экрана возврат — no-op.
package back

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/navigation"
)

// Handler обрабатывает HTTP-запросы возврата назад.
type Handler struct {
	log     *slog.Logger        // Логгер для записи операций и ошибок
	manager *navigation.Manager // Менеджер контроллеров навигации
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, manager *navigation.Manager) *Handler {
	return &Handler{log: log, manager: manager}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.nav.back"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("no user in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("no active session"))
		return
	}

	controller := h.manager.Get(user.ID)
	controller.GoBack()

	log.Info("navigation back requested")
	render.JSON(w, r, response.OKWithData(map[string]any{"state": controller.State()}))
}
