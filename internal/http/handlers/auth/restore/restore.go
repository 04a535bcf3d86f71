// Package restore реализует HTTP-обработчик восстановления сессии при
// старте приложения. Повреждённая запись сессии тихо очищается, и ответ
// приходит без пользователя.
package restore

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

// Handler обрабатывает HTTP-запросы восстановления сессии.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сессионный сервис
}

// Service описывает интерфейс бизнес-логики восстановления сессии.
type Service interface {
	Restore(ctx context.Context) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.restore"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, err := h.service.Restore(r.Context())
	if err != nil {
		log.Error("failed to restore session", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to restore session"))
		return
	}

	if user == nil {
		log.Info("no session to restore")
		render.JSON(w, r, response.OKWithData(map[string]any{"user": nil}))
		return
	}

	log.Info("session restored", slog.String("email", user.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{"user": user}))
}
