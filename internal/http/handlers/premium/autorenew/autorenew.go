// Package autorenew реализует HTTP-обработчик переключателя автопродления
// подписки на экране управления.
package autorenew

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/session"
)

// Request — структура входных данных переключателя автопродления.
type Request struct {
	AutoRenew bool `json:"auto_renew"`
}

// Handler обрабатывает HTTP-запросы переключения автопродления.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сессионный сервис
}

// Service описывает интерфейс бизнес-логики автопродления.
type Service interface {
	SetAutoRenew(ctx context.Context, autoRenew bool) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.premium.autorenew"

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

	user, err := h.service.SetAutoRenew(r.Context(), req.AutoRenew)
	if errors.Is(err, session.ErrNotPremium) {
		log.Error("premium required")
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("premium subscription required"))
		return
	}
	if err != nil {
		log.Error("failed to set auto renew", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to set auto renew"))
		return
	}

	log.Info("auto renew updated", slog.Bool("auto_renew", req.AutoRenew))
	render.JSON(w, r, response.OKWithData(map[string]any{"user": user}))
}
