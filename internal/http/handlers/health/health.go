// Package health реализует HTTP-обработчик проверки работоспособности.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
)

// Handler обрабатывает HTTP-запросы проверки работоспособности.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{"status": "healthy"}))
}
