// Package middlewarectx содержит HTTP middleware для проверки JWT токенов
// и ограничения частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization, сверяет его с активной сессией и в случае успеха добавляет
// пользователя в контекст для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/monicarachel101026-prog/Nailora/internal/http/response"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/jwt"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для пользователя текущей сессии в контексте.
const User Key = "user"

// Service описывает интерфейс сессионного сервиса для проверки токена.
type Service interface {
	// ValidateToken разбирает и проверяет подпись JWT токена.
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
	// Current возвращает пользователя активной сессии.
	Current(ctx context.Context) (*models.User, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization и сверяет его с активной сессией.
//
// Если токен валиден и принадлежит пользователю текущей сессии, пользователь
// добавляется в контекст запроса, иначе возвращается 401 Unauthorized.
func JWTMiddleware(sessions Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := sessions.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			user, err := sessions.Current(r.Context())
			if err != nil || user.ID != claims.UserID {
				log.Error("token does not match the active session")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no active session for this token"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext извлекает пользователя активной сессии из контекста запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok
}
