package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/authtoken"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

const actorContextKey contextKey = "actor"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает Bearer токен, проверяет подпись и кладёт Actor в контекст
// Запросы без валидного токена отклоняются с 401
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("Auth: %s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := authtoken.Parse(secret, token)
			if err != nil {
				logger.Warn("Auth: %s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			role, ok := domain.ParseRole(claims.Role)
			if !ok {
				logger.Warn("Auth: %s %s - unknown role %q in token", r.Method, r.URL.Path, claims.Role)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			actor := domain.Actor{
				ID:         claims.UserID,
				Role:       role,
				DistrictID: claims.DistrictID,
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor кладёт Actor в контекст запроса
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext достаёт Actor из контекста запроса
// false означает, что запрос не прошёл через Auth
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}
