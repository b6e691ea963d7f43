package auth

import (
	"context"
	"net/http"

	"service/internal/entities"
	"service/pkg/logger"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

type contextKey struct{}

var actorKey contextKey

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware извлекает актора из заголовков, проставленных шлюзом
// аутентификации выше по стеку. Проверка токена не здесь.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := entities.Actor{
				ID:   r.Header.Get(HeaderUserID),
				Role: entities.RoleType(r.Header.Get(HeaderUserRole)),
			}

			if actor.ID == "" || !isKnownRole(actor.Role) {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("role", actor.Role),
				).Warn("request without valid identity headers")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}

func isKnownRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleCustomer, entities.RoleDriver, entities.RoleAdmin:
		return true
	default:
		return false
	}
}
