package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hadge13/ya-news/internal/auth"
	"github.com/hadge13/ya-news/internal/models"
)

type identityKey struct{}

// SessionCookie — имя куки с access-токеном для браузерной навигации;
// API-клиенты передают тот же токен в Authorization: Bearer.
const SessionCookie = "session"

// Identity резолвит действующую сторону запроса: достаёт access-токен из
// Authorization/куки и кладёт в контекст аутентифицированную Identity.
// Отсутствующий или невалидный токен даёт анонима — чтение открыто всем,
// поэтому дефект токена здесь не является ошибкой запроса.
func Identity(a *auth.Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				if id, err := a.Verify(token); err == nil {
					r = r.WithContext(IdentityInto(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityInto кладёт Identity в контекст.
func IdentityInto(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom достаёт Identity из контекста (аноним, если её там нет).
func IdentityFrom(ctx context.Context) models.Identity {
	if v := ctx.Value(identityKey{}); v != nil {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}

	return models.Anonymous
}

func extractToken(r *http.Request) string {
	const prefix = "Bearer "

	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}

	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}

	return ""
}
