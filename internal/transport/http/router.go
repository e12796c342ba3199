// Package http собирает HTTP-роутер сайта ya-news.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hadge13/ya-news/internal/auth"
	"github.com/hadge13/ya-news/internal/config"
	"github.com/hadge13/ya-news/internal/service"
	"github.com/hadge13/ya-news/internal/transport/http/handlers"
	"github.com/hadge13/ya-news/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, authn *auth.Authenticator, cfg config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // prometheus-метрики запроса
		middleware.Identity(authn),      // резолвим действующую Identity
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, cfg)
	registerRoutes(root, h)

	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// news
	r.Get("/news", h.HomeFeed)
	r.Get("/news/{id}", h.NewsDetail)
	r.Post("/news", h.CreateNews)

	// comments
	r.Post("/news/{id}/comments", h.CreateComment)
	r.Post("/comments/{id}/edit", h.EditComment)
	r.Post("/comments/{id}/delete", h.DeleteComment)
}
