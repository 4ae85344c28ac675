package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novina/Novina/internal/config"
	"github.com/novina/Novina/internal/service"
	"github.com/novina/Novina/internal/transport/http/handlers"
	"github.com/novina/Novina/internal/transport/http/middleware"
)

// Options: параметры сборки HTTP-роутера.
type Options struct {
	Logger *slog.Logger
	// Timeout: общий дедлайн для админских запросов; генерацию не ограничивает.
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой: роуты регистрируются на корне.
	Auth     config.AuthConfig
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, opts)
	return root
}

// registerRoutes: единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, opts Options) {
	// cron: Bearer CRON_SECRET, если он задан.
	r.With(middleware.CronAuth(opts.Auth.CronSecret)).
		Get("/cron/generate-daily-news", h.GenerateDailyNews)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.Auth))

		// генерация живёт дольше служебного таймаута: ограничена таймаутом шлюза.
		r.Post("/news/generate", h.GenerateNews)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(opts.Timeout))

			r.Get("/news/batches", h.RecentBatches)

			// admin: batches
			r.Get("/admin/batches", h.ListBatches)
			r.Get("/admin/batches/{id}", h.GetBatch)
			r.Delete("/admin/batches", h.DeleteBatches)

			// admin: providers
			r.Get("/admin/ai-providers", h.ListProviders)
			r.Get("/admin/ai-providers/default", h.GetDefaultProvider)
			r.Post("/admin/ai-providers", h.CreateProvider)
			r.Patch("/admin/ai-providers", h.UpdateProvider)
			r.Post("/admin/ai-providers/{id}/default", h.SetDefaultProvider)
			r.Delete("/admin/ai-providers", h.DeleteProvider)

			// admin: topics
			r.Get("/admin/news-topics", h.ListTopics)
			r.Post("/admin/news-topics", h.CreateTopic)
			r.Patch("/admin/news-topics", h.UpdateTopic)
			r.Delete("/admin/news-topics", h.DeleteTopic)
			r.Post("/admin/news-topics/reorder", h.ReorderTopics)
		})
	})
}
