// Package http реализует маршрутизацию HTTP-слоя сервера плейлистов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (CORS, логирование, метрики, лимиты);
//   - выдачу /metrics и swagger.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/api"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - GET / — приветствие;
//   - POST /signup, POST /login;
//   - GET /user/{userId}/data;
//   - POST|DELETE|PUT /playlist;
//   - служебные /swagger/* и метрики (если включены).
func NewRouter(h *api.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Клиенты ходят из браузера с других origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	if cfg.Observability.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware())
	}
	if cfg.Security.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.Security.RateLimit.RPS, cfg.Security.RateLimit.Burst)
		r.Use(rl.Middleware())
	}
	r.Use(middleware.MaxBodyMiddleware(cfg.Server.MaxBodyBytes))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	if cfg.Observability.Metrics.Enabled {
		r.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	r.Get("/", h.Home)

	// аккаунты
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	// плейлисты
	r.Get("/user/{userId}/data", h.GetUserData)
	r.Post("/playlist", h.CreatePlaylist)   // создать пустой плейлист
	r.Delete("/playlist", h.DeletePlaylist) // удалить плейлист
	r.Put("/playlist", h.EditPlaylist)      // add/remove videoId

	return r
}
