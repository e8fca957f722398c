// @title           Video Playlist API
// @version         1.0
// @description     Accounts and per-user video playlists.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:4000
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа сервера плейлистов.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - выбор хранилища (JSON-файлы или PostgreSQL) и создание репозиториев;
//   - создание сервисов, HTTP-обработчиков и роутера;
//   - запуск сервера и корректное (graceful) завершение по сигналу.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/api"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	h "github.com/IvanChernomyrdin/video-playlists/internal/server/net/http"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/repository"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/service"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/storage"
	"github.com/IvanChernomyrdin/video-playlists/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/video-playlists/swagger/docs"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		logger.NewHTTPLogger().Sugar().Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
	})
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	if envErr != nil {
		sugar.Debugf("no .env file loaded, error: %v", envErr)
	}

	// создаём репы под выбранное хранилище
	repos, closeRepos, err := newRepositories(cfg, sugar)
	if err != nil {
		sugar.Fatal(err)
	}
	defer closeRepos()

	// создаём сервис
	svc := service.NewServices(repos, cfg, sugar)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := h.NewRouter(handler, cfg)
	//создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server is running at https://%s (storage: %s)", addr, cfg.Storage.Driver)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server is running at http://%s (storage: %s)", addr, cfg.Storage.Driver)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// newRepositories создаёт репозитории для storage.driver.
// Возвращаемая функция освобождает ресурсы хранилища.
func newRepositories(cfg *config.Config, log *zap.SugaredLogger) (service.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		// подключаем базу данных
		if err := config.Init(cfg, log); err != nil {
			return service.Repositories{}, nil, err
		}
		db := config.GetDB()
		return service.Repositories{
				Users:     repository.NewUsersRepository(db, cfg.DB.QueryTimeout),
				Playlists: repository.NewPlaylistsRepository(db, cfg.DB.QueryTimeout),
			}, func() {
				if err := db.Close(); err != nil {
					log.Warnf("close db: %v", err)
				}
			}, nil
	default:
		acc := storage.NewAccessor(cfg.Storage.StrictRead, log)
		return service.Repositories{
			Users:     repository.NewFileUsersRepository(acc, cfg.Storage.UsersFile),
			Playlists: repository.NewFilePlaylistsRepository(acc, cfg.Storage.PlaylistsFile),
		}, func() {}, nil
	}
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
