// Package tripx собирает приложение: хранилище, миграции, кеш, сервисы,
// маршрутизатор и HTTP-сервер с корректным завершением.
package tripx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/tripx-backend/internal/cache"
	"github.com/magabrotheeeer/tripx-backend/internal/config"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/tripx-backend/internal/migrations"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
	authservice "github.com/magabrotheeeer/tripx-backend/internal/services/auth"
	destinationservice "github.com/magabrotheeeer/tripx-backend/internal/services/destination"
	tripservice "github.com/magabrotheeeer/tripx-backend/internal/services/trip"
	"github.com/magabrotheeeer/tripx-backend/internal/services/tripitem"
	userservice "github.com/magabrotheeeer/tripx-backend/internal/services/user"
	"github.com/magabrotheeeer/tripx-backend/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключается к Postgres и Redis, прогоняет миграции,
// собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	services := Services{
		Auth:        authservice.NewService(db, jwtMaker),
		User:        userservice.NewService(db, logger),
		Trip:        tripservice.NewService(db, logger),
		Schedule:    tripitem.NewService[*models.ScheduleItem](db, db.ScheduleItems(), logger),
		Packing:     tripitem.NewService[*models.PackingItem](db, db.PackingItems(), logger),
		Expense:     tripitem.NewService[*models.Expense](db, db.Expenses(), logger),
		Note:        tripitem.NewService[*models.Note](db, db.Notes(), logger),
		Destination: destinationservice.NewService(db, cacheRedis, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, db, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", cerr))
		}
		if cerr := a.cache.Close(); cerr != nil {
			a.logger.Error("failed to close cache", slog.Any("err", cerr))
		}
		return err
	}
}
