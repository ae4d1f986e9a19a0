package main

import (
	"context"

	"github.com/EnriqueHBN/TransactionalApp/internal/api"
	v1 "github.com/EnriqueHBN/TransactionalApp/internal/api/v1"
	apivalidator "github.com/EnriqueHBN/TransactionalApp/internal/api/validator"
	"github.com/EnriqueHBN/TransactionalApp/internal/config"
	"github.com/EnriqueHBN/TransactionalApp/internal/database"
	apierrors "github.com/EnriqueHBN/TransactionalApp/internal/errors"
	"github.com/EnriqueHBN/TransactionalApp/internal/metrics"
	"github.com/EnriqueHBN/TransactionalApp/internal/repository"
	"github.com/EnriqueHBN/TransactionalApp/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewStatusRepository,
			repository.NewTransactionRepository,
			repository.NewStatusHistoryRepository,
			service.NewIdentityService,
			service.NewCatalogService,
			service.NewLedgerService,
			validator.New,
			apivalidator.NewXValidator,
			metrics.NewMetrics,
			v1.NewHandler,
			newFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})

	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	return app
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
