package main

import (
	"context"

	"github.com/Behyna/ujumbesms/internal/api"
	"github.com/Behyna/ujumbesms/internal/api/middleware"
	v1 "github.com/Behyna/ujumbesms/internal/api/v1"
	"github.com/Behyna/ujumbesms/internal/api/validator"
	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/logger"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/publishers"
	"github.com/Behyna/ujumbesms/internal/repository"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/mq"
	"github.com/Behyna/ujumbesms/pkg/mysql"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			config.Load,
			logger.New,
			metrics.NewRegistry,
			NewMetrics,
			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,
			NewGateway,
			NewValidator,
			NewFiberApp,

			repository.NewSentMessageRepository,

			service.NewMessagingService,
			service.NewAccountService,
			service.NewHistoryService,

			publishers.NewSendPublisher,

			v1.NewHandler,
		),
		fx.Invoke(registerDBStats, startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, reg *prometheus.Registry,
	cfg *config.Config, rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle,
) {
	api.SetupRoutes(app, handler, m, reg, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{mq.QueueSend}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("api server stopped", zap.Error(err))
				}
			}()

			logger.Info("api server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func registerDBStats(reg *prometheus.Registry, db *gorm.DB) error {
	return metrics.RegisterDBStats(reg, db)
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewGateway(cfg *config.Config) (service.Gateway, error) {
	client, err := ujumbesms.NewClient(cfg.Ujumbe)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewValidator() (validator.IXValidator, error) {
	return validator.NewXValidator(playground.New())
}

func NewFiberApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "ujumbesms-api",
		ErrorHandler: middleware.ErrorHandler(logger),
	})
}
