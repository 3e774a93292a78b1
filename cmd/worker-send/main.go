package main

import (
	"context"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/consumers"
	"github.com/Behyna/ujumbesms/internal/logger"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/mq"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const serviceName = "ujumbesms-worker-send"

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
			NewMQConfig,
			NewMQConnection,
			NewMQConsumer,
			NewGateway,

			service.NewMessagingService,

			consumers.NewSendConsumer,
		),
		fx.Invoke(runSendConsumer, runMetricsServer),
	).Run()
}

func runSendConsumer(sendConsumer consumers.SendConsumer, logger *zap.Logger, rabbit *mq.RabbitMQ,
	lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{mq.QueueSend}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", mq.QueueSend))

			go func() {
				if err := sendConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("send consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping send consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func runMetricsServer(reg *prometheus.Registry, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	app := metrics.NewServer(reg, serviceName)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.Metrics.Port); err != nil {
					logger.Error("metrics server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func NewMQConfig(cfg *config.Config) mq.Config {
	return cfg.RabbitMQ
}

func NewMQConnection(cfg mq.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewGateway(cfg *config.Config) (service.Gateway, error) {
	client, err := ujumbesms.NewClient(cfg.Ujumbe)
	if err != nil {
		return nil, err
	}
	return client, nil
}
