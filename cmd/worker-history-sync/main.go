package main

import (
	"context"
	"time"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/logger"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/repository"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/mysql"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "ujumbesms-worker-history-sync"

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
			NewGateway,

			repository.NewSentMessageRepository,

			service.NewHistoryService,
		),
		fx.Invoke(registerDBStats, runHistorySync, runMetricsServer),
	).Run()
}

func runHistorySync(cfg *config.Config, history service.HistoryService, db *gorm.DB, logger *zap.Logger,
	lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repository.AutoMigrate(db); err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}

			go func() {
				defer close(done)
				syncLoop(appCtx, history, cfg.History.SyncInterval, logger)
			}()

			logger.Info("history sync started", zap.Duration("interval", cfg.History.SyncInterval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping history sync")
			cancel()

			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

// syncLoop runs one sync immediately and then once per interval until ctx is cancelled.
func syncLoop(ctx context.Context, history service.HistoryService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := history.Sync(ctx); err != nil {
			logger.Error("failed to sync message history", zap.Error(err))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.Info("history sync context cancelled")
			return
		}
	}
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

func NewGateway(cfg *config.Config) (service.Gateway, error) {
	client, err := ujumbesms.NewClient(cfg.Ujumbe)
	if err != nil {
		return nil, err
	}
	return client, nil
}
