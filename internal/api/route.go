package api

import (
	v1 "github.com/Behyna/ujumbesms/internal/api/v1"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	prefixV1    = "/v1/"
	serviceName = "ujumbesms-api"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer,
	logger *zap.Logger) {
	app.Use(metrics.HealthCheckMiddleware(serviceName))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Post(prefixV1+"messages", handler.QueueMessages)
	app.Post(prefixV1+"messages/send", handler.SendMessages)
	app.Get(prefixV1+"messages/history", handler.History)
	app.Get(prefixV1+"balance", handler.Balance)
	app.Get(prefixV1+"archive", handler.Archive)
	app.Get(prefixV1+"archive/stats", handler.ArchiveStats)
}
