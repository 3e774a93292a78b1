package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the scrape app used by binaries without an HTTP API of their own.
func NewServer(gatherer prometheus.Gatherer, serviceName string) *fiber.App {
	app := fiber.New(fiber.Config{AppName: serviceName, DisableStartupMessage: true})
	app.Use(HealthCheckMiddleware(serviceName))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return app
}
