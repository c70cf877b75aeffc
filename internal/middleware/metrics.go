package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "devconnector_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// GithubRequests counts outbound GitHub API requests by result.
var GithubRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "devconnector_github_requests_total",
	Help: "Total number of outbound GitHub API requests by result",
}, []string{"result"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for the
// provided Prometheus middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
