package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PostsPublished counts posts flipped to published by the scheduler.
	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_published_total",
		Help: "Total number of posts published by the scheduled publisher",
	})

	// FollowOperations counts follow-graph mutations by operation and outcome.
	FollowOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_follow_operations_total",
		Help: "Total follow/unfollow operations by outcome",
	}, []string{"operation", "outcome"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
