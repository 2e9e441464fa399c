package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus instrumentation for the API server.
type metrics struct {
	registry      *prometheus.Registry
	commandsBuilt prometheus.Counter
	buildFailures prometheus.Counter
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		commandsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "ffcmd_commands_built_total",
			Help: "Number of ffmpeg command lines built successfully.",
		}),
		buildFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ffcmd_command_build_failures_total",
			Help: "Number of command build requests rejected by mapping or validation.",
		}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
