package metrics

import (
	"net/http"
	"time"

	"requestly_mcp_server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "requestly_mcp"

// Tool invocation outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeConfigError     = "config_error"
	OutcomeValidationError = "validation_error"
	OutcomeRemoteError     = "remote_error"
	OutcomeTransportError  = "transport_error"
)

// Recorder holds the server's collectors.
type Recorder struct {
	toolInvocations *prometheus.CounterVec
	remoteDuration  *prometheus.HistogramVec
}

// NewRegistry returns a registry with the process and runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(collectors.NewBuildInfoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	return reg
}

func NewRecorder(reg *prometheus.Registry) *Recorder {
	return &Recorder{
		toolInvocations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: prometheus.BuildFQName(namespace, "", "tool_invocations_total"),
				Help: "Count of MCP tool invocations by tool name and outcome.",
			},
			[]string{"tool", "outcome"},
		),
		remoteDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prometheus.BuildFQName(namespace, "", "remote_request_duration_seconds"),
				Help: "Duration of calls to the Requestly API by HTTP method and status code.",
				Buckets: []float64{
					0.01, 0.025, 0.05, 0.1, // 10ms - 100ms
					0.25, 0.5, 1.0, // 250ms - 1s
					2.5, 5.0, 10.0, 30.0,
				},
			},
			[]string{"method", "status"},
		),
	}
}

func (r *Recorder) ObserveTool(tool, outcome string) {
	r.toolInvocations.WithLabelValues(tool, outcome).Inc()
}

// ObserveRemote records one outbound call. status is the HTTP status code or
// "error" when no response arrived.
func (r *Recorder) ObserveRemote(method, status string, elapsed time.Duration) {
	r.remoteDuration.WithLabelValues(method, status).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.InstrumentMetricHandler(
		reg,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			Registry: reg,
			ErrorLog: utils.GetLogger(),
		}),
	)
}
