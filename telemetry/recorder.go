// File: recorder.go
// Role: A core.Recorder backed by Prometheus counters, plus an HTTP
// exposition handle — the domain-stack home for
// github.com/prometheus/client_golang.
//
// Grounded on the Packt repo's promauto.NewCounter + promhttp.Handler
// pattern (Chapter13/prom_http/main.go): counters are registered once at
// construction, incremented from hot paths, and exported over HTTP by a
// handler the caller mounts wherever it likes.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// PrometheusRecorder implements core.Recorder by incrementing a small set
// of counters, one per structural mutation kind.
type PrometheusRecorder struct {
	vertexAdded    prometheus.Counter
	vertexRemoved  prometheus.Counter
	edgeAdded      prometheus.Counter
	edgeRemoved    prometheus.Counter
	clusterCreated prometheus.Counter
	clusterRemoved prometheus.Counter
}

// NewPrometheusRecorder registers its counters against the default
// Prometheus registry and returns a ready-to-use recorder.
func NewPrometheusRecorder() *PrometheusRecorder {
	mk := func(name, help string) prometheus.Counter {
		return promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "clustergraph",
			Name:      name,
			Help:      help,
		})
	}
	return &PrometheusRecorder{
		vertexAdded:    mk("vertices_added_total", "Plain vertices inserted."),
		vertexRemoved:  mk("vertices_removed_total", "Plain vertices removed."),
		edgeAdded:      mk("edges_added_total", "GlobalEdge entries aggregated onto a local edge."),
		edgeRemoved:    mk("edges_removed_total", "GlobalEdge entries detached from a local edge."),
		clusterCreated: mk("clusters_created_total", "Child clusters created."),
		clusterRemoved: mk("clusters_removed_total", "Child clusters removed."),
	}
}

func (r *PrometheusRecorder) VertexAdded()    { r.vertexAdded.Inc() }
func (r *PrometheusRecorder) VertexRemoved()  { r.vertexRemoved.Inc() }
func (r *PrometheusRecorder) EdgeAdded()      { r.edgeAdded.Inc() }
func (r *PrometheusRecorder) EdgeRemoved()    { r.edgeRemoved.Inc() }
func (r *PrometheusRecorder) ClusterCreated() { r.clusterCreated.Inc() }
func (r *PrometheusRecorder) ClusterRemoved() { r.clusterRemoved.Inc() }

// Handler returns the standard Prometheus text-exposition HTTP handler,
// for the caller to mount at e.g. "/metrics".
func Handler() http.Handler {
	return promhttp.Handler()
}
