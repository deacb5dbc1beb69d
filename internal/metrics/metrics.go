// Package metrics records minpath activity in Prometheus collectors and
// exports them in the node_exporter textfile format at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/minpath/edgelist"
)

// Query outcomes used as the "result" label.
const (
	ResultFound    = "found"
	ResultNoPath   = "no_path"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics owns a private registry so repeated construction (tests, watch
// mode) never collides with the global one.
type Metrics struct {
	reg *prometheus.Registry

	EdgesParsed   prometheus.Counter
	LinesSkipped  prometheus.Counter
	Queries       *prometheus.CounterVec
	NodesSettled  prometheus.Counter
	QueryDuration prometheus.Histogram
	GraphNodes    prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		EdgesParsed: f.NewCounter(prometheus.CounterOpts{
			Name: "minpath_edges_parsed_total",
			Help: "Total number of edge records accepted by the parser.",
		}),
		LinesSkipped: f.NewCounter(prometheus.CounterOpts{
			Name: "minpath_lines_skipped_total",
			Help: "Total number of malformed edge records skipped.",
		}),
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minpath_queries_total",
			Help: "Total number of path queries, labelled by result.",
		}, []string{"result"}),
		NodesSettled: f.NewCounter(prometheus.CounterOpts{
			Name: "minpath_nodes_settled_total",
			Help: "Total number of nodes settled across all searches.",
		}),
		QueryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "minpath_query_duration_seconds",
			Help:    "Wall-clock duration of a path query.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "minpath_graph_nodes",
			Help: "Number of nodes in the most recently built graph.",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveParse records one parser report.
func (m *Metrics) ObserveParse(rep edgelist.Report) {
	m.EdgesParsed.Add(float64(rep.Accepted))
	m.LinesSkipped.Add(float64(len(rep.Skipped)))
}

// ObserveQuery records one query outcome.
func (m *Metrics) ObserveQuery(result string, settled int, took time.Duration) {
	m.Queries.WithLabelValues(result).Inc()
	m.NodesSettled.Add(float64(settled))
	m.QueryDuration.Observe(took.Seconds())
}

// WriteTextfile atomically writes all metrics to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
