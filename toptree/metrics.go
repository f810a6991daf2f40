package toptree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of toptree_operations_total.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics groups the Prometheus collectors of a Tree. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	operations      *prometheus.CounterVec
	clustersCreated prometheus.Counter
	clustersDeleted prometheus.Counter
	vertexSplits    prometheus.Counter
	vertexMerges    prometheus.Counter
	rebalanceLevels prometheus.Histogram
	roots           prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Registering two Metrics with one registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toptree_operations_total",
			Help: "Top tree operations by kind and result",
		}, []string{"op", "result"}),
		clustersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "toptree_clusters_created_total",
			Help: "Topology clusters created by the rebalancing engine",
		}),
		clustersDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "toptree_clusters_deleted_total",
			Help: "Topology clusters deleted by the rebalancing engine",
		}),
		vertexSplits: f.NewCounter(prometheus.CounterOpts{
			Name: "toptree_vertex_splits_total",
			Help: "Subvertices added to cap vertex degree",
		}),
		vertexMerges: f.NewCounter(prometheus.CounterOpts{
			Name: "toptree_vertex_merges_total",
			Help: "Subvertex chains collapsed back into their vertex",
		}),
		rebalanceLevels: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "toptree_rebalance_levels",
			Help:    "Levels processed per rebalancing run",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		roots: f.NewGauge(prometheus.GaugeOpts{
			Name: "toptree_roots",
			Help: "Root clusters, one per component",
		}),
	}
}

func (m *Metrics) op(name string, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.operations.WithLabelValues(name, result).Inc()
}

func (m *Metrics) clusterCreated() {
	if m != nil {
		m.clustersCreated.Inc()
	}
}

func (m *Metrics) clusterDeleted() {
	if m != nil {
		m.clustersDeleted.Inc()
	}
}

func (m *Metrics) vertexSplit(n int) {
	if m != nil {
		m.vertexSplits.Add(float64(n))
	}
}

func (m *Metrics) vertexMerge() {
	if m != nil {
		m.vertexMerges.Inc()
	}
}

func (m *Metrics) levels(n int) {
	if m != nil {
		m.rebalanceLevels.Observe(float64(n))
	}
}

func (m *Metrics) setRoots(n int) {
	if m != nil {
		m.roots.Set(float64(n))
	}
}
