package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts planning requests by outcome
	// (ok, no_route, invalid, unknown_node, timeout).
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalroute_requests_total",
			Help: "Total number of route planning requests by outcome",
		},
		[]string{"outcome"},
	)

	// SearchDuration tracks how long the path search takes
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "globalroute_search_duration_seconds",
			Help:    "Duration of the top-N path search",
			Buckets: prometheus.DefBuckets,
		},
	)

	// GraphNodes tracks the size of the currently served graph
	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "globalroute_graph_nodes",
			Help: "Number of nodes in the active transport graph",
		},
	)

	// GraphEdges tracks the edge count of the currently served graph
	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "globalroute_graph_edges",
			Help: "Number of edges in the active transport graph",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(GraphNodes)
	prometheus.MustRegister(GraphEdges)
}
