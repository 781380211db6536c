package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CallsTotal tracks calls submitted per method and datacenter
	CallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_calls_total",
			Help: "Total number of calls submitted",
		},
		[]string{"method", "dc"},
	)

	// OutcomesTotal tracks how calls resolved
	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_call_outcomes_total",
			Help: "Total number of resolved calls by outcome",
		},
		[]string{"method", "outcome"},
	)

	// CallLatency tracks time from submission to resolution
	CallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpcdispatch_call_latency_seconds",
			Help:    "Call latency in seconds, including flood waits and migrations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// ContainersSent tracks containers handed to the transport per datacenter
	ContainersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_containers_sent_total",
			Help: "Total number of containers sent",
		},
		[]string{"dc"},
	)

	// ContainerSize tracks the number of calls per container
	ContainerSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rpcdispatch_container_size",
			Help:    "Number of calls per container",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	// FloodWaitSeconds tracks waits requested by the remote service
	FloodWaitSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpcdispatch_flood_wait_seconds",
			Help:    "Requested flood wait in seconds",
			Buckets: []float64{0, 1, 2, 5, 10, 30, 60, 300, 3600},
		},
		[]string{"action"},
	)

	// MigrationsTotal tracks datacenter redirects
	MigrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_migrations_total",
			Help: "Total number of datacenter migrations",
		},
		[]string{"from", "to"},
	)

	// ClassifiedTotal tracks classified remote errors by kind
	ClassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_errors_classified_total",
			Help: "Total number of remote errors classified",
		},
		[]string{"kind"},
	)

	// LookupsTotal tracks fallback description lookups
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcdispatch_lookups_total",
			Help: "Total number of fallback description lookups",
		},
		[]string{"result"},
	)

	// QueueDepth tracks calls waiting per datacenter
	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rpcdispatch_queue_depth",
			Help: "Number of calls waiting to be sent",
		},
		[]string{"dc"},
	)
)

// DBConnectionPoolUsage tracks the percentage of the connection pool in use
var DBConnectionPoolUsage = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "rpcdispatch_db_connection_pool_usage_percent",
		Help: "Percentage of database connection pool in use",
	},
)
