package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal metrics
	JournalsRegistered prometheus.Counter
	JournalsCorrected  prometheus.Counter
	JournalsApproved   prometheus.Counter
	JournalsRejected   prometheus.Counter
	JournalAmount      prometheus.Histogram

	// Product metrics
	ProductsAdded prometheus.Counter

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		JournalsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gojournal_journals_registered_total",
			Help: "Total number of journal entries registered",
		}),
		JournalsCorrected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gojournal_journals_corrected_total",
			Help: "Total number of journal entries corrected",
		}),
		JournalsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gojournal_journals_approved_total",
			Help: "Total number of journal entries approved",
		}),
		JournalsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gojournal_journals_rejected_total",
			Help: "Total number of journal entry commands rejected by validation",
		}),
		JournalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gojournal_journal_amount",
			Help:    "Debit totals of registered journal entries",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		ProductsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gojournal_products_added_total",
			Help: "Total number of products added to the catalog",
		}),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gojournal_db_queries_total",
				Help: "Total database queries by operation",
			},
			[]string{"operation"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gojournal_db_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gojournal_redis_operations_total",
				Help: "Total Redis operations by type",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gojournal_redis_errors_total",
				Help: "Total Redis errors by operation",
			},
			[]string{"operation"},
		),
	}
}
