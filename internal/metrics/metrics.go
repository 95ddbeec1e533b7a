package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beatsite_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beatsite_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// Search metrics
var (
	SearchQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_search_queries_total",
			Help: "Total number of search queries by outcome",
		},
		[]string{"state"}, // "hide", "ignore", "show", "no_results"
	)

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beatsite_search_results_returned",
			Help:    "Number of catalog entries matched per search",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	SearchActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_search_activations_total",
			Help: "Total number of selected search results by kind",
		},
		[]string{"kind"},
	)

	SearchSubmitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beatsite_search_submits_total",
			Help: "Total number of submitted search forms with a non-empty query",
		},
	)
)

// Page metrics
var (
	NotificationsShown = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_notifications_shown_total",
			Help: "Total number of toast notifications shown",
		},
		[]string{"level"},
	)

	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // "accepted", "invalid"
	)

	CheckoutRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beatsite_checkout_requests_total",
			Help: "Total number of buy/preview button requests",
		},
		[]string{"action"}, // "buy", "preview"
	)
)

// Catalog metrics
var (
	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "beatsite_catalog_entries",
			Help: "Number of catalog entries by kind",
		},
		[]string{"kind"},
	)

	TrendingQueries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beatsite_trending_queries",
			Help: "Number of distinct queries currently tracked as trending",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "beatsite_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)
