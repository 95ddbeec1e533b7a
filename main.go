// Package main runs the beatsite storefront server.
//
// The server exposes the catalog search used by the landing page as JSON and as
// an HTML fragment, turns a selected result into a navigation action, and mocks the
// contact form and buy/preview buttons. A second listener serves Prometheus
// metrics when METRICS_ENABLED is set.
//
// # Background Services
//
//   - Trending: advances the sliding window of submitted searches every TRENDING_TICK
//   - Metrics Collector: refreshes catalog and trending gauges every COLLECT_INTERVAL
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the server stops the background services, shuts down the
// metrics server and then the main server with a 30s timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"beatsite/internal/catalog"
	"beatsite/internal/handlers"
	"beatsite/internal/logging"
	"beatsite/internal/memory"
	"beatsite/internal/metrics"
	"beatsite/internal/middleware"
	"beatsite/internal/search"
	"beatsite/internal/startup"
	"beatsite/internal/trending"

	"github.com/gorilla/mux"
)

// catalogStats adapts the catalog and trending tracker to metrics.StatsProvider.
type catalogStats struct {
	catalog  *catalog.Catalog
	trending *trending.Tracker
}

// GetStats implements metrics.StatsProvider
func (s catalogStats) GetStats() metrics.Stats {
	stats := metrics.Stats{EntriesByKind: make(map[string]int, len(catalog.Kinds))}
	for kind, n := range s.catalog.CountByKind() {
		stats.EntriesByKind[kind.String()] = n
	}
	if s.trending != nil {
		stats.TrendingQueries = s.trending.Len()
	}
	return stats
}

func main() {
	startTime := time.Now()

	memory.Configure()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	catalogStart := time.Now()
	cat, err := loadCatalog(config.CatalogFile)
	if err != nil {
		startup.LogFatal("Failed to load catalog: %v", err)
	}
	stats := catalogStats{catalog: cat}
	startup.LogCatalogInit(config.CatalogFile, stats.GetStats().EntriesByKind, time.Since(catalogStart))

	startup.LogTrendingInit(config.TrendingWindow, config.TrendingTick)
	tracker := trending.New(trending.Config{
		K:      trending.DefaultConfig().K,
		Window: config.TrendingWindow,
		Tick:   config.TrendingTick,
	})
	stats.trending = tracker

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Run(ctx, config.TrendingTick)

	metrics.InitializeMetrics()
	metrics.AppInfo.WithLabelValues(startup.Version, startup.Commit, runtime.Version()).Set(1)
	collector := metrics.NewCollector(stats, config.CollectInterval)
	collector.Start()

	h := handlers.New(search.NewEngine(cat), tracker)

	limiterConfig := middleware.DefaultRateLimitConfig()
	limiterConfig.RequestsPerSecond = config.ContactRateLimit
	limiterConfig.TrustedProxies = config.TrustedProxies
	router := setupRouter(h, middleware.NewRateLimiter(limiterConfig))

	startup.LogHTTPRoutes(router, config.LogStaticFiles, config.LogHealthChecks)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Compression(middleware.DefaultCompressionConfig())(
		middleware.Logger(loggingConfig)(router),
	)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = startMetricsServer(config.MetricsPort, h)
	}

	go handleShutdown(srv, metricsSrv, collector, cancel)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func setupRouter(h *handlers.Handlers, limiter *middleware.RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	// Probes and build info
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/livez", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods(http.MethodGet)
	r.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Search
	api.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	api.HandleFunc("/search/html", h.SearchFragment).Methods(http.MethodGet)
	api.HandleFunc("/search/activate", h.Activate).Methods(http.MethodPost)
	api.HandleFunc("/search/submit", h.Submit).Methods(http.MethodPost)
	api.HandleFunc("/search/trending", h.Trending).Methods(http.MethodGet)
	api.HandleFunc("/catalog", h.GetCatalog).Methods(http.MethodGet)

	// Forms and buttons
	api.Handle("/contact", limiter.Middleware(http.HandlerFunc(h.Contact))).Methods(http.MethodPost)
	api.Handle("/beats/buy", limiter.Middleware(http.HandlerFunc(h.Buy))).Methods(http.MethodPost)
	api.Handle("/beats/preview", limiter.Middleware(http.HandlerFunc(h.Preview))).Methods(http.MethodPost)

	// Landing page
	r.PathPrefix("/static/").Handler(handlers.Static())
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)

	return r
}

func startMetricsServer(port string, h *handlers.Handlers) *http.Server {
	mr := mux.NewRouter()
	mr.Handle("/metrics", h.MetricsHandler()).Methods(http.MethodGet)
	mr.HandleFunc("/health", h.LivenessCheck).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Metrics server error: %v", err)
		}
	}()
	return srv
}

func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, stopBackground context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Stopping background services")
	stopBackground()
	collector.Stop()
	startup.LogShutdownStepComplete("Background services stopped")

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
