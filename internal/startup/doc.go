// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - CATALOG_FILE: TOML catalog to serve instead of the built-in one
//   - TRENDING_WINDOW: Sliding window for trending searches (default: 1h)
//   - TRENDING_TICK: Width of one trending bucket (default: 1m)
//   - CONTACT_RATE_LIMIT: Form submissions per second per client, 0 disables (default: 1)
//   - COLLECT_INTERVAL: Catalog/trending gauge refresh interval (default: 1m)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_STATIC_FILES: Log static file requests (default: false)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// Invalid values fall back to their defaults with a warning.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
//   - [LogCatalogInit]: Catalog source and entry counts
//   - [LogTrendingInit]: Trending window layout
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated], [LogShutdownStep], [LogShutdownComplete]: Graceful shutdown
package startup
