// Package metrics provides Prometheus instrumentation for beatsite.
//
// This package defines and exposes various metrics that can be scraped by Prometheus
// to monitor the health, performance, and behavior of the application. All metrics
// are prefixed with "beatsite_" to avoid naming collisions with other applications.
//
// # Metric Groups
//
//   - HTTP: request counts, durations, in-flight requests, rate-limited requests
//   - Search: query outcomes, result sizes, activations, submits
//   - Page: notifications, contact form submissions, buy/preview requests
//   - Catalog: entries per kind and trending query count, refreshed by [Collector]
//
// Call [InitializeMetrics] once at startup so every label combination is
// exported from the first scrape.
package metrics
