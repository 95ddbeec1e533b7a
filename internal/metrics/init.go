package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, state := range []string{"hide", "ignore", "show", "no_results"} {
		SearchQueriesTotal.WithLabelValues(state)
	}

	for _, kind := range []string{"beat", "artist", "genre"} {
		SearchActivationsTotal.WithLabelValues(kind)
		CatalogEntries.WithLabelValues(kind)
	}

	for _, level := range []string{"success", "error"} {
		NotificationsShown.WithLabelValues(level)
	}

	for _, status := range []string{"accepted", "invalid"} {
		ContactSubmissionsTotal.WithLabelValues(status)
	}

	for _, action := range []string{"buy", "preview"} {
		CheckoutRequestsTotal.WithLabelValues(action)
	}
}
