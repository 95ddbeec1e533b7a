package metrics

import (
	"sync"
	"time"

	"beatsite/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current statistics
type Stats struct {
	// EntriesByKind maps a kind name ("beat", "artist", "genre") to its entry count.
	EntriesByKind map[string]int
	// TrendingQueries is the number of distinct queries in the trending window.
	TrendingQueries int
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection. It is safe to call more than once.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	for kind, n := range stats.EntriesByKind {
		CatalogEntries.WithLabelValues(kind).Set(float64(n))
	}
	TrendingQueries.Set(float64(stats.TrendingQueries))

	logging.Debug("Metrics collected: catalog=%v, trending=%d", stats.EntriesByKind, stats.TrendingQueries)
}
