package trending

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/keilerkonzept/topk/sliding"
)

// Query is one trending search with its approximate count in the window.
type Query struct {
	Text  string `json:"query"`
	Count int    `json:"count"`
}

// Config sizes the sliding sketch.
type Config struct {
	// K is how many top queries are tracked.
	K int
	// Window is the total span the counts cover.
	Window time.Duration
	// Tick is the span of one bucket; Tick must be called once per Tick.
	Tick time.Duration
}

// DefaultConfig tracks the top 10 queries over the last hour in one-minute buckets.
func DefaultConfig() Config {
	return Config{K: 10, Window: time.Hour, Tick: time.Minute}
}

// Tracker counts submitted queries over a sliding time window.
type Tracker struct {
	mu     sync.Mutex
	sketch *sliding.Sketch
}

// New returns a tracker sized by cfg. Zero fields take DefaultConfig values.
func New(cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.K < 1 {
		cfg.K = def.K
	}
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.Tick <= 0 || cfg.Tick > cfg.Window {
		cfg.Tick = def.Tick
	}
	buckets := int(cfg.Window / cfg.Tick)
	if buckets < 1 {
		buckets = 1
	}

	return &Tracker{
		sketch: sliding.New(cfg.K, buckets,
			sliding.WithWidth(1024),
			sliding.WithDepth(3),
		),
	}
}

// Record counts one occurrence of query. Empty queries are ignored.
func (t *Tracker) Record(query string) {
	if query == "" {
		return
	}
	t.mu.Lock()
	t.sketch.Incr(query)
	t.mu.Unlock()
}

// Tick advances the window by one bucket.
func (t *Tracker) Tick() {
	t.mu.Lock()
	t.sketch.Ticks(1)
	t.mu.Unlock()
}

// Run calls Tick every interval until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// Top returns up to n queries ordered by count, highest first. Ties sort by text.
func (t *Tracker) Top(n int) []Query {
	t.mu.Lock()
	items := t.sketch.SortedSlice()
	out := make([]Query, 0, len(items))
	for _, item := range items {
		// heap counts lag behind ticks; ask the sketch for the windowed value
		count := int(t.sketch.Count(item.Item))
		if count == 0 {
			continue
		}
		out = append(out, Query{Text: item.Item, Count: count})
	}
	t.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Text < out[j].Text
		}
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of distinct queries currently in the top-k.
func (t *Tracker) Len() int {
	return len(t.Top(0))
}
