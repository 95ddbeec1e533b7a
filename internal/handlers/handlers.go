package handlers

import (
	"time"

	"beatsite/internal/search"
	"beatsite/internal/trending"
)

// Handlers serves the storefront API. It holds no per-visitor state; the browser
// keeps the search box and toast state and applies the actions returned here.
type Handlers struct {
	engine    *search.Engine
	trending  *trending.Tracker
	startTime time.Time
	now       func() time.Time
}

// New creates the handlers over a search engine and a trending tracker.
func New(engine *search.Engine, tracker *trending.Tracker) *Handlers {
	return &Handlers{
		engine:    engine,
		trending:  tracker,
		startTime: time.Now(),
		now:       time.Now,
	}
}
