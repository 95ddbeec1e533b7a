package page

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"beatsite/internal/catalog"
	"beatsite/internal/notify"
	"beatsite/internal/schedule"
	"beatsite/internal/search"
)

// ProcessingDelay is how long the mocked contact form and buy/preview buttons "work".
const ProcessingDelay = 2 * time.Second

var (
	// ErrNoSuchResult is returned when selecting an index outside the visible results.
	ErrNoSuchResult = errors.New("no such search result")
	// ErrIncompleteForm is returned when a contact form field is blank.
	ErrIncompleteForm = errors.New("contact form incomplete")
	// ErrBusy is returned when a mocked action is already processing.
	ErrBusy = errors.New("already processing")
)

// Navigator scrolls the host view to a named anchor such as "#buy".
type Navigator interface {
	ScrollTo(anchor string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(anchor string)

// ScrollTo calls f.
func (f NavigatorFunc) ScrollTo(anchor string) { f(anchor) }

// QueryRecorder receives submitted search queries.
type QueryRecorder interface {
	Record(query string)
}

// State is what the host renders for the search box.
type State struct {
	Query          string
	ResultsVisible bool
	Result         search.Result
}

// Options configures a Controller. Engine, Notifier and Scheduler are required.
type Options struct {
	Engine    *search.Engine
	Notifier  notify.Notifier
	Scheduler schedule.Scheduler
	Navigator Navigator
	Recorder  QueryRecorder
	OnChange  func(State)
}

// Controller owns the search box of one page and applies search outcomes to it.
type Controller struct {
	mu       sync.Mutex
	engine   *search.Engine
	notifier notify.Notifier
	sched    schedule.Scheduler
	nav      Navigator
	recorder QueryRecorder
	onChange func(State)
	state    State

	contactBusy bool
	buttonBusy  map[string]bool
}

// New returns a controller with an empty search box.
func New(opts Options) *Controller {
	nav := opts.Navigator
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	return &Controller{
		engine:     opts.Engine,
		notifier:   opts.Notifier,
		sched:      opts.Scheduler,
		nav:        nav,
		recorder:   opts.Recorder,
		onChange:   opts.OnChange,
		buttonBusy: make(map[string]bool),
	}
}

// Snapshot returns a copy of the current search box state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Input handles a change of the search text.
func (c *Controller) Input(raw string) search.Result {
	r := c.engine.Search(raw)

	c.mu.Lock()
	c.state.Query = raw
	switch r.State {
	case search.StateHide:
		c.state.ResultsVisible = false
	case search.StateShow, search.StateNoResults:
		c.state.Result = r
		c.state.ResultsVisible = true
	}
	snap := c.state
	c.mu.Unlock()

	c.changed(snap)
	return r
}

// Select activates the i-th visible result in display order. The title replaces the
// query, the results close, the action's message is shown and the scroll is deferred.
func (c *Controller) Select(i int) (search.Action, error) {
	c.mu.Lock()
	entries := c.state.Result.Entries()
	if !c.state.ResultsVisible || i < 0 || i >= len(entries) {
		c.mu.Unlock()
		return search.Action{}, fmt.Errorf("%w: index %d", ErrNoSuchResult, i)
	}
	entry := entries[i]
	c.mu.Unlock()

	return c.SelectEntry(entry), nil
}

// SelectEntry applies the selection of entry regardless of what is displayed.
func (c *Controller) SelectEntry(entry catalog.Entry) search.Action {
	action := search.Activate(entry)

	c.mu.Lock()
	c.state.Query = entry.Title
	c.state.ResultsVisible = false
	snap := c.state
	c.mu.Unlock()

	c.changed(snap)
	c.notifier.Show(action.Message, notify.Success)
	target := action.Target
	c.sched.AfterFunc(action.ScrollDelay, func() { c.nav.ScrollTo(target) })
	return action
}

// ClickOutside hides the results without touching the query.
func (c *Controller) ClickOutside() {
	c.mu.Lock()
	changed := c.state.ResultsVisible
	c.state.ResultsVisible = false
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.changed(snap)
	}
}

// Submit handles the search form's submit. Blank queries do nothing.
func (c *Controller) Submit() bool {
	c.mu.Lock()
	q := strings.TrimSpace(c.state.Query)
	c.mu.Unlock()

	if q == "" {
		return false
	}
	if c.recorder != nil {
		c.recorder.Record(search.Normalize(q))
	}
	c.notifier.Show(SearchingMessage(q), notify.Success)
	return true
}

// SearchingMessage is the toast shown when the search form is submitted.
func SearchingMessage(query string) string {
	return fmt.Sprintf("Searching for \"%s\"...", query)
}

func (c *Controller) changed(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
