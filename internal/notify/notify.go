package notify

import (
	"sync"
	"time"

	"beatsite/internal/metrics"
	"beatsite/internal/schedule"

	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays on screen unless dismissed.
const DefaultTTL = 5 * time.Second

// Level selects the toast styling.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
)

// Notification is one toast.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// New builds a notification descriptor without displaying it anywhere.
func New(message string, level Level, now time.Time) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		CreatedAt: now,
		ExpiresAt: now.Add(DefaultTTL),
	}
}

// Notifier shows toasts. Center implements it.
type Notifier interface {
	Show(message string, level Level) Notification
}

// Center is the single notification surface of a page. Showing a toast removes
// whichever one is on screen.
type Center struct {
	mu       sync.Mutex
	sched    schedule.Scheduler
	ttl      time.Duration
	current  *Notification
	expiry   schedule.Timer
	onChange func(Notification, bool)
}

// Option configures a Center.
type Option func(*Center)

// WithTTL overrides DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(c *Center) { c.ttl = d }
}

// WithOnChange registers fn to be called after the visible toast changes. The bool is
// false when the surface became empty.
func WithOnChange(fn func(Notification, bool)) Option {
	return func(c *Center) { c.onChange = fn }
}

// NewCenter returns a Center that expires toasts using sched.
func NewCenter(sched schedule.Scheduler, opts ...Option) *Center {
	c := &Center{sched: sched, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show replaces the visible toast with a new one and arms its expiry.
func (c *Center) Show(message string, level Level) Notification {
	c.mu.Lock()
	n := New(message, level, c.sched.Now())
	n.ExpiresAt = n.CreatedAt.Add(c.ttl)
	if c.expiry != nil {
		c.expiry.Stop()
	}
	c.current = &n
	id := n.ID
	c.expiry = c.sched.AfterFunc(c.ttl, func() { c.Dismiss(id) })
	c.mu.Unlock()

	metrics.NotificationsShown.WithLabelValues(string(level)).Inc()
	c.changed(n, true)
	return n
}

// Dismiss closes the toast with the given id. Stale ids are ignored.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	if c.current == nil || c.current.ID != id {
		c.mu.Unlock()
		return false
	}
	c.current = nil
	if c.expiry != nil {
		c.expiry.Stop()
		c.expiry = nil
	}
	c.mu.Unlock()

	c.changed(Notification{}, false)
	return true
}

// Current returns the visible toast, if any.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

func (c *Center) changed(n Notification, visible bool) {
	if c.onChange != nil {
		c.onChange(n, visible)
	}
}
