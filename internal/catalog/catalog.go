package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when an entry has a blank title.
	ErrEmptyTitle = errors.New("catalog entry has empty title")
	// ErrUnknownKind is returned for kinds outside beat/artist/genre.
	ErrUnknownKind = errors.New("unknown catalog kind")
)

// Entry is one immutable catalog record.
type Entry struct {
	Kind     Kind   `json:"kind" toml:"kind"`
	Title    string `json:"title" toml:"title"`
	Subtitle string `json:"subtitle" toml:"subtitle"`
	Category string `json:"category" toml:"category"`
	Price    string `json:"price,omitempty" toml:"price"`
}

// Catalog is a read-only, ordered list of entries. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	entries []Entry
}

// New validates entries and returns a catalog holding a private copy of them.
func New(entries []Entry) (*Catalog, error) {
	owned := make([]Entry, len(entries))
	for i, e := range entries {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("entry %d: %w: %d", i, ErrUnknownKind, int(e.Kind))
		}
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyTitle)
		}
		owned[i] = e
	}
	return &Catalog{entries: owned}, nil
}

// MustNew is like New but panics on invalid input. Intended for compiled-in data.
func MustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("invalid catalog: %v", err))
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Each calls fn for every entry in catalog order without copying the slice.
func (c *Catalog) Each(fn func(Entry)) {
	for _, e := range c.entries {
		fn(e)
	}
}

// Lookup finds the first entry of the given kind whose title matches exactly.
func (c *Catalog) Lookup(kind Kind, title string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Kind == kind && e.Title == title {
			return e, true
		}
	}
	return Entry{}, false
}

// CountByKind returns how many entries each kind has. Every kind is present in the map.
func (c *Catalog) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	for _, e := range c.entries {
		counts[e.Kind]++
	}
	return counts
}
