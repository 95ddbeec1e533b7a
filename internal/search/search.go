package search

import (
	"strings"
	"unicode/utf16"

	"beatsite/internal/catalog"
)

// MinQueryLength is the shortest normalized query that triggers a search,
// counted in UTF-16 code units like the browser input. A single character
// leaves the current view untouched.
const MinQueryLength = 2

// State tells the host what to do with the result view.
type State int

const (
	// StateHide means the query is empty and any visible results should be hidden.
	StateHide State = iota
	// StateIgnore means the query is too short; the host changes nothing.
	StateIgnore
	// StateShow means Groups holds at least one match.
	StateShow
	// StateNoResults means the query was searched and nothing matched.
	StateNoResults
)

func (s State) String() string {
	switch s {
	case StateHide:
		return "hide"
	case StateIgnore:
		return "ignore"
	case StateShow:
		return "show"
	case StateNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Group is the matches of one kind, in catalog order.
type Group struct {
	Kind    catalog.Kind    `json:"kind"`
	Label   string          `json:"label"`
	Entries []catalog.Entry `json:"entries"`
}

// Result is the outcome of one search. Query holds the raw input as typed.
type Result struct {
	State  State   `json:"state"`
	Query  string  `json:"query"`
	Groups []Group `json:"groups,omitempty"`
}

// Entries flattens the groups in display order.
func (r Result) Entries() []catalog.Entry {
	var out []catalog.Entry
	for _, g := range r.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Total returns the number of matched entries.
func (r Result) Total() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Entries)
	}
	return n
}

// Engine answers substring queries against a catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine returns an engine over c.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the catalog the engine searches.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Normalize trims surrounding whitespace and lower-cases the query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// QueryLength counts q in UTF-16 code units, so characters outside the
// Basic Multilingual Plane count as two.
func QueryLength(q string) int {
	n := 0
	for _, r := range q {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Search matches raw against every entry's title, subtitle and category.
func (e *Engine) Search(raw string) Result {
	q := Normalize(raw)
	switch n := QueryLength(q); {
	case n == 0:
		return Result{State: StateHide, Query: raw}
	case n < MinQueryLength:
		return Result{State: StateIgnore, Query: raw}
	}

	buckets := make(map[catalog.Kind][]catalog.Entry, len(catalog.Kinds))
	matched := 0
	e.catalog.Each(func(entry catalog.Entry) {
		if Matches(entry, q) {
			buckets[entry.Kind] = append(buckets[entry.Kind], entry)
			matched++
		}
	})

	if matched == 0 {
		return Result{State: StateNoResults, Query: raw}
	}

	groups := make([]Group, 0, len(catalog.Kinds))
	for _, k := range catalog.Kinds {
		if entries := buckets[k]; len(entries) > 0 {
			groups = append(groups, Group{Kind: k, Label: GroupLabel(k), Entries: entries})
		}
	}
	return Result{State: StateShow, Query: raw, Groups: groups}
}

// Matches reports whether the normalized query q occurs in any searchable field of entry.
func Matches(entry catalog.Entry, q string) bool {
	return strings.Contains(strings.ToLower(entry.Title), q) ||
		strings.Contains(strings.ToLower(entry.Subtitle), q) ||
		strings.Contains(strings.ToLower(entry.Category), q)
}

// GroupLabel is the header shown above a kind's matches.
func GroupLabel(k catalog.Kind) string {
	switch k {
	case catalog.KindBeat:
		return "Beats"
	case catalog.KindArtist:
		return "Artists"
	case catalog.KindGenre:
		return "Genres"
	default:
		return ""
	}
}
