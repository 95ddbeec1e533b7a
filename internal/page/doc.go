// Package page drives the interactive parts of the landing page independently
// of any UI toolkit.
//
// A [Controller] holds the search box state (query text and result visibility),
// feeds input to the search engine, applies selections (query replaced by the
// title, results closed, toast shown, scroll deferred by one second) and runs
// the mocked contact form and buy/preview buttons. Hosts (the browser script,
// the terminal UI) translate their events into Controller calls and redraw from
// [Controller.Snapshot] or the OnChange callback.
package page
