// Package tui is a terminal host for the landing page search box.
//
// The [Model] feeds keystrokes to a [page.Controller] and redraws from its
// snapshot. Toasts and deferred scrolls fire on scheduler goroutines, so they
// reach the Bubble Tea program as messages through a buffered channel.
package tui
